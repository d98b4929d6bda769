package mcp

import (
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testSSEServer() *MCPSSEServer {
	svc := testService()
	return NewMCPSSEServer(zap.NewNop(), NewServer(svc), svc, nil)
}

func TestHandleSearchSSE(t *testing.T) {
	sseServer := testSSEServer()

	req := httptest.NewRequest("POST", "/mcp/sse/search", strings.NewReader(`{"query":"zona"}`))
	w := httptest.NewRecorder()
	sseServer.HandleSearchSSE(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "event: search_start") {
		t.Fatalf("missing search_start event in %q", body)
	}
	if !strings.Contains(body, "event: search_result") {
		t.Fatalf("missing search_result event in %q", body)
	}
	if !strings.Contains(body, `"que-es-zona"`) {
		t.Fatalf("expected matching article in %q", body)
	}
	if !strings.Contains(body, "event: search_complete") {
		t.Fatalf("missing search_complete event in %q", body)
	}
}

func TestHandleSearchSSERejectsInvalidJSON(t *testing.T) {
	sseServer := testSSEServer()

	req := httptest.NewRequest("POST", "/mcp/sse/search", strings.NewReader("{"))
	w := httptest.NewRecorder()
	sseServer.HandleSearchSSE(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleArticleSSE(t *testing.T) {
	sseServer := testSSEServer()

	req := httptest.NewRequest("POST", "/mcp/sse/article", strings.NewReader(`{"category":"empezar","article":"crear-cuenta"}`))
	w := httptest.NewRecorder()
	sseServer.HandleArticleSSE(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "event: article_result") {
		t.Fatalf("missing article_result event in %q", body)
	}
	if !strings.Contains(body, "event: article_complete") {
		t.Fatalf("missing article_complete event in %q", body)
	}
}

func TestHandleArticleSSEUnknownArticle(t *testing.T) {
	sseServer := testSSEServer()

	req := httptest.NewRequest("POST", "/mcp/sse/article", strings.NewReader(`{"category":"empezar","article":"no-such"}`))
	w := httptest.NewRecorder()
	sseServer.HandleArticleSSE(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "event: article_error") {
		t.Fatalf("missing article_error event in %q", body)
	}
	if strings.Contains(body, "event: article_result") {
		t.Fatalf("unexpected article_result event in %q", body)
	}
}

func TestHandleArticleSSERequiresSlugs(t *testing.T) {
	sseServer := testSSEServer()

	req := httptest.NewRequest("POST", "/mcp/sse/article", strings.NewReader(`{"category":"empezar"}`))
	w := httptest.NewRecorder()
	sseServer.HandleArticleSSE(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetStats(t *testing.T) {
	sseServer := testSSEServer()

	stats := sseServer.GetStats()
	if stats["connectedClients"] != 0 {
		t.Fatalf("expected no connected clients, got %v", stats["connectedClients"])
	}
	if stats["serverVersion"] != Version {
		t.Fatalf("unexpected server version %v", stats["serverVersion"])
	}
}
