package mcp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/foomo/helpcenter-mcp/render"
	"github.com/foomo/helpcenter-mcp/service"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// SSEEvent represents an SSE event structure
type SSEEvent struct {
	ID        string      `json:"id"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// SSEClient represents a connected SSE client
type SSEClient struct {
	ID       string
	Writer   http.ResponseWriter
	Flusher  http.Flusher
	Done     chan struct{}
	LastSeen time.Time
}

// MCPSSEServer wraps the MCP server with SSE capabilities
type MCPSSEServer struct {
	logger       *zap.Logger
	mcpServer    *server.MCPServer
	service      service.Service
	clients      map[string]*SSEClient
	clientsMutex sync.RWMutex
	broadcast    chan SSEEvent
	keepalive    time.Duration
}

// SSEServerConfig holds configuration for the SSE server
type SSEServerConfig struct {
	KeepaliveInterval time.Duration
	BufferSize        int
	ClientTimeout     time.Duration
}

// DefaultSSEServerConfig returns the default configuration for SSE server
func DefaultSSEServerConfig() *SSEServerConfig {
	return &SSEServerConfig{
		KeepaliveInterval: 30 * time.Second,
		BufferSize:        100,
		ClientTimeout:     60 * time.Second,
	}
}

// NewMCPSSEServer creates a new MCP SSE server
func NewMCPSSEServer(logger *zap.Logger, mcpServer *server.MCPServer, serviceInstance service.Service, config *SSEServerConfig) *MCPSSEServer {
	if config == nil {
		config = DefaultSSEServerConfig()
	}

	sseServer := &MCPSSEServer{
		logger:    logger,
		mcpServer: mcpServer,
		service:   serviceInstance,
		clients:   make(map[string]*SSEClient),
		broadcast: make(chan SSEEvent, config.BufferSize),
		keepalive: config.KeepaliveInterval,
	}

	// Start the broadcast loop
	go sseServer.broadcastLoop()

	return sseServer
}

// broadcastLoop handles broadcasting events to all connected clients
func (s *MCPSSEServer) broadcastLoop() {
	for event := range s.broadcast {
		s.clientsMutex.RLock()
		for clientID, client := range s.clients {
			select {
			case <-client.Done:
				// Client disconnected, remove it
				s.clientsMutex.RUnlock()
				s.removeClient(clientID)
				s.clientsMutex.RLock()
				continue
			default:
				// Send event to client
				if err := s.sendEventToClient(client, event); err != nil {
					s.logger.Error("failed to send event to client", zap.String("clientID", clientID), zap.Error(err))
					s.clientsMutex.RUnlock()
					s.removeClient(clientID)
					s.clientsMutex.RLock()
				}
			}
		}
		s.clientsMutex.RUnlock()
	}
}

// sendEventToClient sends an SSE event to a specific client
func (s *MCPSSEServer) sendEventToClient(client *SSEClient, event SSEEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Format as SSE
	fmt.Fprintf(client.Writer, "id: %s\n", event.ID)
	fmt.Fprintf(client.Writer, "event: %s\n", event.Event)
	fmt.Fprintf(client.Writer, "data: %s\n\n", string(eventJSON))

	client.Flusher.Flush()
	client.LastSeen = time.Now()

	return nil
}

// addClient adds a new SSE client
func (s *MCPSSEServer) addClient(w http.ResponseWriter, r *http.Request) *SSEClient {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return nil
	}

	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	clientID := uuid.NewString()

	client := &SSEClient{
		ID:       clientID,
		Writer:   w,
		Flusher:  flusher,
		Done:     make(chan struct{}),
		LastSeen: time.Now(),
	}

	s.clients[clientID] = client

	// Send connection confirmation
	connectEvent := SSEEvent{
		ID:        fmt.Sprintf("connect_%d", time.Now().UnixNano()),
		Event:     "connected",
		Data:      map[string]string{"clientID": clientID, "message": "Connected to help center SSE server"},
		Timestamp: time.Now(),
	}

	if err := s.sendEventToClient(client, connectEvent); err != nil {
		s.logger.Error("failed to send connection event", zap.String("clientID", clientID), zap.Error(err))
		delete(s.clients, clientID)
		return nil
	}

	s.logger.Info("SSE client connected", zap.String("clientID", clientID))
	return client
}

// removeClient removes a client from the server
func (s *MCPSSEServer) removeClient(clientID string) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	if client, exists := s.clients[clientID]; exists {
		close(client.Done)
		delete(s.clients, clientID)
		s.logger.Info("SSE client disconnected", zap.String("clientID", clientID))
	}
}

// broadcastEvent sends an event to all connected clients
func (s *MCPSSEServer) broadcastEvent(event SSEEvent) {
	select {
	case s.broadcast <- event:
	default:
		s.logger.Warn("broadcast channel full, dropping event", zap.String("eventID", event.ID))
	}
}

// HandleSSE handles SSE client connections
func (s *MCPSSEServer) HandleSSE(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Cache-Control")

	client := s.addClient(w, r)
	if client == nil {
		return
	}

	// Keep connection alive and handle client disconnect
	ctx := r.Context()
	go func() {
		ticker := time.NewTicker(s.keepalive)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.removeClient(client.ID)
				return
			case <-client.Done:
				return
			case <-ticker.C:
				// Send keepalive
				keepaliveEvent := SSEEvent{
					ID:        fmt.Sprintf("keepalive_%d", time.Now().UnixNano()),
					Event:     "keepalive",
					Data:      map[string]interface{}{"timestamp": time.Now()},
					Timestamp: time.Now(),
				}
				if err := s.sendEventToClient(client, keepaliveEvent); err != nil {
					s.removeClient(client.ID)
					return
				}
			}
		}
	}()

	// Wait for client to disconnect
	<-client.Done
}

// HandleSearchSSE handles search requests via SSE. Catalog queries are pure
// in-memory reads, so the whole exchange happens within the request.
func (s *MCPSSEServer) HandleSearchSSE(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Query string `json:"query"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// Send start event, the empty query is valid and means "show all"
	s.writeEvent(w, flusher, SSEEvent{
		ID:        fmt.Sprintf("search_start_%d", time.Now().UnixNano()),
		Event:     "search_start",
		Data:      map[string]string{"query": request.Query},
		Timestamp: time.Now(),
	})

	articles := s.service.Search(request.Query)

	s.writeEvent(w, flusher, SSEEvent{
		ID:    fmt.Sprintf("search_result_%d", time.Now().UnixNano()),
		Event: "search_result",
		Data: map[string]interface{}{
			"articles": articles,
			"count":    len(articles),
		},
		Timestamp: time.Now(),
	})

	s.writeEvent(w, flusher, SSEEvent{
		ID:        fmt.Sprintf("search_complete_%d", time.Now().UnixNano()),
		Event:     "search_complete",
		Data:      map[string]string{"status": "completed"},
		Timestamp: time.Now(),
	})
}

// HandleArticleSSE handles single article requests via SSE
func (s *MCPSSEServer) HandleArticleSSE(w http.ResponseWriter, r *http.Request) {
	if s.service == nil {
		http.Error(w, "Catalog service not available", http.StatusServiceUnavailable)
		return
	}

	var request struct {
		Category string `json:"category"`
		Article  string `json:"article"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if request.Category == "" || request.Article == "" {
		http.Error(w, "category and article are required", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	s.writeEvent(w, flusher, SSEEvent{
		ID:        fmt.Sprintf("article_start_%d", time.Now().UnixNano()),
		Event:     "article_start",
		Data:      map[string]string{"category": request.Category, "article": request.Article},
		Timestamp: time.Now(),
	})

	article, ok := s.service.ArticleBySlug(request.Category, request.Article)
	if !ok {
		s.writeEvent(w, flusher, SSEEvent{
			ID:        fmt.Sprintf("article_error_%d", time.Now().UnixNano()),
			Event:     "article_error",
			Data:      map[string]string{"error": fmt.Sprintf("article %s/%s not found", request.Category, request.Article)},
			Timestamp: time.Now(),
		})
		return
	}

	markdown, err := render.Article(article)
	if err != nil {
		s.writeEvent(w, flusher, SSEEvent{
			ID:        fmt.Sprintf("article_error_%d", time.Now().UnixNano()),
			Event:     "article_error",
			Data:      map[string]string{"error": err.Error()},
			Timestamp: time.Now(),
		})
		return
	}

	s.writeEvent(w, flusher, SSEEvent{
		ID:    fmt.Sprintf("article_result_%d", time.Now().UnixNano()),
		Event: "article_result",
		Data: map[string]interface{}{
			"article":  article,
			"markdown": string(markdown),
			"related":  s.service.Related(article.ID),
		},
		Timestamp: time.Now(),
	})

	s.writeEvent(w, flusher, SSEEvent{
		ID:        fmt.Sprintf("article_complete_%d", time.Now().UnixNano()),
		Event:     "article_complete",
		Data:      map[string]string{"status": "completed"},
		Timestamp: time.Now(),
	})
}

// writeEvent writes a single SSE event to a request-scoped stream
func (s *MCPSSEServer) writeEvent(w http.ResponseWriter, flusher http.Flusher, event SSEEvent) {
	eventJSON, _ := json.Marshal(event)
	fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Event, string(eventJSON))
	flusher.Flush()
}

// GetConnectedClients returns information about connected clients
func (s *MCPSSEServer) GetConnectedClients() []map[string]interface{} {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	clients := make([]map[string]interface{}, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, map[string]interface{}{
			"id":        client.ID,
			"lastSeen":  client.LastSeen,
			"connected": time.Since(client.LastSeen) < 60*time.Second,
		})
	}
	return clients
}

// GetStats returns server statistics
func (s *MCPSSEServer) GetStats() map[string]interface{} {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	return map[string]interface{}{
		"connectedClients": len(s.clients),
		"bufferSize":       len(s.broadcast),
		"serverVersion":    Version,
	}
}
