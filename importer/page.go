package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/foomo/contentserver/content"
	"golang.org/x/net/html"
)

// page holds what a single help center page contributes to the catalog.
type page struct {
	Title       string
	Description string
	Keywords    []string
	Body        string // HTML of the selected content node
}

func (imp *Importer) fetchPage(ctx context.Context, item *content.Item) (*page, error) {
	url := imp.settings.BaseURL + item.URI
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := imp.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request for %s failed with status: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	p := &page{
		Title:       extractTitle(doc),
		Description: extractMeta(doc, "description"),
		Keywords:    extractMetaKeywords(doc),
	}

	// category index pages may have no content node, that is fine
	selected, err := extractNodeBySelector(doc, imp.settings.ContentSelector)
	if err != nil {
		return p, nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, selected); err != nil {
		return nil, fmt.Errorf("failed to render content node: %w", err)
	}
	p.Body = buf.String()
	return p, nil
}
