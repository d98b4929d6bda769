package importer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	contentserverclient "github.com/foomo/contentserver/client"
	"github.com/foomo/contentserver/content"
	"github.com/foomo/contentserver/requests"
	"github.com/foomo/helpcenter-mcp/catalog"
	"github.com/foomo/helpcenter-mcp/service/vo"
)

// Settings describes where the help center lives: the contentserver that
// knows the tree and the site that serves the pages.
type Settings struct {
	Env              *requests.Env
	ContentSelector  string
	BaseURL          string
	ContentServerURL string
	MimeTypes        []string
}

// Importer builds a static catalog from a live help center: the contentserver
// tree provides structure and order, the pages provide titles, descriptions,
// keywords and body content. It runs at deploy time, never while serving.
type Importer struct {
	contentServerClient *contentserverclient.Client
	httpClient          *http.Client
	settings            Settings
}

func New(settings Settings, httpClient *http.Client) *Importer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	contentServerClient := contentserverclient.New(
		contentserverclient.NewHTTPTransport(
			settings.ContentServerURL,
			contentserverclient.HTTPTransportWithHTTPClient(httpClient),
		))

	return &Importer{
		settings:            settings,
		httpClient:          httpClient,
		contentServerClient: contentServerClient,
	}
}

// isValidURI checks if a URI is valid for processing
func isValidURI(uri string) bool {
	return uri != "" && strings.HasPrefix(uri, "/")
}

// Import walks the tree below rootPath: direct children become categories,
// their children become articles. The returned catalog is validated, so an
// Import that succeeds always yields a servable catalog.
func (imp *Importer) Import(ctx context.Context, rootPath string) (*vo.Catalog, error) {
	root, err := imp.contentServerClient.GetContent(ctx, &requests.Content{
		URI:   rootPath,
		Env:   imp.settings.Env,
		Nodes: map[string]*requests.Node{},
	})
	if err != nil {
		return nil, err
	}

	nodes, err := imp.contentServerClient.GetNodes(ctx, imp.settings.Env, map[string]*requests.Node{
		root.Item.ID: {
			ID:        root.Item.ID,
			MimeTypes: imp.settings.MimeTypes,
		},
	})
	if err != nil {
		return nil, err
	}
	rootNode, ok := nodes[root.Item.ID]
	if !ok {
		return nil, errors.New("root node not found")
	}

	cat := &vo.Catalog{}
	for categoryOrder, categoryID := range rootNode.Index {
		categoryNode, ok := rootNode.Nodes[categoryID]
		if !ok {
			return nil, errors.New("category node not found")
		}
		if !isValidURI(categoryNode.Item.URI) {
			continue
		}
		categoryPage, err := imp.fetchPage(ctx, categoryNode.Item)
		if err != nil {
			return nil, err
		}
		category := vo.Category{
			Slug:        slugFromURI(categoryNode.Item.URI),
			Name:        categoryPage.Title,
			Description: categoryPage.Description,
			Order:       categoryOrder + 1,
		}
		cat.Categories = append(cat.Categories, category)

		for articleOrder, articleID := range categoryNode.Index {
			articleNode, ok := categoryNode.Nodes[articleID]
			if !ok {
				return nil, errors.New("article node not found")
			}
			if !isValidURI(articleNode.Item.URI) {
				continue
			}
			article, err := imp.importArticle(ctx, category, articleNode.Item, articleOrder+1)
			if err != nil {
				return nil, err
			}
			cat.Articles = append(cat.Articles, article)
		}
	}

	if err := catalog.Validate(cat); err != nil {
		return nil, fmt.Errorf("imported tree is not a valid catalog: %w", err)
	}
	return cat, nil
}

func (imp *Importer) importArticle(ctx context.Context, category vo.Category, item *content.Item, order int) (vo.Article, error) {
	page, err := imp.fetchPage(ctx, item)
	if err != nil {
		return vo.Article{}, err
	}
	article := vo.Article{
		ID:           item.ID,
		Slug:         slugFromURI(item.URI),
		Category:     category.Name,
		CategorySlug: category.Slug,
		Title:        page.Title,
		Description:  page.Description,
		Keywords:     page.Keywords,
		Order:        order,
	}
	if page.Body != "" {
		// legacy pages come over as one HTML paragraph, the renderer converts
		article.Content = []vo.Section{{
			Kind:    vo.SectionParagraph,
			Content: page.Body,
		}}
	}
	return article, nil
}

func slugFromURI(uri string) string {
	return path.Base(uri)
}
