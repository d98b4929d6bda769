package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/foomo/helpcenter-mcp/render"
	"github.com/foomo/helpcenter-mcp/service"
	"github.com/foomo/helpcenter-mcp/service/vo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const Version = "0.1.0"

type GetArticleRequest struct {
	Category string `json:"category"` // Category slug
	Article  string `json:"article"`  // Article slug within the category
}

type GetArticleResponse struct {
	Article  *vo.Article  `json:"article"`
	Markdown vo.Markdown  `json:"markdown,omitempty"` // Rendered article body
	Related  []vo.Article `json:"related"`            // Resolved related articles, in declared order
}

type ListArticlesRequest struct {
	Category string `json:"category"` // Category slug
}

type ListArticlesResponse struct {
	Articles []vo.Article `json:"articles"`
}

type SearchArticlesRequest struct {
	Query string `json:"query"` // Substring to match, empty returns everything
}

type SearchArticlesResponse struct {
	Articles []vo.Article `json:"articles"`
}

type PopularArticlesRequest struct {
	Limit int `json:"limit"` // Maximum number of articles to return
}

type PopularArticlesResponse struct {
	Articles []vo.Article `json:"articles"`
}

type RelatedArticlesRequest struct {
	ID string `json:"id"` // Article id
}

type RelatedArticlesResponse struct {
	Articles []vo.Article `json:"articles"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []vo.Category `json:"categories"`
}

const defaultPopularLimit = 5

// NewServer creates a new MCP server exposing the help center catalog tools
func NewServer(serviceInstance service.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Help Center MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	getArticleTool := mcp.NewTool("getArticle",
		mcp.WithDescription("Get a single help center article with rendered markdown and related articles"),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("The slug of the category the article belongs to"),
		),
		mcp.WithString("article",
			mcp.Required(),
			mcp.Description("The slug of the article within its category"),
		),
	)
	s.AddTool(getArticleTool, mcp.NewTypedToolHandler(getArticleHandler(serviceInstance)))

	listArticlesTool := mcp.NewTool("listArticles",
		mcp.WithDescription("List the articles of a category in display order"),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("The slug of the category to list"),
		),
	)
	s.AddTool(listArticlesTool, mcp.NewTypedToolHandler(listArticlesHandler(serviceInstance)))

	searchTool := mcp.NewTool("searchArticles",
		mcp.WithDescription("Search articles by substring across title, description and keywords; an empty query returns all articles"),
		mcp.WithString("query",
			mcp.Description("The text to search for, matched case-insensitively"),
		),
	)
	s.AddTool(searchTool, mcp.NewTypedToolHandler(searchArticlesHandler(serviceInstance)))

	popularTool := mcp.NewTool("popularArticles",
		mcp.WithDescription("Get the most viewed articles"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of articles to return (default 5)"),
		),
	)
	s.AddTool(popularTool, mcp.NewTypedToolHandler(popularArticlesHandler(serviceInstance)))

	relatedTool := mcp.NewTool("relatedArticles",
		mcp.WithDescription("Resolve the related articles declared by an article"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The id of the article whose relations to resolve"),
		),
	)
	s.AddTool(relatedTool, mcp.NewTypedToolHandler(relatedArticlesHandler(serviceInstance)))

	listCategoriesTool := mcp.NewTool("listCategories",
		mcp.WithDescription("List all help center categories in display order"),
	)
	s.AddTool(listCategoriesTool, mcp.NewTypedToolHandler(listCategoriesHandler(serviceInstance)))

	return s
}

func getArticleHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args GetArticleRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetArticleRequest) (*mcp.CallToolResult, error) {
		if args.Category == "" {
			return mcp.NewToolResultError("category is required"), nil
		}
		if args.Article == "" {
			return mcp.NewToolResultError("article is required"), nil
		}

		article, ok := serviceInstance.ArticleBySlug(args.Category, args.Article)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("article %s/%s not found", args.Category, args.Article)), nil
		}

		markdown, err := render.Article(article)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render article: %v", err)), nil
		}

		response := GetArticleResponse{
			Article:  &article,
			Markdown: markdown,
			Related:  serviceInstance.Related(article.ID),
		}
		return marshalToolResult(response)
	}
}

func listArticlesHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args ListArticlesRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ListArticlesRequest) (*mcp.CallToolResult, error) {
		if args.Category == "" {
			return mcp.NewToolResultError("category is required"), nil
		}
		// an unknown category is an empty list, not an error
		response := ListArticlesResponse{
			Articles: serviceInstance.ArticlesByCategory(args.Category),
		}
		return marshalToolResult(response)
	}
}

func searchArticlesHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args SearchArticlesRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args SearchArticlesRequest) (*mcp.CallToolResult, error) {
		// no validation: the empty query means "show all"
		response := SearchArticlesResponse{
			Articles: serviceInstance.Search(args.Query),
		}
		return marshalToolResult(response)
	}
}

func popularArticlesHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args PopularArticlesRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args PopularArticlesRequest) (*mcp.CallToolResult, error) {
		limit := args.Limit
		if limit == 0 {
			limit = defaultPopularLimit
		}
		if limit < 0 {
			return mcp.NewToolResultError("limit must not be negative"), nil
		}
		response := PopularArticlesResponse{
			Articles: serviceInstance.Popular(limit),
		}
		return marshalToolResult(response)
	}
}

func relatedArticlesHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args RelatedArticlesRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args RelatedArticlesRequest) (*mcp.CallToolResult, error) {
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		// an unknown id simply has no related articles
		response := RelatedArticlesResponse{
			Articles: serviceInstance.Related(args.ID),
		}
		return marshalToolResult(response)
	}
}

func listCategoriesHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args ListCategoriesRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ListCategoriesRequest) (*mcp.CallToolResult, error) {
		response := ListCategoriesResponse{
			Categories: serviceInstance.Categories(),
		}
		return marshalToolResult(response)
	}
}

func marshalToolResult(response any) (*mcp.CallToolResult, error) {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseBytes)), nil
}
