package service

import (
	"sort"
	"strings"

	"github.com/foomo/helpcenter-mcp/service/vo"
)

// Service answers read-only queries over an immutable help center catalog.
// All methods are pure functions of the catalog and their arguments, so a
// single Service is safe for concurrent use.
type Service interface {
	Categories() []vo.Category
	CategoryBySlug(slug string) (vo.Category, bool)
	ArticleBySlug(categorySlug, articleSlug string) (vo.Article, bool)
	ArticlesByCategory(categorySlug string) []vo.Article
	Search(query string) []vo.Article
	Popular(limit int) []vo.Article
	Related(articleID string) []vo.Article
}

type service struct {
	catalog *vo.Catalog
}

// NewService wraps a catalog in the query engine. The catalog must already be
// validated (see the catalog package) and must not be mutated afterwards.
func NewService(catalog *vo.Catalog) Service {
	return &service{catalog: catalog}
}

// Categories returns all categories sorted ascending by their display order.
// Equal orders keep catalog insertion order.
func (s *service) Categories() []vo.Category {
	categories := make([]vo.Category, len(s.catalog.Categories))
	copy(categories, s.catalog.Categories)
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return categories
}

func (s *service) CategoryBySlug(slug string) (vo.Category, bool) {
	for _, c := range s.catalog.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return vo.Category{}, false
}

// ArticleBySlug returns the article matching both slugs exactly. The pair is
// unique by catalog invariant; should a malformed catalog ever contain
// duplicates, the first in catalog order wins.
func (s *service) ArticleBySlug(categorySlug, articleSlug string) (vo.Article, bool) {
	for _, a := range s.catalog.Articles {
		if a.CategorySlug == categorySlug && a.Slug == articleSlug {
			return a, true
		}
	}
	return vo.Article{}, false
}

// ArticlesByCategory returns the category's articles sorted ascending by
// their display order. Order values are author chosen and may collide, so the
// sort must stay stable on catalog order. An unknown or empty category yields
// an empty slice.
func (s *service) ArticlesByCategory(categorySlug string) []vo.Article {
	articles := make([]vo.Article, 0, len(s.catalog.Articles))
	for _, a := range s.catalog.Articles {
		if a.CategorySlug == categorySlug {
			articles = append(articles, a)
		}
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Order < articles[j].Order
	})
	return articles
}

// Search filters articles whose title, description or any keyword contains
// the query, case folded. This is a boolean filter in catalog order, not a
// ranked search. The query is matched literally, surrounding whitespace
// included, and the empty query matches everything - callers use "" as
// "show all".
func (s *service) Search(query string) []vo.Article {
	q := strings.ToLower(query)
	matches := make([]vo.Article, 0, len(s.catalog.Articles))
	for _, a := range s.catalog.Articles {
		if articleMatches(a, q) {
			matches = append(matches, a)
		}
	}
	return matches
}

func articleMatches(a vo.Article, query string) bool {
	if strings.Contains(strings.ToLower(a.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), query) {
		return true
	}
	for _, keyword := range a.Keywords {
		if strings.Contains(strings.ToLower(keyword), query) {
			return true
		}
	}
	return false
}

// Popular returns up to limit articles sorted by view count descending.
// Articles with equal views keep catalog order. A limit beyond the catalog
// size returns the whole catalog sorted; zero or negative returns nothing.
func (s *service) Popular(limit int) []vo.Article {
	if limit <= 0 {
		return []vo.Article{}
	}
	articles := make([]vo.Article, len(s.catalog.Articles))
	copy(articles, s.catalog.Articles)
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Views > articles[j].Views
	})
	if limit > len(articles) {
		limit = len(articles)
	}
	return articles[:limit]
}

// Related resolves an article's declared related ids into full articles,
// preserving declared order. Ids that do not resolve are dropped silently -
// editors add references before the target exists. An unknown articleID
// yields an empty slice.
func (s *service) Related(articleID string) []vo.Article {
	article, ok := s.articleByID(articleID)
	if !ok {
		return []vo.Article{}
	}
	related := make([]vo.Article, 0, len(article.RelatedArticles))
	for _, id := range article.RelatedArticles {
		if a, ok := s.articleByID(id); ok {
			related = append(related, a)
		}
	}
	return related
}

func (s *service) articleByID(id string) (vo.Article, bool) {
	for _, a := range s.catalog.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return vo.Article{}, false
}
