package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/foomo/helpcenter-mcp/service/vo"
	"github.com/stretchr/testify/require"
)

func validCatalog() *vo.Catalog {
	return &vo.Catalog{
		Categories: []vo.Category{
			{Slug: "empezar", Name: "Primeros pasos", Order: 1},
			{Slug: "zonas", Name: "Zonas", Order: 2},
		},
		Articles: []vo.Article{
			{ID: "a1", Slug: "crear-cuenta", CategorySlug: "empezar", Order: 1},
			{ID: "a2", Slug: "que-es-zona", CategorySlug: "zonas", Order: 1},
		},
	}
}

func TestValidateAcceptsValidCatalog(t *testing.T) {
	require.NoError(t, Validate(validCatalog()))
}

func TestValidateRejectsDuplicateCategorySlug(t *testing.T) {
	cat := validCatalog()
	cat.Categories = append(cat.Categories, vo.Category{Slug: "empezar"})
	err := Validate(cat)
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate category slug "empezar"`)
}

func TestValidateRejectsDuplicateArticleID(t *testing.T) {
	cat := validCatalog()
	cat.Articles = append(cat.Articles, vo.Article{ID: "a1", Slug: "otro", CategorySlug: "zonas"})
	err := Validate(cat)
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate article id "a1"`)
}

func TestValidateRejectsDuplicateSlugPair(t *testing.T) {
	cat := validCatalog()
	cat.Articles = append(cat.Articles, vo.Article{ID: "a3", Slug: "crear-cuenta", CategorySlug: "empezar"})
	err := Validate(cat)
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate article slug "crear-cuenta" in category "empezar"`)
}

func TestValidateAllowsSameSlugInDifferentCategories(t *testing.T) {
	cat := validCatalog()
	cat.Articles = append(cat.Articles, vo.Article{ID: "a3", Slug: "crear-cuenta", CategorySlug: "zonas"})
	require.NoError(t, Validate(cat))
}

func TestValidateRejectsUnknownCategoryReference(t *testing.T) {
	cat := validCatalog()
	cat.Articles = append(cat.Articles, vo.Article{ID: "a3", Slug: "perdido", CategorySlug: "no-such"})
	err := Validate(cat)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown category "no-such"`)
}

func TestValidateRejectsMissingIdentifiers(t *testing.T) {
	cat := validCatalog()
	cat.Categories = append(cat.Categories, vo.Category{Name: "Sin slug"})
	require.Error(t, Validate(cat))

	cat = validCatalog()
	cat.Articles = append(cat.Articles, vo.Article{Slug: "sin-id", CategorySlug: "zonas"})
	require.Error(t, Validate(cat))
}

func TestValidateToleratesDanglingRelations(t *testing.T) {
	cat := validCatalog()
	cat.Articles[0].RelatedArticles = []string{"a2", "a99"}
	require.NoError(t, Validate(cat))
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - slug: empezar
    name: Primeros pasos
    icon: rocket
    order: 1
    color: blue
articles:
  - id: a1
    slug: crear-cuenta
    categorySlug: empezar
    category: Primeros pasos
    title: Crear una cuenta
    description: Como registrarte
    readingTime: 3
    views: 42
    order: 1
    keywords:
      - crear cuenta
      - registro
    lastUpdated: "2024-11-02"
    relatedArticles:
      - a2
    content:
      - type: heading
        level: 2
        content: Antes de empezar
      - type: steps
        items:
          - Abre la app
          - Pulsa registrarte
`), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Categories, 1)
	require.Len(t, cat.Articles, 1)

	article := cat.Articles[0]
	require.Equal(t, "a1", article.ID)
	require.Equal(t, 42, article.Views)
	require.Equal(t, []string{"crear cuenta", "registro"}, article.Keywords)
	require.Len(t, article.Content, 2)
	require.Equal(t, vo.SectionHeading, article.Content[0].Kind)
	require.Equal(t, 2, article.Content[0].Level)
	require.Equal(t, vo.SectionSteps, article.Content[1].Kind)
	require.Equal(t, []string{"Abre la app", "Pulsa registrarte"}, article.Content[1].Items)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"categories": [{"slug": "zonas", "name": "Zonas", "order": 1}],
		"articles": [{
			"id": "a2",
			"slug": "que-es-zona",
			"categorySlug": "zonas",
			"title": "Que es una zona",
			"content": [{"type": "paragraph", "content": "Una zona agrupa contenido."}]
		}]
	}`), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Articles, 1)
	require.Equal(t, vo.SectionParagraph, cat.Articles[0].Content[0].Kind)
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - slug: empezar
  - slug: empezar
articles: []
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate category slug")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
