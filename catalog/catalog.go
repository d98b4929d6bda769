package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foomo/helpcenter-mcp/service/vo"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog file and returns a validated catalog. The format is
// selected by extension: .json is parsed as JSON, everything else as YAML.
func Load(path string) (*vo.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat vo.Catalog
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("catalog: failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("catalog: failed to parse %s: %w", path, err)
		}
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks the catalog invariants: category slugs are unique, article
// ids are unique, (categorySlug, slug) pairs are unique and every article
// references an existing category. A violation is a configuration error and
// must keep the engine from serving.
//
// Dangling relatedArticles ids are deliberately not checked here: content
// editors add references before the target article exists, and the relation
// resolver drops them at query time.
func Validate(cat *vo.Catalog) error {
	categorySlugs := make(map[string]bool, len(cat.Categories))
	for i, c := range cat.Categories {
		if c.Slug == "" {
			return fmt.Errorf("catalog: category %d: 'slug' is required", i+1)
		}
		if categorySlugs[c.Slug] {
			return fmt.Errorf("catalog: duplicate category slug %q", c.Slug)
		}
		categorySlugs[c.Slug] = true
	}

	ids := make(map[string]bool, len(cat.Articles))
	pairs := make(map[[2]string]bool, len(cat.Articles))
	for i, a := range cat.Articles {
		if a.ID == "" {
			return fmt.Errorf("catalog: article %d: 'id' is required", i+1)
		}
		if a.Slug == "" {
			return fmt.Errorf("catalog: article %q: 'slug' is required", a.ID)
		}
		if ids[a.ID] {
			return fmt.Errorf("catalog: duplicate article id %q", a.ID)
		}
		ids[a.ID] = true
		if !categorySlugs[a.CategorySlug] {
			return fmt.Errorf("catalog: article %q references unknown category %q", a.ID, a.CategorySlug)
		}
		pair := [2]string{a.CategorySlug, a.Slug}
		if pairs[pair] {
			return fmt.Errorf("catalog: duplicate article slug %q in category %q", a.Slug, a.CategorySlug)
		}
		pairs[pair] = true
	}
	return nil
}
