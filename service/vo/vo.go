package vo

type Markdown string

// SectionKind selects which fields of a Section carry meaning.
type SectionKind string

const (
	SectionHeading   SectionKind = "heading"
	SectionParagraph SectionKind = "paragraph"
	SectionSteps     SectionKind = "steps"
	SectionTip       SectionKind = "tip"
	SectionWarning   SectionKind = "warning"
	SectionNote      SectionKind = "note"
	SectionImage     SectionKind = "image"
	SectionVideo     SectionKind = "video"
	SectionList      SectionKind = "list"
)

// Section is one typed block of an article body. Fields that do not apply to
// the kind are left empty; the engine never rejects a section.
type Section struct {
	Kind    SectionKind `json:"type" yaml:"type"`
	Content string      `json:"content,omitempty" yaml:"content,omitempty"` // body or heading text
	Items   []string    `json:"items,omitempty" yaml:"items,omitempty"`     // steps/list entries, in reading order
	Level   int         `json:"level,omitempty" yaml:"level,omitempty"`     // heading depth
	Src     string      `json:"src,omitempty" yaml:"src,omitempty"`         // image/video location, opaque
	Alt     string      `json:"alt,omitempty" yaml:"alt,omitempty"`
	Caption string      `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Category is one entry of the fixed category registry. Slug is unique across
// the whole catalog.
type Category struct {
	Slug        string `json:"slug" yaml:"slug"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"` // glyph reference, opaque to the engine
	Order       int    `json:"order" yaml:"order"`
	Color       string `json:"color" yaml:"color"` // rendering hint, opaque to the engine
}

// Article is one help center article. ID is globally unique and stable across
// edits; Slug is only unique within the owning category.
type Article struct {
	ID              string    `json:"id" yaml:"id"`
	Slug            string    `json:"slug" yaml:"slug"`
	Category        string    `json:"category" yaml:"category"`
	CategorySlug    string    `json:"categorySlug" yaml:"categorySlug"`
	Title           string    `json:"title" yaml:"title"`
	Description     string    `json:"description" yaml:"description"`
	Content         []Section `json:"content,omitempty" yaml:"content,omitempty"`
	RelatedArticles []string  `json:"relatedArticles,omitempty" yaml:"relatedArticles,omitempty"` // article IDs, may dangle
	ReadingTime     int       `json:"readingTime,omitempty" yaml:"readingTime,omitempty"`         // minutes
	Views           int       `json:"views,omitempty" yaml:"views,omitempty"`
	Likes           int       `json:"likes,omitempty" yaml:"likes,omitempty"`
	Dislikes        int       `json:"dislikes,omitempty" yaml:"dislikes,omitempty"`
	Order           int       `json:"order,omitempty" yaml:"order,omitempty"`
	Keywords        []string  `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	LastUpdated     string    `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"` // display only
}

// Catalog is the complete immutable snapshot of the help center content,
// loaded once at startup. Slice order is catalog insertion order and is the
// tie break for every sorted view.
type Catalog struct {
	Categories []Category `json:"categories" yaml:"categories"`
	Articles   []Article  `json:"articles" yaml:"articles"`
}
