package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/foomo/helpcenter-mcp/service/vo"
	"golang.org/x/net/html"
)

// Article renders an article's section sequence into a single markdown
// document, title first. Sections the renderer cannot make sense of are
// skipped rather than rejected.
func Article(article vo.Article) (vo.Markdown, error) {
	var b strings.Builder
	b.WriteString("# " + article.Title + "\n")
	if article.Description != "" {
		b.WriteString("\n" + article.Description + "\n")
	}
	for _, section := range article.Content {
		rendered, err := Section(section)
		if err != nil {
			return "", err
		}
		if rendered == "" {
			continue
		}
		b.WriteString("\n" + string(rendered) + "\n")
	}
	return vo.Markdown(b.String()), nil
}

// Section renders a single section. Paragraph family content may carry HTML
// fragments imported from the legacy help pages; those are converted to
// markdown instead of being passed through.
func Section(section vo.Section) (vo.Markdown, error) {
	switch section.Kind {
	case vo.SectionHeading:
		level := section.Level
		if level < 2 {
			level = 2
		}
		if level > 6 {
			level = 6
		}
		return vo.Markdown(strings.Repeat("#", level) + " " + section.Content), nil
	case vo.SectionParagraph:
		text, err := bodyText(section.Content)
		if err != nil {
			return "", err
		}
		return vo.Markdown(text), nil
	case vo.SectionTip, vo.SectionWarning, vo.SectionNote:
		text, err := bodyText(section.Content)
		if err != nil {
			return "", err
		}
		return vo.Markdown("> **" + admonitionLabel(section.Kind) + ":** " + text), nil
	case vo.SectionSteps:
		lines := make([]string, len(section.Items))
		for i, item := range section.Items {
			lines[i] = fmt.Sprintf("%d. %s", i+1, item)
		}
		return vo.Markdown(strings.Join(lines, "\n")), nil
	case vo.SectionList:
		lines := make([]string, len(section.Items))
		for i, item := range section.Items {
			lines[i] = "- " + item
		}
		return vo.Markdown(strings.Join(lines, "\n")), nil
	case vo.SectionImage:
		md := fmt.Sprintf("![%s](%s)", section.Alt, section.Src)
		if section.Caption != "" {
			md += "\n*" + section.Caption + "*"
		}
		return vo.Markdown(md), nil
	case vo.SectionVideo:
		label := section.Caption
		if label == "" {
			label = section.Alt
		}
		if label == "" {
			label = section.Src
		}
		return vo.Markdown(fmt.Sprintf("[Video: %s](%s)", label, section.Src)), nil
	default:
		// Unknown kinds are tolerated, malformed rendering is not our concern.
		return "", nil
	}
}

func admonitionLabel(kind vo.SectionKind) string {
	switch kind {
	case vo.SectionWarning:
		return "Warning"
	case vo.SectionNote:
		return "Note"
	default:
		return "Tip"
	}
}

// bodyText returns the content as markdown, converting it first if it looks
// like an HTML fragment.
func bodyText(content string) (string, error) {
	if !looksLikeHTML(content) {
		return content, nil
	}
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML content: %w", err)
	}
	markdownBytes, err := htmltomarkdown.ConvertNode(doc)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return strings.TrimSpace(string(markdownBytes)), nil
}

func looksLikeHTML(content string) bool {
	open := strings.IndexByte(content, '<')
	if open < 0 || open+1 >= len(content) {
		return false
	}
	// a tag, not a stray comparison sign
	next := content[open+1]
	if next != '/' && (next < 'a' || next > 'z') && (next < 'A' || next > 'Z') {
		return false
	}
	return strings.IndexByte(content[open:], '>') > 0
}
