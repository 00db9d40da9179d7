package urldoc

import "strings"

// unknownField is the placeholder written when metadata extraction could not
// determine a field.
const unknownField = "Unknown"

// RenderArticle renders an article as a text document: a frontmatter block
// with title, source URL, publication date, and authors, then a blank line,
// then the body verbatim. Rendering is deterministic: identical articles
// produce byte-identical documents.
func RenderArticle(a *Article) string {
	title := a.Title
	if title == "" {
		title = DefaultTitle(a.SourceURL)
	}

	date := unknownField
	if a.PublishedAt != nil {
		date = a.PublishedAt.Format("2006-01-02")
	}

	authors := unknownField
	if len(a.Authors) > 0 {
		authors = strings.Join(a.Authors, ", ")
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(title)
	b.WriteString("\nsource: ")
	b.WriteString(a.SourceURL)
	b.WriteString("\ndate: ")
	b.WriteString(date)
	b.WriteString("\nauthors: ")
	b.WriteString(authors)
	b.WriteString("\n---\n\n")
	b.WriteString(a.Body)
	return b.String()
}
