package services

import (
	"fmt"
	"strings"

	"scholar-site/models"
)

// FormatBibtexAuthors joins a ";"-delimited author list with " and ",
// e.g. "Kouadio, K. L.; Liu, J." -> "Kouadio, K. L. and Liu, J.".
func FormatBibtexAuthors(authors string) string {
	parts := strings.Split(authors, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, " and ")
}

// BibtexCiteKey builds a citation key from the first author's last name, the
// year, and the first title word, e.g. "Kouadio2025Mixture".
func BibtexCiteKey(p models.Publication) string {
	lastName, _, _ := strings.Cut(p.Authors, ",")
	lastName = strings.TrimSpace(lastName)
	firstWord, _, _ := strings.Cut(p.Title, " ")
	key := fmt.Sprintf("%s%d%s", lastName, p.Year, firstWord)
	// keys must be usable in \cite{}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, key)
}

// GenerateBibtex renders the publications as @article entries, in input
// order (callers pass the currently filtered and sorted set).
func GenerateBibtex(pubs []models.Publication) string {
	var b strings.Builder
	for _, p := range pubs {
		fmt.Fprintf(&b, "@article{%s,\n", BibtexCiteKey(p))
		fmt.Fprintf(&b, "  author  = {%s},\n", FormatBibtexAuthors(p.Authors))
		fmt.Fprintf(&b, "  title   = {%s},\n", p.Title)
		fmt.Fprintf(&b, "  journal = {%s},\n", p.Venue)
		fmt.Fprintf(&b, "  year    = {%d},\n", p.Year)
		if p.DOI != "" {
			fmt.Fprintf(&b, "  doi     = {%s},\n", p.DOI)
		}
		if p.URL != "" {
			fmt.Fprintf(&b, "  url     = {%s},\n", p.URL)
		}
		b.WriteString("}\n\n")
	}
	return b.String()
}
