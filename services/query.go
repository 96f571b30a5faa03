package services

import (
	"sort"
	"strings"

	"scholar-site/models"
)

// Matches reports whether the free-text query is contained in the
// whitespace-joined fields, case-insensitive. An empty or whitespace-only
// query matches everything. Missing optional fields arrive here as empty
// strings and never fail a record on their own.
func Matches(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), q)
}

// Filter reduces items to those matching the free-text query against the
// haystack fields AND every additional predicate. Input order is preserved;
// there is no relevance scoring. Filtering an already-filtered slice with the
// same arguments yields the same slice content.
func Filter[T any](items []T, query string, haystack func(T) []string, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !Matches(query, haystack(it)...) {
			continue
		}
		ok := true
		for _, pred := range preds {
			if !pred(it) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out
}

// TagSet builds a lowercase lookup set, as the filter engine matches tags
// case-insensitively.
func TagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = true
	}
	return set
}

// PubSort ist die Sortierreihenfolge der Publikationsliste.
type PubSort string

const (
	SortYearDesc PubSort = "yearDesc"
	SortYearAsc  PubSort = "yearAsc"
	SortTitleAsc PubSort = "titleAsc"
)

// SortPublications sorts a copy of pubs by the requested order. Year sorts
// tie-break on title so pagination stays stable.
func SortPublications(pubs []models.Publication, order PubSort) []models.Publication {
	arr := make([]models.Publication, len(pubs))
	copy(arr, pubs)
	switch order {
	case SortYearAsc:
		sort.SliceStable(arr, func(i, j int) bool {
			if arr[i].Year != arr[j].Year {
				return arr[i].Year < arr[j].Year
			}
			return arr[i].Title < arr[j].Title
		})
	case SortTitleAsc:
		sort.SliceStable(arr, func(i, j int) bool { return arr[i].Title < arr[j].Title })
	default: // SortYearDesc
		sort.SliceStable(arr, func(i, j int) bool {
			if arr[i].Year != arr[j].Year {
				return arr[i].Year > arr[j].Year
			}
			return arr[i].Title < arr[j].Title
		})
	}
	return arr
}

// SplitFeatured partitions publications into featured and the rest,
// preserving order within each part.
func SplitFeatured(pubs []models.Publication) (featured, rest []models.Publication) {
	for _, p := range pubs {
		if p.Featured {
			featured = append(featured, p)
		} else {
			rest = append(rest, p)
		}
	}
	return featured, rest
}

// SortTalks orders talks newest first by start date, falling back to the
// event name for equal dates.
func SortTalks(talks []models.Talk) []models.Talk {
	arr := make([]models.Talk, len(talks))
	copy(arr, talks)
	sort.SliceStable(arr, func(i, j int) bool {
		di, dj := arr[i].SortKey(), arr[j].SortKey()
		if di != dj {
			return di > dj
		}
		return arr[i].Event < arr[j].Event
	})
	return arr
}

// SortFundingByStart orders funding entries by period start ascending
// (timeline order).
func SortFundingByStart(items []models.Funding) []models.Funding {
	arr := make([]models.Funding, len(items))
	copy(arr, items)
	sort.SliceStable(arr, func(i, j int) bool { return arr[i].PeriodStart < arr[j].PeriodStart })
	return arr
}

// PublicationYears returns the distinct years present, newest first, for the
// year filter dropdown.
func PublicationYears(pubs []models.Publication) []int {
	seen := make(map[int]bool)
	var years []int
	for _, p := range pubs {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// FundingYears returns the distinct start years present, newest first.
func FundingYears(items []models.Funding) []int {
	seen := make(map[int]bool)
	var years []int
	for _, f := range items {
		if y := f.StartYear(); y != 0 && !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// RelatedPublications performs the soft join between a research area and the
// publication collection: free-text match OR tag-set intersection, featured
// first, then year descending, then title, capped at max.
func RelatedPublications(pubs []models.Publication, query string, tags []string, max int) []models.Publication {
	tagSet := TagSet(tags)
	hasTags := len(tagSet) > 0

	matched := Filter(pubs, "", models.Publication.Haystack, func(p models.Publication) bool {
		matchQ := strings.TrimSpace(query) != "" && Matches(query, p.Haystack()...)
		matchTags := hasTags && p.HasAnyTag(tagSet)
		return matchQ || matchTags
	})

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Title < b.Title
	})

	if max > 0 && len(matched) > max {
		matched = matched[:max]
	}
	return matched
}
