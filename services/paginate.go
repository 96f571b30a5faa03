package services

// PageToken ist ein Eintrag der sichtbaren Seitenleiste: entweder eine
// Seitennummer oder eine Ellipse für einen kollabierten Bereich.
type PageToken struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Page beschreibt einen Ausschnitt einer geordneten Folge plus die Metadaten
// für die Seitenleiste.
type Page struct {
	Number     int         `json:"page"`        // 1-basiert, geklemmt
	TotalPages int         `json:"total_pages"` // >= 1, auch bei 0 Einträgen
	TotalItems int         `json:"total_items"`
	Start      int         `json:"start"` // Index des ersten Eintrags (inklusiv)
	End        int         `json:"end"`   // Index hinter dem letzten Eintrag (exklusiv)
	Window     []PageToken `json:"window"`
}

// windowDelta is how many page numbers appear either side of the current one.
const windowDelta = 2

// Paginate computes the item range and visible page window for a 1-based
// page over totalItems entries. The page is clamped into [1, totalPages], so
// a shrinking filtered set never yields an empty out-of-range page.
// totalPages is at least 1 even for an empty sequence.
func Paginate(totalItems, pageSize, page int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Number:     page,
		TotalPages: totalPages,
		TotalItems: totalItems,
		Start:      start,
		End:        end,
		Window:     pageWindow(page, totalPages),
	}
}

// pageWindow always includes the first and last page, a contiguous block of
// ±windowDelta around the current page, and a single ellipsis per collapsed
// gap, however small.
func pageWindow(page, totalPages int) []PageToken {
	include := make(map[int]bool)
	include[1] = true
	include[totalPages] = true
	for p := page - windowDelta; p <= page+windowDelta; p++ {
		if p >= 1 && p <= totalPages {
			include[p] = true
		}
	}

	var window []PageToken
	prev := 0
	for p := 1; p <= totalPages; p++ {
		if !include[p] {
			continue
		}
		if prev != 0 && p-prev > 1 {
			window = append(window, PageToken{Ellipsis: true})
		}
		window = append(window, PageToken{Number: p})
		prev = p
	}
	return window
}
