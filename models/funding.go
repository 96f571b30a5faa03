package models

import "strconv"

// FundingType unterscheidet Förderungen von Auftragsprojekten.
type FundingType string

const (
	FundingGrant    FundingType = "Grant"
	FundingContract FundingType = "Contract"
)

// Funding repräsentiert eine Förderung oder einen Forschungsvertrag.
type Funding struct {
	Title       string      `json:"title"`
	PeriodStart string      `json:"period_start"` // YYYY-MM
	PeriodEnd   string      `json:"period_end"`   // YYYY-MM
	Type        FundingType `json:"type"`

	Subtype      string `json:"subtype,omitempty"`
	Program      string `json:"program,omitempty"`
	Organization string `json:"organization,omitempty"`
	Location     string `json:"location,omitempty"`
	GrantNumber  string `json:"grant_number,omitempty"`
	FunderID     string `json:"funder_id,omitempty"`

	// Betrag in CNY; nil bedeutet "nicht offengelegt" (nicht null!)
	AmountCNY *float64 `json:"amount_cny,omitempty"`
}

// Amount gibt den Betrag zurück, nil zählt als 0 in Summen.
func (f Funding) Amount() float64 {
	if f.AmountCNY == nil {
		return 0
	}
	return *f.AmountCNY
}

// StartYear ist das Jahr des Förderbeginns, 0 wenn unbekannt.
func (f Funding) StartYear() int {
	if len(f.PeriodStart) < 4 {
		return 0
	}
	y, err := strconv.Atoi(f.PeriodStart[:4])
	if err != nil {
		return 0
	}
	return y
}

// EndYear ist das Jahr des Förderendes, 0 wenn unbekannt.
func (f Funding) EndYear() int {
	if len(f.PeriodEnd) < 4 {
		return 0
	}
	y, err := strconv.Atoi(f.PeriodEnd[:4])
	if err != nil {
		return 0
	}
	return y
}

// Haystack liefert alle textsuchbaren Felder für den Filter.
func (f Funding) Haystack() []string {
	return []string{
		f.Title, string(f.Type), f.Subtype, f.Program,
		f.Organization, f.Location, f.GrantNumber,
	}
}
