package domain

type SectionID string

const (
	SectionPrice        SectionID = "price"
	SectionBrand        SectionID = "brand"
	SectionModelYear    SectionID = "modelYear"
	SectionBody         SectionID = "body"
	SectionTransmission SectionID = "transmission"
	SectionFuel         SectionID = "fuel"
)

var AllSections = []SectionID{
	SectionPrice,
	SectionBrand,
	SectionModelYear,
	SectionBody,
	SectionTransmission,
	SectionFuel,
}

func (s SectionID) Valid() bool {
	for _, id := range AllSections {
		if id == s {
			return true
		}
	}
	return false
}

// PanelState holds the collapsible UI state of the vehicles page.
type PanelState struct {
	FiltersCollapsed  bool        `json:"filters_collapsed"`
	NavCollapsed      bool        `json:"nav_collapsed"`
	MobileFiltersOpen bool        `json:"mobile_filters_open"`
	OpenSections      []SectionID `json:"open_sections"`
}

func DefaultPanelState() PanelState {
	return PanelState{
		OpenSections: []SectionID{SectionPrice, SectionBody, SectionTransmission, SectionFuel},
	}
}

func (p PanelState) IsOpen(id SectionID) bool {
	for _, s := range p.OpenSections {
		if s == id {
			return true
		}
	}
	return false
}

// ToggleSection returns a copy with the section flipped. Sections keep the
// canonical AllSections order.
func (p PanelState) ToggleSection(id SectionID) PanelState {
	open := !p.IsOpen(id)
	next := p
	next.OpenSections = make([]SectionID, 0, len(AllSections))
	for _, s := range AllSections {
		isOpen := p.IsOpen(s)
		if s == id {
			isOpen = open
		}
		if isOpen {
			next.OpenSections = append(next.OpenSections, s)
		}
	}
	return next
}
