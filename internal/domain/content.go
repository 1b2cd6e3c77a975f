package domain

type StatCard struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Note  string `json:"note,omitempty" yaml:"note"`
}

type ContentItem struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// ContentPage is one of the static dashboard pages (chat, notes, ...).
type ContentPage struct {
	Slug     string        `json:"slug" yaml:"slug"`
	Title    string        `json:"title" yaml:"title"`
	Subtitle string        `json:"subtitle" yaml:"subtitle"`
	Cards    []StatCard    `json:"cards" yaml:"cards"`
	Items    []ContentItem `json:"items" yaml:"items"`
}

type NavItem struct {
	Label  string `json:"label" yaml:"label"`
	Icon   string `json:"icon" yaml:"icon"`
	Href   string `json:"href" yaml:"href"`
	Active bool   `json:"active" yaml:"-"`
}

type Navigation struct {
	Primary     []NavItem `json:"primary" yaml:"primary"`
	Secondary   []NavItem `json:"secondary" yaml:"secondary"`
	Mobile      []NavItem `json:"mobile" yaml:"mobile"`
	ShowFilters bool      `json:"show_filters" yaml:"-"`
	// ShowMobileNav is false on routes where the bottom bar is hidden.
	ShowMobileNav bool `json:"show_mobile_nav" yaml:"-"`
}

type HeroField struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

type Home struct {
	Brand       string      `json:"brand" yaml:"brand"`
	HeroModel   string      `json:"hero_model" yaml:"hero_model"`
	HeaderLinks []string    `json:"header_links" yaml:"header_links"`
	Search      []HeroField `json:"search" yaml:"search"`
	SearchCTA   string      `json:"search_cta" yaml:"search_cta"`
}
