package utils

import (
	"fmt"
	"net/url"
)

// ShowFiltersParam is the one-shot query flag that opens the filter drawer.
const ShowFiltersParam = "filters"

// ConsumeShowFilters reads the show-filters flag from rawURL and returns the
// URL with the flag removed. Other query parameters are preserved; an empty
// query leaves no trailing "?". Fragments are dropped.
func ConsumeShowFilters(rawURL string) (open bool, cleaned string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	params := u.Query()
	open = params.Get(ShowFiltersParam) == "1"
	params.Del(ShowFiltersParam)

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if q := params.Encode(); q != "" {
		return open, path + "?" + q, nil
	}
	return open, path, nil
}

// StripShowFilters removes the flag without reporting its value. Used when the
// drawer closes.
func StripShowFilters(rawURL string) (string, error) {
	_, cleaned, err := ConsumeShowFilters(rawURL)
	return cleaned, err
}
