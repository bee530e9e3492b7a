package sicar

import (
	"fmt"
	"html"
	"io"
	"regexp"
)

// cityCodeRe matches IBGE municipality codes.
var cityCodeRe = regexp.MustCompile(`^\d{7}$`)

// cityEntryRe picks code/name pairs out of the JSON the landing page embeds
// for its municipality picker.
var cityEntryRe = regexp.MustCompile(`"codigo":(\d+),"nome":"([^"]+)"`)

// GetCityCodes scrapes the municipality listing of a state from the landing
// page. Returns a map of city name to IBGE code.
func (c *Client) GetCityCodes(state State) (map[string]string, error) {
	if !state.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, string(state))
	}

	res, err := c.session.get(c.citiesURL(state))
	if err != nil {
		return nil, fmt.Errorf("city listing for %s: %w", state, err)
	}
	defer res.Close()

	body, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("city listing for %s: %w", state, err)
	}

	codes := parseCityCodes(html.UnescapeString(string(body)))
	if len(codes) == 0 {
		return nil, fmt.Errorf("no municipality entries for %s", state)
	}
	return codes, nil
}

// parseCityCodes extracts name to code pairs from unescaped page text.
func parseCityCodes(page string) map[string]string {
	matches := cityEntryRe.FindAllStringSubmatch(page, -1)
	if len(matches) == 0 {
		return nil
	}
	codes := make(map[string]string, len(matches))
	for _, m := range matches {
		codes[m[2]] = m[1]
	}
	return codes
}
