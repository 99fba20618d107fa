// Package validation holds value checks shared by the config layer.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #rrggbb color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ColorToken is one named palette entry.
type ColorToken struct {
	Name  string
	Value string
}

// ValidatePaletteHex checks every non-empty token under prefix.
func ValidatePaletteHex(prefix string, tokens ...ColorToken) []string {
	var errs []string
	for _, tok := range tokens {
		if tok.Value == "" {
			continue
		}
		if !IsHexColor(tok.Value) {
			errs = append(errs, prefix+"."+tok.Name+" must be a hex color like #RRGGBB, got \""+tok.Value+"\"")
		}
	}
	return errs
}
