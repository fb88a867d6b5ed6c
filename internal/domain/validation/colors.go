// Package validation holds value checks shared by configuration and rendering.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB colour.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// PaletteField names one colour of a palette for validation messages.
type PaletteField struct {
	Key   string
	Value string
}

// ValidatePaletteHex returns one message per field that is not a #RRGGBB colour.
func ValidatePaletteHex(prefix string, fields ...PaletteField) []string {
	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.Value) {
			errs = append(errs, prefix+"."+f.Key+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
