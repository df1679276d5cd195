package models

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether s is a #rgb or #rrggbb colour.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
