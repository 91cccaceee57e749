package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid card number. Spaces between digit
// groups are ignored.
func IsLuhn(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if len(s) < 12 || len(s) > 19 {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}
