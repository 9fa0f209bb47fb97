package rates

import (
	"strings"
	"unicode"
)

// SheetTitle derives the human-readable worksheet title for a group.
// The "intl" marker is dropped from the speed, both parts are capitalized,
// e.g. "international,groundintl" becomes "International Ground Rates".
func SheetTitle(key GroupKey) string {
	locale := capitalize(key.Locale)
	speed := capitalize(strings.ReplaceAll(key.ShippingSpeed, "intl", ""))
	return locale + " " + speed + " Rates"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
