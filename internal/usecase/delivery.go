package usecase

import (
	"sort"
	"strings"
)

// eligiblePostalCodes covers a radius of about 15 km around Metz.
var eligiblePostalCodes = map[string]struct{}{
	"57000": {},
	"57050": {},
	"57070": {},
	"57140": {},
	"57150": {},
	"57160": {},
	"57170": {},
}

// IsDeliveryEligible reports whether orders can be delivered to postalCode.
// Surrounding whitespace is ignored, anything else must match exactly.
func IsDeliveryEligible(postalCode string) bool {
	code := strings.TrimSpace(postalCode)
	if len(code) != 5 {
		return false
	}
	_, ok := eligiblePostalCodes[code]
	return ok
}

// EligiblePostalCodes returns the allow-list, sorted.
func EligiblePostalCodes() []string {
	codes := make([]string, 0, len(eligiblePostalCodes))
	for code := range eligiblePostalCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
