package onboarding

import (
	"fmt"
	"strconv"
)

// CCorpPrice is the flat incorporation price for C Corps, regardless of
// state or membership structure
const CCorpPrice = 1300

// StatePricing holds the LLC price pair for one state
type StatePricing struct {
	Single int
	Multi  int
}

// llcPricing is the pricing decision table for LLCs, keyed by state
// code. This is the only copy of the table; the summary view and the
// submission coordinator both price through CalculatePrice.
var llcPricing = map[string]StatePricing{
	"DE": {Single: 1300, Multi: 1400}, // Delaware
	"FL": {Single: 1000, Multi: 1000}, // Florida
	"NM": {Single: 700, Multi: 800},   // New Mexico
	"WA": {Single: 700, Multi: 800},   // Washington
	"WY": {Single: 700, Multi: 800},   // Wyoming
	"NV": {Single: 700, Multi: 800},   // Nevada
}

// CalculatePrice resolves the incorporation price from the entity type,
// membership type, and state code. The second return is false when no
// price is available: unknown state, or an LLC with no membership
// choice yet. Callers render "unavailable" as no price shown, not as an
// error.
func CalculatePrice(entityType EntityType, membershipType MembershipType, stateCode string) (int, bool) {
	if entityType == EntityTypeCCorp {
		return CCorpPrice, true
	}

	if entityType == EntityTypeLLC && membershipType != "" {
		if statePricing, ok := llcPricing[stateCode]; ok {
			if membershipType == MembershipTypeSingle {
				return statePricing.Single, true
			}
			return statePricing.Multi, true
		}
	}

	return 0, false
}

// HasStatePricing reports whether a state code appears in the LLC table
func HasStatePricing(stateCode string) bool {
	_, ok := llcPricing[stateCode]
	return ok
}

// SupportedStates returns the state codes present in the pricing table
func SupportedStates() []string {
	states := make([]string, 0, len(llcPricing))
	for code := range llcPricing {
		states = append(states, code)
	}
	return states
}

// FormatPrice renders a price as whole-dollar USD, e.g. "$1,300"
func FormatPrice(amount int) string {
	s := strconv.Itoa(amount)
	if amount < 0 {
		s = strconv.Itoa(-amount)
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}

	if amount < 0 {
		return fmt.Sprintf("-$%s", out)
	}
	return fmt.Sprintf("$%s", out)
}
