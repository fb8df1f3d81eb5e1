package models

// Membership plan tiers.
const (
	PlanBasic    = "Basic"
	PlanStandard = "Standard"
	PlanPremium  = "Premium"
)

// Monthly plan prices in integer currency units.
var planPrices = map[string]int64{
	PlanBasic:    1500,
	PlanStandard: 2000,
	PlanPremium:  2500,
}

// PlanPrice returns the monthly price for a plan tier. Unknown plans fall back
// to the Basic price, matching how new-member bills have always been priced.
func PlanPrice(plan string) int64 {
	if price, ok := planPrices[plan]; ok {
		return price
	}
	return planPrices[PlanBasic]
}
