package taxonomy

import "github.com/galaapp/gala/pkg/discovery/types"

// budgetPriceLevels is the canonical budget tier to provider
// price-level mapping: P covers free and inexpensive (0-1), PP covers
// moderate (2), PPP covers expensive and very expensive (3-4).
var budgetPriceLevels = map[types.Budget][]int{
	types.BudgetP:   {0, 1},
	types.BudgetPP:  {2},
	types.BudgetPPP: {3, 4},
}

// BudgetPriceLevels returns the provider price levels a budget tier
// accepts; empty for unknown or unset tiers.
func BudgetPriceLevels(budget types.Budget) []int {
	return budgetPriceLevels[budget]
}

// BudgetCompatible reports whether a candidate's price level fits the
// budget tier.
//
// A candidate with no price data is compatible only with the cheapest
// tier: unknown-price venues are biased toward "budget-friendly"
// rather than excluded outright.
func BudgetCompatible(priceLevel *int, budget types.Budget) bool {
	if budget == types.BudgetNone || budget == "" {
		return true
	}

	if priceLevel == nil {
		return budget == types.BudgetP
	}

	for _, level := range budgetPriceLevels[budget] {
		if *priceLevel == level {
			return true
		}
	}

	return false
}

// ClassifyPriceLevel maps a provider price level back onto a budget
// tier, for annotating results. Unknown price data maps to P, matching
// the compatibility default.
func ClassifyPriceLevel(priceLevel *int) types.Budget {
	if priceLevel == nil {
		return types.BudgetP
	}

	for budget, levels := range budgetPriceLevels {
		for _, level := range levels {
			if *priceLevel == level {
				return budget
			}
		}
	}

	return types.BudgetNone
}
