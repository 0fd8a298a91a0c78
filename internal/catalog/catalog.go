// Package catalog provides the fixed merchant/category catalog used by the
// transaction synthesizer: each spending category maps to a set of candidate
// merchant names and a baseline risk weight. The tables are fixed at process
// start and never mutated.
package catalog

// Spending categories, in the canonical order used for weighted draws.
const (
	Groceries   = "groceries"
	Electronics = "electronics"
	Travel      = "travel"
	Dining      = "dining"
	ATM         = "atm"
	Others      = "others"
)

// categories is the canonical draw order; Weights is index-aligned with it.
var categories = []string{Groceries, Electronics, Travel, Dining, ATM, Others}

// Weights is the fixed category draw-weight vector. Everyday categories
// (others, groceries, dining) dominate; atm and travel are rare.
var Weights = []int{30, 10, 5, 20, 3, 32}

// merchants maps each category to its candidate merchant names.
var merchants = map[string][]string{
	Groceries:   {"CornerCafe", "FreshMart", "VeggieStop"},
	Electronics: {"GadgetWorld", "UnknownElectronics", "ElectroHub"},
	Travel:      {"SkylinesTravel", "BudgetJet", "HotelComfort"},
	Dining:      {"TacoTown", "PastaHouse", "SushiSpot"},
	ATM:         {"ATM Network"},
	Others:      {"SubscriptionSvc", "InsuranceCo", "UtilitiesCo"},
}

// riskWeights holds each category's baseline merchant risk, in [0, 0.3].
// Electronics and travel merchants see the most chargebacks; ATM
// withdrawals the fewest.
var riskWeights = map[string]float64{
	Groceries:   0.05,
	Electronics: 0.25,
	Travel:      0.15,
	Dining:      0.08,
	ATM:         0.02,
	Others:      0.04,
}

// defaultRisk is used for a category missing from the risk table.
const defaultRisk = 0.05

// Categories returns the categories in canonical draw order.
func Categories() []string {
	return categories
}

// Merchants returns the candidate merchant names for a category.
// Unknown categories return nil.
func Merchants(category string) []string {
	return merchants[category]
}

// RiskWeight returns the baseline risk for a category.
func RiskWeight(category string) float64 {
	if w, ok := riskWeights[category]; ok {
		return w
	}
	return defaultRisk
}
