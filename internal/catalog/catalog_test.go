package catalog_test

import (
	"testing"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/catalog"
)

func TestCategories_WeightVectorIsAligned(t *testing.T) {
	cats := catalog.Categories()
	if len(cats) != len(catalog.Weights) {
		t.Fatalf("have %d categories but %d weights", len(cats), len(catalog.Weights))
	}
	for i, w := range catalog.Weights {
		if w <= 0 {
			t.Errorf("category %s has non-positive weight %d", cats[i], w)
		}
	}
}

func TestMerchants_EveryCategoryHasCandidates(t *testing.T) {
	for _, cat := range catalog.Categories() {
		if len(catalog.Merchants(cat)) == 0 {
			t.Errorf("category %s has no merchants", cat)
		}
	}
}

func TestMerchants_UnknownCategory_ReturnsNil(t *testing.T) {
	if m := catalog.Merchants("crypto"); m != nil {
		t.Errorf("expected nil for unknown category, got %v", m)
	}
}

func TestRiskWeight_WithinDesignRange(t *testing.T) {
	for _, cat := range catalog.Categories() {
		w := catalog.RiskWeight(cat)
		if w < 0 || w > 0.3 {
			t.Errorf("category %s risk %v outside [0, 0.3]", cat, w)
		}
	}
}

func TestRiskWeight_UnknownCategory_UsesDefault(t *testing.T) {
	w := catalog.RiskWeight("crypto")
	if w <= 0 || w > 0.3 {
		t.Errorf("default risk %v outside (0, 0.3]", w)
	}
}
