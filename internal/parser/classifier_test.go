package parser

import (
	"testing"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
)

func TestClassifyIkes(t *testing.T) {
	p, err := model.ProfileByName("ikes")
	if err != nil {
		t.Fatalf("ProfileByName: %v", err)
	}

	tests := []struct {
		role string
		want string
		ok   bool
	}{
		// exact table hits
		{"Cashier", model.StationCashier, true},
		{"cashier", model.StationCashier, true},
		{"Production Cook", "HOMESTYLE ROOTED", true},
		{"Utility Dishroom", model.StationUtility, true},
		// normalization: embedded newlines and case
		{"Pizza\nCook", "FLOUR SAUCE", true},
		{"  SUPERVISOR  ", model.StationSupervisor, true},
		// supplementary overrides
		{"Student Supervisor", model.StationSupervisor, true},
		{"Lead Cashier", model.StationCashier, true},
		{"Beverage Attendant", model.StationBeverages, true},
		// keyword fallback, first rule wins over later ones
		{"AM Pizza/Pasta Cook", "FLOUR SAUCE", true},
		{"Evening Pasta Station", "LA CUCINA", true},
		{"Weekend Dessert Prep", "SWEET SHOPPE", true},
		{"FOH Attendant", model.StationBeverages, true},
		// unmapped
		{"Catering Lead", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Classify(tt.role, p)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.role, got, ok, tt.want, tt.ok)
		}
	}
}

// An exact table entry must win even when an earlier keyword rule would
// also match the text.
func TestClassifyExactBeatsKeyword(t *testing.T) {
	p, err := model.ProfileByName("ikes")
	if err != nil {
		t.Fatalf("ProfileByName: %v", err)
	}

	// "deli cook" contains the keyword "deli", but resolution must come
	// from the role table, not the scan.
	got, ok := Classify("Deli Cook", p)
	if !ok || got != "HOMESLICE" {
		t.Errorf("Classify(Deli Cook) = (%q, %v), want (HOMESLICE, true)", got, ok)
	}
}

func TestClassifySouthside(t *testing.T) {
	p, err := model.ProfileByName("southside")
	if err != nil {
		t.Fatalf("ProfileByName: %v", err)
	}

	tests := []struct {
		role string
		want string
		ok   bool
	}{
		{"Pizza Cook", "POTOMAC PIE", true},
		{"Bakery Cook", "BLUE RIDGE BAKERY", true},
		{"PM Grill", "CAROLINA SMOKEHOUSE", true},
		{"Dish Machine", "DISHROOM", true},
		{"Barista", model.StationBeverages, true},
		{"Shift Manager", model.StationSupervisor, true},
		{"Sous Chef", "", false},
	}

	for _, tt := range tests {
		got, ok := Classify(tt.role, p)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.role, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsIgnoredRole(t *testing.T) {
	ikes, _ := model.ProfileByName("ikes")
	southside, _ := model.ProfileByName("southside")

	tests := []struct {
		role string
		p    *model.LocationProfile
		want bool
	}{
		{"Open Shifts", ikes, true},
		{"OPEN SHIFTS", ikes, true},
		{"Vacant", ikes, true},
		{"Vacant", southside, false},
		{"Open Shifts", southside, true},
		{"Cashier", ikes, false},
	}

	for _, tt := range tests {
		if got := IsIgnoredRole(tt.role, tt.p); got != tt.want {
			t.Errorf("IsIgnoredRole(%q, %s) = %v, want %v", tt.role, tt.p.Name, got, tt.want)
		}
	}
}
