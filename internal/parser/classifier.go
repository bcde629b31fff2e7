package parser

import (
	"strings"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
)

// supplementaryRoles are fixed overrides shared by every location: rare
// labels the site mapping tables never carried. Only stations present in
// both layouts belong here.
var supplementaryRoles = map[string]string{
	"student supervisor": model.StationSupervisor,
	"lead cashier":       model.StationCashier,
	"beverage attendant": model.StationBeverages,
}

// NormalizeRole strips embedded line breaks and surrounding whitespace and
// lower-cases the role text. All classifier lookups use this form.
func NormalizeRole(role string) string {
	role = strings.ReplaceAll(role, "\n", "")
	role = strings.ReplaceAll(role, "\r", "")
	return strings.ToLower(strings.TrimSpace(role))
}

// IsIgnoredRole reports whether the role text matches one of the profile's
// ignored tokens. Ignored rows are excluded before classification and
// never count toward any diagnostic.
func IsIgnoredRole(role string, p *model.LocationProfile) bool {
	norm := NormalizeRole(role)
	for _, token := range p.IgnoredRoles {
		if norm == token {
			return true
		}
	}
	return false
}

// Classify maps raw role text to a station for the given location.
// Resolution order, first match wins:
//
//  1. exact lookup in the profile's role table
//  2. exact lookup in the supplementary overrides
//  3. ordered keyword scan (declaration order breaks ties, not specificity)
//
// An unmapped role returns ("", false); that is a diagnostic condition,
// not an error.
func Classify(role string, p *model.LocationProfile) (string, bool) {
	norm := NormalizeRole(role)
	if norm == "" {
		return "", false
	}

	if station, ok := p.Roles[norm]; ok {
		return station, true
	}
	if station, ok := supplementaryRoles[norm]; ok {
		return station, true
	}

	for _, rule := range p.FuzzyRules {
		if strings.Contains(norm, rule.Keyword) {
			return rule.Station, true
		}
	}

	return "", false
}
