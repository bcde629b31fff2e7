package model

import "fmt"

// Station names shared by both locations.
const (
	StationCashier    = "CASHIER"
	StationBeverages  = "BEVERAGES"
	StationUtility    = "UTILITY"
	StationSupervisor = "SUPERVISOR"
)

// ikesProfile is the Ike's dining hall configuration. The three shift
// windows tile the full day: the overnight tab picks up everything at or
// after 10pm plus the early hours before 6am.
var ikesProfile = LocationProfile{
	Name: "ikes",
	Roles: map[string]string{
		"cashier":           StationCashier,
		"production cook":   "HOMESTYLE ROOTED",
		"dwo cook":          "DELICIOUS WITHOUT",
		"flips cook":        "FLIPS",
		"pizza cook":        "FLOUR SAUCE",
		"pasta cook":        "LA CUCINA",
		"united table cook": "UNITED TABLE",
		"deli cook":         "HOMESLICE",
		"cold prep cook":    "GARDEN SOCIAL & NOOK",
		"utility dishroom":  StationUtility,
		"utility pots":      StationUtility,
		"utility foh":       StationUtility,
		"table busser":      "TABLE BUSSER",
		"culinary lead":     "CULINARY",
		"supervisor":        StationSupervisor,
	},
	FuzzyRules: []FuzzyRule{
		{"homestyle", "HOMESTYLE ROOTED"},
		{"dwo", "DELICIOUS WITHOUT"},
		{"homeslice", "HOMESLICE"},
		{"united table", "UNITED TABLE"},
		{"flips", "FLIPS"},
		{"pizza/pasta", "FLOUR SAUCE"},
		{"pizza", "FLOUR SAUCE"},
		{"pasta", "LA CUCINA"},
		{"dessert", "SWEET SHOPPE"},
		{"salad bar", "GARDEN SOCIAL & NOOK"},
		{"cold prep", "GARDEN SOCIAL & NOOK"},
		{"deli", "HOMESLICE"},
		{"foh", StationBeverages},
		{"busser", "TABLE BUSSER"},
		{"utility", StationUtility},
		{"culinary", "CULINARY"},
		{"supervisor", StationSupervisor},
		{"cashier", StationCashier},
	},
	IgnoredRoles: []string{"open shifts", "vacant"},
	Windows: []ShiftWindow{
		{Name: "6am-2pm", MealPeriods: "B BR", Lower: 6, Upper: 14},
		{Name: "2pm-11pm", MealPeriods: "D", Lower: 14, Upper: 22},
		{Name: "10pm-6am", MealPeriods: "OVNT", Lower: 22, Upper: 24},
	},
	Layout: [][]string{
		{StationCashier, "GARDEN SOCIAL & NOOK", "LA CUCINA"},
		{"FLOUR SAUCE", "DELICIOUS WITHOUT", "SWEET SHOPPE"},
		{"UNITED TABLE", "HOMESLICE", "HOMESTYLE ROOTED"},
		{"FLIPS", "CULINARY", StationUtility},
		{StationBeverages, "TABLE BUSSER", StationSupervisor},
	},
	Tiled: true,
}

// southsideProfile is the Southside location. Its two shift windows were
// configured before the location ran overnight service and do not cover
// the hours before 6am or at/after 10pm; starts in that gap are dropped
// from the chart (see VerificationCounters.OutOfWindow).
var southsideProfile = LocationProfile{
	Name: "southside",
	Roles: map[string]string{
		"cashier":        StationCashier,
		"pizza cook":     "POTOMAC PIE",
		"pasta cook":     "LITTLE ITALY",
		"bakery cook":    "BLUE RIDGE BAKERY",
		"salad prep":     "GREENS & GRAINS",
		"grill cook":     "CAROLINA SMOKEHOUSE",
		"utility":        "DISHROOM",
		"dish machine":   "DISHROOM",
		"barista":        StationBeverages,
		"supervisor":     StationSupervisor,
		"shift manager":  StationSupervisor,
	},
	FuzzyRules: []FuzzyRule{
		{"pizza", "POTOMAC PIE"},
		{"pasta", "LITTLE ITALY"},
		{"bakery", "BLUE RIDGE BAKERY"},
		{"dessert", "BLUE RIDGE BAKERY"},
		{"salad", "GREENS & GRAINS"},
		{"grill", "CAROLINA SMOKEHOUSE"},
		{"smokehouse", "CAROLINA SMOKEHOUSE"},
		{"utility", "DISHROOM"},
		{"dish", "DISHROOM"},
		{"barista", StationBeverages},
		{"foh", StationBeverages},
		{"supervisor", StationSupervisor},
		{"cashier", StationCashier},
	},
	IgnoredRoles: []string{"open shifts"},
	Windows: []ShiftWindow{
		{Name: "6am-2pm", MealPeriods: "B L", Lower: 6, Upper: 14},
		{Name: "2pm-10pm", MealPeriods: "D", Lower: 14, Upper: 22},
	},
	Layout: [][]string{
		{"POTOMAC PIE", "LITTLE ITALY", "BLUE RIDGE BAKERY"},
		{"GREENS & GRAINS", "CAROLINA SMOKEHOUSE", "DISHROOM"},
		{StationCashier, StationBeverages, StationSupervisor},
	},
	Tiled: false,
}

// ProfileByName resolves a location identifier to its profile.
func ProfileByName(name string) (*LocationProfile, error) {
	switch name {
	case "ikes":
		return &ikesProfile, nil
	case "southside":
		return &southsideProfile, nil
	default:
		return nil, fmt.Errorf("unknown location %q", name)
	}
}

// ProfileNames lists the configured locations.
func ProfileNames() []string {
	return []string{"ikes", "southside"}
}
