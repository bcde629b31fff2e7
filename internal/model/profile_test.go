package model

import "testing"

func TestProfileByName(t *testing.T) {
	for _, name := range ProfileNames() {
		p, err := ProfileByName(name)
		if err != nil {
			t.Fatalf("ProfileByName(%q): %v", name, err)
		}
		if p.Name != name {
			t.Errorf("profile %q reports name %q", name, p.Name)
		}
	}
	if _, err := ProfileByName("nowhere"); err == nil {
		t.Error("expected error for unknown location")
	}
}

// Every station a role or fuzzy rule can produce must either appear in
// the layout or be a known off-chart case; otherwise classified staff
// silently fall into the unmapped bucket.
func TestProfileMappingsLandOnLayout(t *testing.T) {
	for _, name := range ProfileNames() {
		p, _ := ProfileByName(name)
		for role, station := range p.Roles {
			if !p.HasStation(station) {
				t.Errorf("%s: role %q maps to station %q not in layout", name, role, station)
			}
		}
		for _, rule := range p.FuzzyRules {
			if !p.HasStation(rule.Station) {
				t.Errorf("%s: keyword %q maps to station %q not in layout", name, rule.Keyword, rule.Station)
			}
		}
	}
}

func TestLayoutHelpers(t *testing.T) {
	p, _ := ProfileByName("ikes")

	if got := p.LayoutWidth(); got != 3 {
		t.Errorf("LayoutWidth = %d, want 3", got)
	}
	if !p.HasStation(StationCashier) {
		t.Error("layout missing CASHIER")
	}
	if p.HasStation("NOT A STATION") {
		t.Error("HasStation matched an unknown name")
	}

	stations := p.LayoutStations()
	want := 0
	for _, row := range p.Layout {
		want += len(row)
	}
	if len(stations) != want {
		t.Errorf("LayoutStations() has %d entries, want %d", len(stations), want)
	}
}

func TestShiftWindowContains(t *testing.T) {
	w := ShiftWindow{Lower: 6, Upper: 14}
	tests := []struct {
		start float64
		want  bool
	}{
		{6.0, true},
		{13.99, true},
		{14.0, false},
		{5.99, false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.start); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.start, got, tt.want)
		}
	}
}

func TestVerificationCounters(t *testing.T) {
	v := NewVerificationCounters()
	v.AddUnmapped("Zebra Handler")
	v.AddUnmapped("Aardvark Keeper")
	v.AddUnmapped("Zebra Handler")

	got := v.UnmappedRoles()
	if len(got) != 2 || got[0] != "Aardvark Keeper" || got[1] != "Zebra Handler" {
		t.Errorf("UnmappedRoles() = %v", got)
	}
}
