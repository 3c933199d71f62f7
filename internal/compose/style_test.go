package compose

import "testing"

func TestParseStyleKnownNames(t *testing.T) {
	cases := []struct {
		name string
		want Style
	}{
		{"classical", StyleClassical},
		{"JAZZ", StyleJazz},
		{" electronic ", StyleElectronic},
		{"ambient", StyleAmbient},
		{"rock", StyleRock},
		{"folk", StyleFolk},
		{"world", StyleWorld},
		{"experimental", StyleExperimental},
		{"auto", StyleAuto},
		{"balanced", StyleAuto},
		{"", StyleAuto},
	}
	for _, c := range cases {
		got, ok := ParseStyle(c.name)
		if !ok {
			t.Errorf("ParseStyle(%q): expected recognized", c.name)
		}
		if got != c.want {
			t.Errorf("ParseStyle(%q): expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestParseStyleUnknownName(t *testing.T) {
	got, ok := ParseStyle("polka")
	if ok {
		t.Error("expected unknown name to be flagged")
	}
	if got != StyleAuto {
		t.Errorf("expected StyleAuto fallback, got %s", got)
	}
}

func TestStyleStringRoundTrip(t *testing.T) {
	for _, s := range ConcreteStyles {
		got, ok := ParseStyle(s.String())
		if !ok || got != s {
			t.Errorf("%s did not round-trip, got %s", s, got)
		}
	}
}

func TestConcreteStylesExcludeAuto(t *testing.T) {
	for _, s := range ConcreteStyles {
		if s == StyleAuto {
			t.Fatal("ConcreteStyles must not contain StyleAuto")
		}
	}
	if len(ConcreteStyles) != 8 {
		t.Fatalf("expected 8 concrete styles, got %d", len(ConcreteStyles))
	}
}
