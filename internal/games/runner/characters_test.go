package runner

import (
	"errors"
	"testing"
)

func TestRoster(t *testing.T) {
	chars := Characters()
	if len(chars) != 6 {
		t.Fatalf("roster size = %d, expected 6", len(chars))
	}
	keys := map[string]bool{}
	for i, c := range chars {
		if c.ID != CharacterID(i) {
			t.Errorf("entry %d has id %d", i, c.ID)
		}
		if c.Power.Name == "" || c.Key == "" || c.Name == "" {
			t.Errorf("entry %d is incomplete: %+v", i, c)
		}
		if keys[c.Key] {
			t.Errorf("duplicate key %q", c.Key)
		}
		keys[c.Key] = true
	}

	// Callers get a copy.
	chars[0].Name = "changed"
	if c, _ := LookupCharacter(0); c.Name == "changed" {
		t.Error("Characters should return a copy")
	}
}

func TestParseCharacter(t *testing.T) {
	tests := []struct {
		in      string
		want    CharacterID
		wantErr bool
	}{
		{"0", CharModi, false},
		{"5", CharPutin, false},
		{"trump", CharTrump, false},
		{"  Biden ", CharBiden, false},
		{"kgb ghost", CharPutin, false},
		{"AAP Scan", CharKejriwal, false},
		{"6", 0, true},
		{"-1", 0, true},
		{"nobody", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCharacter(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownCharacter) {
					t.Errorf("expected ErrUnknownCharacter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCharacterIDString(t *testing.T) {
	if CharRahul.String() != "rahul" {
		t.Errorf("got %q", CharRahul.String())
	}
	if CharacterID(42).String() != "unknown" {
		t.Errorf("got %q", CharacterID(42).String())
	}
}

func TestQuipFallbacks(t *testing.T) {
	if q := Quip(ObstacleSubpoena, CharTrump); q != characterQuips[ObstacleSubpoena][CharTrump] {
		t.Errorf("character quip not used: %q", q)
	}
	if q := Quip(ObstacleSubpoena, CharModi); q != genericQuips[ObstacleSubpoena] {
		t.Errorf("generic quip not used: %q", q)
	}
	if q := Quip(ObstacleType("meteor"), CharModi); q != fallbackQuip {
		t.Errorf("fallback quip not used: %q", q)
	}
	for _, typ := range ObstacleTypes() {
		for _, c := range Characters() {
			if Quip(typ, c.ID) == "" {
				t.Errorf("empty quip for %s/%s", typ, c.Key)
			}
		}
	}
}
