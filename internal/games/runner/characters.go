package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// CharacterID identifies a playable character.
type CharacterID int

const (
	CharModi CharacterID = iota
	CharTrump
	CharRahul
	CharKejriwal
	CharBiden
	CharPutin
)

// World is the slice of the engine a power may act on.
type World interface {
	RevealHiddenCoins()
	BoostSpeed()
}

// Power describes a character ability. Hooks are optional.
// OnActivate runs once when the power starts, OnTick once per frame while it
// is active, and OnDeactivate when it expires or is consumed.
type Power struct {
	Name        string
	Description string

	OnActivate   func(p *Player, w World)
	OnTick       func(p *Player, w World)
	OnDeactivate func(p *Player)
}

// Character is a roster entry.
type Character struct {
	ID        CharacterID
	Key       string // Short lowercase name used on the command line
	Name      string
	Color     core.Color
	Accent    core.Color
	AccentHex string
	RunSpeed  float64 // Animation tempo, cosmetic only
	Power     Power
}

var roster = []Character{
	{
		ID:        CharModi,
		Key:       "modi",
		Name:      "MODI RUNNER",
		Color:     core.ColorOrange,
		Accent:    core.ColorOrange,
		AccentHex: "#ff9944",
		RunSpeed:  1.0,
		Power: Power{
			Name:        "Vikas Shield",
			Description: "Temporary invincibility, nothing gets through.",
			OnActivate: func(p *Player, _ World) {
				p.GrantInvincibility(p.Power.MaxTime)
			},
		},
	},
	{
		ID:        CharTrump,
		Key:       "trump",
		Name:      "TRUMP RUNNER",
		Color:     core.ColorBrightRed,
		Accent:    core.ColorOrange,
		AccentHex: "#ff9966",
		RunSpeed:  0.95,
		Power: Power{
			Name:        "The Wall",
			Description: "Destroys the next obstacle you run into.",
			OnActivate: func(p *Player, _ World) {
				p.WallActive = true
			},
			OnDeactivate: func(p *Player) {
				p.WallActive = false
			},
		},
	},
	{
		ID:        CharRahul,
		Key:       "rahul",
		Name:      "RAHUL RUNNER",
		Color:     core.ColorBrightWhite,
		Accent:    core.ColorYellow,
		AccentHex: "#ff8800",
		RunSpeed:  1.05,
		Power: Power{
			Name:        "Bharat Jodo",
			Description: "Magnet: nearby coins fly to you.",
			OnActivate: func(p *Player, _ World) {
				p.MagnetActive = true
			},
			OnDeactivate: func(p *Player) {
				p.MagnetActive = false
			},
		},
	},
	{
		ID:        CharKejriwal,
		Key:       "kejriwal",
		Name:      "KEJRIWAL RUNNER",
		Color:     core.ColorGray,
		Accent:    core.ColorBrightGreen,
		AccentHex: "#39ff14",
		RunSpeed:  1.0,
		Power: Power{
			Name:        "AAP Scan",
			Description: "Reveals hidden coins in all lanes.",
			OnActivate: func(_ *Player, w World) {
				if w != nil {
					w.RevealHiddenCoins()
				}
			},
		},
	},
	{
		ID:        CharBiden,
		Key:       "biden",
		Name:      "BIDEN RUNNER",
		Color:     core.ColorBlue,
		Accent:    core.ColorBrightBlue,
		AccentHex: "#0055aa",
		RunSpeed:  1.1,
		Power: Power{
			Name:        "Aviator Boost",
			Description: "Speed burst above the normal limit.",
			OnTick: func(_ *Player, w World) {
				if w != nil {
					w.BoostSpeed()
				}
			},
		},
	},
	{
		ID:        CharPutin,
		Key:       "putin",
		Name:      "PUTIN RUNNER",
		Color:     core.ColorWhite,
		Accent:    core.ColorRed,
		AccentHex: "#aa0000",
		RunSpeed:  0.98,
		Power: Power{
			Name:        "KGB Ghost",
			Description: "Phase through obstacles while active.",
			OnActivate: func(p *Player, _ World) {
				p.GhostActive = true
			},
			OnDeactivate: func(p *Player) {
				p.GhostActive = false
			},
		},
	},
}

// Characters returns the roster in id order.
func Characters() []Character {
	out := make([]Character, len(roster))
	copy(out, roster)
	return out
}

// LookupCharacter returns the roster entry for id.
func LookupCharacter(id CharacterID) (Character, error) {
	if id < 0 || int(id) >= len(roster) {
		return Character{}, fmt.Errorf("%w: %d", ErrUnknownCharacter, id)
	}
	return roster[id], nil
}

// ParseCharacter accepts a numeric id, a key ("trump") or a power name
// ("the wall"), case-insensitively.
func ParseCharacter(s string) (CharacterID, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		if _, err := LookupCharacter(CharacterID(n)); err != nil {
			return 0, err
		}
		return CharacterID(n), nil
	}
	for _, c := range roster {
		if s == c.Key || s == strings.ToLower(c.Power.Name) {
			return c.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCharacter, s)
}

// String returns the character key.
func (id CharacterID) String() string {
	if c, err := LookupCharacter(id); err == nil {
		return c.Key
	}
	return "unknown"
}
