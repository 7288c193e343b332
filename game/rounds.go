package game

import "github.com/minaorangina/spacepalace/deck"

// Opponent is the computer character faced in a round.
type Opponent struct {
	ID      string
	Name    string
	Tagline string
	Ability string
}

// Opponents are faced in order, one per round.
var Opponents = [deck.TotalRounds]Opponent{
	{
		ID:      "rookie",
		Name:    "The Rookie",
		Tagline: "Ready? I think I got this...",
		Ability: "None",
	},
	{
		ID:      "trickster",
		Name:    "The Trickster",
		Tagline: "Don't blink, or you'll miss the best part!",
		Ability: "Special cards might appear",
	},
	{
		ID:      "analyst",
		Name:    "The Analyst",
		Tagline: "My strategy is sound. Your resistance, futile.",
		Ability: "Special cards appear more frequently",
	},
	{
		ID:      "psychic",
		Name:    "The Psychic",
		Tagline: "Your thoughts betray you. And your cards will too.",
		Ability: "Special cards appear more frequently",
	},
	{
		ID:      "master",
		Name:    "The Cosmic Master",
		Tagline: "The game is mine, always has been, always will be.",
		Ability: "Special cards appear more frequently",
	},
}

// RoundContext tracks progress through the match.
type RoundContext struct {
	Number   int
	Total    int
	Opponent Opponent
}

// NewRound returns the context for round n, clamped to the match length.
func NewRound(n int) RoundContext {
	if n < 1 {
		n = 1
	}
	if n > deck.TotalRounds {
		n = deck.TotalRounds
	}
	return RoundContext{
		Number:   n,
		Total:    deck.TotalRounds,
		Opponent: Opponents[n-1],
	}
}

// Final reports whether this is the last round of the match.
func (r RoundContext) Final() bool {
	return r.Number >= r.Total
}

// Next returns the following round.
func (r RoundContext) Next() RoundContext {
	return NewRound(r.Number + 1)
}
