package deck

import (
	"math/rand"

	uuid "github.com/satori/go.uuid"
)

const (
	// TrimCount is the number of cards discarded after shuffling.
	TrimCount = 15
	// TotalRounds is the length of a match.
	TotalRounds = 5
)

// cosmicOdds holds the inclusion probability of each cosmic card, indexed by round-1.
var cosmicOdds = map[Rank][TotalRounds]float64{
	Glitch:        {0, 0, 0, 0, 0.1},
	BlackHole:     {0, 0.1, 0.2, 0.3, 0.4},
	Wormhole:      {0, 0.2, 0.2, 0.3, 0.4},
	Supernova:     {0, 0.1, 0.2, 0.3, 0.4},
	AsteroidField: {0, 0.2, 0.3, 0.4, 0.5},
}

// CosmicOdds returns the chance that a cosmic card is added to a deck built for the given round.
func CosmicOdds(rank Rank, round int) float64 {
	odds, ok := cosmicOdds[rank]
	if !ok || round < 1 || round > TotalRounds {
		return 0
	}
	return odds[round-1]
}

// Deck represents a deck of cards
type Deck []Card

// New creates the 52 standard cards plus at most one of each cosmic card,
// each included by an independent draw against the round's odds.
func New(round int, rng *rand.Rand) Deck {
	cards := make(Deck, 0, len(StandardSuits)*len(StandardRanks)+len(CosmicRanks))
	for _, suit := range StandardSuits {
		for _, rank := range StandardRanks {
			cards = append(cards, NewCard(newID(), rank, suit))
		}
	}

	for _, rank := range CosmicRanks {
		if rng.Float64() < CosmicOdds(rank, round) {
			cards = append(cards, NewCard(newID(), rank, Special))
		}
	}

	return cards
}

// Build returns a shuffled, trimmed deck ready for dealing.
func Build(round int, rng *rand.Rand) Deck {
	d := New(round, rng)
	d.Shuffle(rng)
	d.Trim(TrimCount)
	return d
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Trim discards n cards from the top of the deck.
func (d *Deck) Trim(n int) {
	d.Deal(n)
}

// Deal takes up to n cards from the top (front) of the deck.
// Fewer cards are returned when the deck runs short.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}

// Clone returns an independent copy of the deck.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	c := make(Deck, len(d))
	copy(c, d)
	return c
}

func newID() string {
	return uuid.NewV4().String()
}
