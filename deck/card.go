package deck

import (
	"encoding/json"
	"fmt"
)

// Rank represents a rank in a deck of cards.
// Ordinary ranks run Two..Ace, cosmic ranks follow.
type Rank int

const (
	NullRank Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	// cosmic cards
	Glitch
	BlackHole
	Wormhole
	Supernova
	AsteroidField
)

// StandardRanks lists the thirteen ranks dealt in every suit.
var StandardRanks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// CosmicRanks lists the special ranks, in the order they are considered for a deck.
var CosmicRanks = []Rank{Glitch, BlackHole, Wormhole, Supernova, AsteroidField}

var rankCodes = map[Rank]string{
	NullRank:      "",
	Two:           "2",
	Three:         "3",
	Four:          "4",
	Five:          "5",
	Six:           "6",
	Seven:         "7",
	Eight:         "8",
	Nine:          "9",
	Ten:           "10",
	Jack:          "j",
	Queen:         "q",
	King:          "k",
	Ace:           "a",
	Glitch:        "glitch",
	BlackHole:     "black-hole",
	Wormhole:      "wormhole",
	Supernova:     "supernova",
	AsteroidField: "asteroid-field",
}

var rankNames = map[Rank]string{
	Two:           "Two",
	Three:         "Three",
	Four:          "Four",
	Five:          "Five",
	Six:           "Six",
	Seven:         "Seven",
	Eight:         "Eight",
	Nine:          "Nine",
	Ten:           "Ten",
	Jack:          "Jack",
	Queen:         "Queen",
	King:          "King",
	Ace:           "Ace",
	Glitch:        "Glitch Card",
	BlackHole:     "Black Hole",
	Wormhole:      "Wormhole",
	Supernova:     "Supernova",
	AsteroidField: "Asteroid Field",
}

var rankValues = map[Rank]int{
	Two:           2,
	Three:         3,
	Four:          4,
	Five:          5,
	Six:           6,
	Seven:         7,
	Eight:         8,
	Nine:          9,
	Ten:           10,
	Jack:          11,
	Queen:         12,
	King:          13,
	Ace:           14,
	Glitch:        3,
	BlackHole:     20,
	Wormhole:      15,
	Supernova:     16,
	AsteroidField: 15,
}

// can be played on any pile
var universalRanks = map[Rank]bool{
	Two:           true,
	Three:         true,
	Glitch:        true,
	BlackHole:     true,
	Wormhole:      true,
	Supernova:     true,
	AsteroidField: true,
}

// seen through by the legality check
var transparentRanks = map[Rank]bool{
	Three:  true,
	Glitch: true,
}

// Value returns the strength of the rank when comparing cards.
func (r Rank) Value() int {
	return rankValues[r]
}

// Universal reports whether the rank may be played on any pile.
func (r Rank) Universal() bool {
	return universalRanks[r]
}

// Transparent reports whether the rank takes the value of the card beneath it.
func (r Rank) Transparent() bool {
	return transparentRanks[r]
}

// Cosmic reports whether the rank is one of the special space cards.
func (r Rank) Cosmic() bool {
	return r >= Glitch && r <= AsteroidField
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Display is the name shown to players: "8", "10", "Jack", "Black Hole".
func (r Rank) Display() string {
	if r >= Two && r <= Ten {
		return r.Code()
	}
	return r.String()
}

// Code is the short identifier used on the wire ("2".."10", "j", "q", "k", "a", "black-hole"...).
func (r Rank) Code() string {
	return rankCodes[r]
}

func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.Code()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	for rank, code := range rankCodes {
		if code == string(text) {
			*r = rank
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", string(text))
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	NullSuit Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
	Special
)

// StandardSuits lists the four suits of an ordinary deck.
var StandardSuits = []Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = map[Suit]string{
	NullSuit: "",
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
	Special:  "special",
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
	Special:  "✦",
}

func (s Suit) String() string {
	return suitNames[s]
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	for suit, name := range suitNames {
		if name == string(text) {
			*s = suit
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", string(text))
}

// Card represents a playing card.
// Cards are values: changing orientation produces a new Card.
type Card struct {
	ID     string `json:"id"`
	Suit   Suit   `json:"suit"`
	Rank   Rank   `json:"rank"`
	FaceUp bool   `json:"faceUp"`
}

// NewCard constructs a face-down card with the given id.
func NewCard(id string, rank Rank, suit Suit) Card {
	return Card{ID: id, Rank: rank, Suit: suit}
}

// Value returns the card's rank strength.
func (c Card) Value() int {
	return c.Rank.Value()
}

// Turned returns a copy of the card with the given orientation.
func (c Card) Turned(faceUp bool) Card {
	c.FaceUp = faceUp
	return c
}

func (c Card) String() string {
	if c.Rank.Cosmic() {
		return c.Rank.String()
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short renders the card compactly, e.g. "10♥" or "✦Wormhole".
func (c Card) Short() string {
	if c.Rank.Cosmic() {
		return suitSymbols[Special] + c.Rank.String()
	}
	return fmt.Sprintf("%s%s", c.Rank.Code(), suitSymbols[c.Suit])
}

type cardJSON struct {
	ID     string `json:"id"`
	Suit   Suit   `json:"suit"`
	Rank   Rank   `json:"rank"`
	Value  int    `json:"value"`
	FaceUp bool   `json:"faceUp"`
}

// MarshalJSON includes the derived value so clients need not carry the value table.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		ID:     c.ID,
		Suit:   c.Suit,
		Rank:   c.Rank,
		Value:  c.Value(),
		FaceUp: c.FaceUp,
	})
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var cj cardJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	*c = Card{ID: cj.ID, Suit: cj.Suit, Rank: cj.Rank, FaceUp: cj.FaceUp}
	return nil
}
