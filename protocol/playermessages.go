package protocol

import (
	"github.com/minaorangina/spacepalace/deck"
)

// InboundMessage is a message from Player to GameEngine
type InboundMessage struct {
	PlayerID string   `json:"playerID"`
	Command  Cmd      `json:"command"`
	CardIDs  []string `json:"cardIDs,omitempty"`
}

// OutboundMessage is a message from GameEngine to Player.
// It carries the human's view of the game: the computer's hand is a count
// and unrevealed face-down cards are masked.
type OutboundMessage struct {
	PlayerID    string      `json:"playerID"`
	Command     Cmd         `json:"command"`
	Phase       string      `json:"phase"`
	Turn        string      `json:"turn"`
	Round       Round       `json:"round"`
	Message     string      `json:"message"`
	Instruction string      `json:"instruction,omitempty"`
	Hand        []deck.Card `json:"hand"`
	FaceUp      []deck.Card `json:"faceUp"`
	FaceDown    []deck.Card `json:"faceDown"`
	Opponent    Opponent    `json:"opponent"`
	Pile        []deck.Card `json:"pile"`
	BurnedCount int         `json:"burnedCount"`
	DeckCount   int         `json:"deckCount"`
	Moves       []string    `json:"moves,omitempty"`
	Outcome     string      `json:"outcome,omitempty"`
	Events      []Event     `json:"events,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// Round describes the round in progress and the opponent faced.
type Round struct {
	Number  int    `json:"number"`
	Total   int    `json:"total"`
	ID      string `json:"opponentID"`
	Name    string `json:"opponentName"`
	Tagline string `json:"tagline"`
	Ability string `json:"ability,omitempty"`
}

// Opponent is the public view of the computer's cards
type Opponent struct {
	HandCount int         `json:"handCount"`
	FaceUp    []deck.Card `json:"faceUp"`
	FaceDown  []deck.Card `json:"faceDown"`
}

// Event is a discrete effect signal for the presentation layer.
// It carries no game logic.
type Event struct {
	Type    EventType   `json:"type"`
	Actor   string      `json:"actor,omitempty"`
	Cards   []deck.Card `json:"cards,omitempty"`
	Message string      `json:"message,omitempty"`
}
