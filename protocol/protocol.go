package protocol

import "fmt"

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	// inbound, from the player
	BeginRound
	Swap
	FinishSwapping
	PlayHand     // when a player plays cards from their hand
	PlayFaceUp   // when a player plays cards from their face-up cards
	PlayFaceDown // when a player reveals one of their face-down cards
	PickUpPile
	NextRound
	Restart
	// outbound, to the player
	State
	Error
)

var CmdNames = map[Cmd]string{
	Null:           "Null",
	BeginRound:     "BeginRound",
	Swap:           "Swap",
	FinishSwapping: "FinishSwapping",
	PlayHand:       "PlayHand",
	PlayFaceUp:     "PlayFaceUp",
	PlayFaceDown:   "PlayFaceDown",
	PickUpPile:     "PickUpPile",
	NextRound:      "NextRound",
	Restart:        "Restart",
	State:          "State",
	Error:          "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":           Null,
	"BeginRound":     BeginRound,
	"Swap":           Swap,
	"FinishSwapping": FinishSwapping,
	"PlayHand":       PlayHand,
	"PlayFaceUp":     PlayFaceUp,
	"PlayFaceDown":   PlayFaceDown,
	"PickUpPile":     PickUpPile,
	"NextRound":      NextRound,
	"Restart":        Restart,
	"State":          State,
	"Error":          Error,
}

func (c Cmd) String() string {
	if name, ok := CmdNames[c]; ok {
		return name
	}
	return "Unknown"
}

func (c Cmd) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("unknown command %q", text)
	}
	*c = cmd
	return nil
}

// Inbound reports whether the command is an action a player may send.
func (c Cmd) Inbound() bool {
	return c >= BeginRound && c <= Restart
}

// EventType identifies an effect signal emitted by the game.
type EventType string

const (
	EventPlay         EventType = "play"
	EventBurn         EventType = "burn"
	EventReveal       EventType = "reveal"
	EventDistortion   EventType = "distortion"
	EventWormhole     EventType = "wormhole"
	EventSupernova    EventType = "supernova"
	EventBlackHole    EventType = "black-hole"
	EventAsteroid     EventType = "asteroid-field"
	EventDraw         EventType = "draw"
	EventPickUp       EventType = "pick-up"
	EventExtraTurn    EventType = "extra-turn"
	EventFourOfAKind  EventType = "four-of-a-kind"
	EventSwap         EventType = "swap"
	EventPass         EventType = "pass"
	EventRoundWon     EventType = "round-won"
	EventMatchWon     EventType = "match-won"
	EventMatchLost    EventType = "match-lost"
	EventRoundStarted EventType = "round-started"
)
