package engine

import (
	uuid "github.com/satori/go.uuid"

	"github.com/minaorangina/spacepalace/protocol"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player is anything that can be shown the human's view of a game.
type Player interface {
	ID() string
	Send(msg protocol.OutboundMessage) error
}

// Players is the set of connections watching a game.
type Players []Player

func NewPlayers(p ...Player) Players {
	return Players(p)
}

func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// Add returns the set with p added, replacing any player with the same ID.
func (ps Players) Add(p Player) Players {
	out := ps.Remove(p.ID())
	return append(out, p)
}

func (ps Players) Remove(id string) Players {
	out := Players{}
	for _, p := range ps {
		if p.ID() != id {
			out = append(out, p)
		}
	}
	return out
}
