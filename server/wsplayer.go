package server

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/minaorangina/spacepalace/engine"
	"github.com/minaorangina/spacepalace/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	sendBufferSize = 32
)

var (
	ErrPlayerGone  = errors.New("player disconnected")
	ErrSendBacklog = errors.New("player is not keeping up")
)

// WSPlayer connects a websocket to a game engine.
type WSPlayer struct {
	id   string
	conn *websocket.Conn
	ge   engine.GameEngine
	log  *logrus.Entry

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewWSPlayer starts pumping messages between ws and the game.
func NewWSPlayer(id string, ws *websocket.Conn, ge engine.GameEngine, log *logrus.Entry) *WSPlayer {
	player := &WSPlayer{
		id:   id,
		conn: ws,
		ge:   ge,
		log:  log,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
	go player.writePump()
	go player.readPump()
	return player
}

func (p *WSPlayer) ID() string {
	return p.id
}

// Send never blocks the engine. A player that falls too far behind is dropped.
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case <-p.done:
		return ErrPlayerGone
	default:
	}

	select {
	case p.send <- data:
		return nil
	default:
		p.Close()
		return ErrSendBacklog
	}
}

func (p *WSPlayer) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.conn.Close()
	})
}

func (p *WSPlayer) readPump() {
	defer func() {
		p.Close()
		p.ge.RemovePlayer(p.id)
	}()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.log.WithError(err).Warn("websocket closed unexpectedly")
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			p.log.WithError(err).Debug("ignoring malformed message")
			continue
		}
		if !msg.Command.Inbound() {
			p.log.WithField("cmd", msg.Command.String()).Debug("ignoring outbound command")
			continue
		}

		msg.PlayerID = p.id
		p.ge.Receive(msg)
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.Close()
	}()

	for {
		select {
		case <-p.done:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			p.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case msg := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				p.log.WithError(err).Debug("write failed")
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
