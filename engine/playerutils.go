package engine

import (
	"bytes"
	"errors"
	"sync"

	"github.com/minaorangina/spacepalace/protocol"
)

var errSpyClosed = errors.New("spy player closed")

// SpyPlayer records what the engine sends it. Used in tests.
type SpyPlayer struct {
	id       string
	Received chan protocol.OutboundMessage
	mu       sync.Mutex
	closed   bool
}

func NewSpyPlayer(id string) *SpyPlayer {
	return &SpyPlayer{
		id:       id,
		Received: make(chan protocol.OutboundMessage, 64),
	}
}

func (sp *SpyPlayer) ID() string {
	return sp.id
}

func (sp *SpyPlayer) Send(msg protocol.OutboundMessage) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.closed {
		return errSpyClosed
	}
	sp.Received <- msg
	return nil
}

func (sp *SpyPlayer) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.closed = true
}

// TestBuffer is used in tests for io
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Read(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Read(p)
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}
