package strip

import (
	"sync"

	"github.com/effectbox/ledmatrix/internal/layout"
)

// Memory is an in-process Output that keeps the last shown frame. It
// backs the websocket preview and the package tests. Snapshot access is
// guarded because the preview broadcaster reads from its own goroutine.
type Memory struct {
	frame

	mu      sync.RWMutex
	shown   []byte // last flushed frame, 3 bytes per pixel
	frameID uint64
}

// NewMemory returns a Memory output over the grid.
func NewMemory(g layout.Grid) *Memory {
	return &Memory{
		frame: newFrame(g),
		shown: make([]byte, g.Count()*3),
	}
}

func (m *Memory) Show() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.buf {
		m.shown[i*3+0] = c.R
		m.shown[i*3+1] = c.G
		m.shown[i*3+2] = c.B
	}
	m.frameID++
	return nil
}

// Snapshot returns a copy of the last flushed frame and its id.
func (m *Memory) Snapshot() ([]byte, uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]byte, len(m.shown))
	copy(out, m.shown)
	return out, m.frameID
}

// FrameID returns the number of frames flushed so far.
func (m *Memory) FrameID() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frameID
}

// Pixel returns the last flushed color at a linear index.
func (m *Memory) Pixel(i int) RGB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return RGB{m.shown[i*3+0], m.shown[i*3+1], m.shown[i*3+2]}
}
