package search

import (
	"bufio"
	"io"
	"sync"
)

// Match is a keypair whose encoded public key satisfied the search target.
// It is handed to a Sink as soon as it is found and never retained.
type Match struct {
	PublicKey  string // Encoded public key
	PrivateKey string // Encoded private material
}

// String formats the match as a single result line without the newline.
func (m Match) String() string {
	return m.PublicKey + " " + m.PrivateKey
}

// Sink receives matches from workers. Emit is called synchronously from the
// worker's hot loop and must be safe for concurrent use.
// An error from Emit is fatal for the run.
type Sink interface {
	Emit(m Match) error
}

// LineSink writes one "<public> <private>" line per match.
// Each line is written and flushed under a lock, so lines from different
// workers never interleave and a reported match is never left in a buffer.
type LineSink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// NewLineSink returns a LineSink writing to w.
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: bufio.NewWriter(w)}
}

// Emit writes m as one line.
func (s *LineSink) Emit(m Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.WriteString(m.PublicKey); err != nil {
		return err
	}
	if err := s.w.WriteByte(' '); err != nil {
		return err
	}
	if _, err := s.w.WriteString(m.PrivateKey); err != nil {
		return err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	return s.w.Flush()
}

// ChanSink forwards matches to a channel.
// Emit blocks until the match is received, so the consumer must keep reading
// for as long as the run is alive.
type ChanSink chan<- Match

// Emit sends m on the channel.
func (s ChanSink) Emit(m Match) error {
	s <- m
	return nil
}
