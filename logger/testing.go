package logger

import (
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu   sync.Mutex
	orig *zerolog.Logger
)

// ResetLogger restores the global logger replaced by Testing, Discard, or TestSink.
func ResetLogger() {
	mu.Lock()
	defer mu.Unlock()
	if orig != nil {
		log.Logger = *orig
		orig = nil
	}
}

func replace(logger zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if orig == nil {
		prev := log.Logger
		orig = &prev
	}
	log.Logger = logger
}

func Testing(tb testing.TB) {
	replace(log.Output(zerolog.NewTestWriter(tb)))
}

func Discard() {
	replace(log.Output(io.Discard))
}

func TestSink() *Sink {
	sink := &Sink{}
	replace(log.Output(sink))
	return sink
}

// A Sink is an io.Writer that captures JSON log lines for assertions in tests.
type Sink struct {
	sync.RWMutex
	logs []string
}

func (s *Sink) Write(p []byte) (n int, err error) {
	s.Lock()
	defer s.Unlock()
	s.logs = append(s.logs, string(p))
	return len(p), nil
}

func (s *Sink) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.logs)
}

func (s *Sink) Reset() {
	s.Lock()
	defer s.Unlock()
	s.logs = nil
}

// Get parses the ith log line; nil is returned if it does not exist or is not JSON.
func (s *Sink) Get(i int) map[string]any {
	s.RLock()
	defer s.RUnlock()
	if i < 0 || i >= len(s.logs) {
		return nil
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(s.logs[i]), &record); err != nil {
		return nil
	}
	return record
}

// Find returns the first record whose message matches msg.
func (s *Sink) Find(msg string) map[string]any {
	for i := 0; i < s.Len(); i++ {
		if record := s.Get(i); record != nil && record["message"] == msg {
			return record
		}
	}
	return nil
}
