package sim

import (
	"sync"

	"github.com/bft-labs/bikeabs/internal/domain"
)

// Recorder implements ports.DutyCycleWriter by retaining the most recent
// command per wheel. It is the default actuator when none is supplied:
// useful for assertions, status displays, and dry runs.
type Recorder struct {
	mu       sync.RWMutex
	commands map[domain.Wheel]domain.Command
	writes   uint64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make(map[domain.Wheel]domain.Command)}
}

// Write retains the command for the wheel. Never fails.
func (r *Recorder) Write(wheel domain.Wheel, command domain.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[wheel] = command
	r.writes++
	return nil
}

// Command returns the last command written for the wheel; ok is false if the
// wheel has never been written.
func (r *Recorder) Command(wheel domain.Wheel) (domain.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commands[wheel]
	return c, ok
}

// Writes returns the total number of writes across both wheels.
func (r *Recorder) Writes() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}
