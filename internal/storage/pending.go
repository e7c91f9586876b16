package storage

import "sync"

// InputKind names what the next plain-text message from a user should be
// interpreted as.
type InputKind string

const (
	InputSteps       InputKind = "steps"
	InputNote        InputKind = "note"
	InputMeasurement InputKind = "measurement"
	InputCoefficient InputKind = "coefficient"
)

// PendingInput remembers that the bot asked the user to type a value.
type PendingInput struct {
	Kind  InputKind
	Slot  string // measurement slot for InputMeasurement
	Field string // weight/waist/hips for InputMeasurement
}

// PendingStorage provides in-memory storage of awaited text inputs by user.
// State is per-process and intentionally lost on restart.
type PendingStorage struct {
	mu     sync.RWMutex
	inputs map[int64]PendingInput
}

func NewPendingStorage() *PendingStorage {
	return &PendingStorage{
		inputs: make(map[int64]PendingInput),
	}
}

// Store saves the awaited input for a user, replacing any previous one.
func (s *PendingStorage) Store(userID int64, input PendingInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[userID] = input
}

// Get retrieves the awaited input for a user.
func (s *PendingStorage) Get(userID int64) (PendingInput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	input, ok := s.inputs[userID]
	return input, ok
}

// Delete clears the awaited input for a user.
func (s *PendingStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inputs, userID)
}
