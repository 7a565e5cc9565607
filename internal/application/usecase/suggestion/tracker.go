package suggestion

import (
	"sync"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
)

// ProcessingTracker tracks in-flight suggestion runs, their results and errors.
type ProcessingTracker interface {
	IsProcessing(userID uuid.UUID) bool
	GetJobID(userID uuid.UUID) string
	SetProcessing(userID uuid.UUID, jobID string)
	ClearProcessing(userID uuid.UUID)

	SetResults(userID uuid.UUID, results []*adapter.ObligationSuggestionResult)
	GetResults(userID uuid.UUID) []*adapter.ObligationSuggestionResult
	ClearResults(userID uuid.UUID)

	SetError(userID uuid.UUID, err *ProcessingError)
	GetError(userID uuid.UUID) *ProcessingError
	ClearError(userID uuid.UUID)
	HasError(userID uuid.UUID) bool
}

// InMemoryProcessingTracker is a simple in-memory implementation of ProcessingTracker.
type InMemoryProcessingTracker struct {
	mu         sync.RWMutex
	processing map[uuid.UUID]string
	results    map[uuid.UUID][]*adapter.ObligationSuggestionResult
	errors     map[uuid.UUID]*ProcessingError
}

// NewInMemoryProcessingTracker creates a new in-memory processing tracker.
func NewInMemoryProcessingTracker() *InMemoryProcessingTracker {
	return &InMemoryProcessingTracker{
		processing: make(map[uuid.UUID]string),
		results:    make(map[uuid.UUID][]*adapter.ObligationSuggestionResult),
		errors:     make(map[uuid.UUID]*ProcessingError),
	}
}

// IsProcessing checks if a user has a run in flight.
func (t *InMemoryProcessingTracker) IsProcessing(userID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.processing[userID]
	return ok
}

// GetJobID gets the job ID for a user.
func (t *InMemoryProcessingTracker) GetJobID(userID uuid.UUID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.processing[userID]
}

// SetProcessing sets the processing state for a user.
func (t *InMemoryProcessingTracker) SetProcessing(userID uuid.UUID, jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processing[userID] = jobID
}

// ClearProcessing clears the processing state for a user.
func (t *InMemoryProcessingTracker) ClearProcessing(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.processing, userID)
}

// SetResults stores the finished run's suggestions for a user.
func (t *InMemoryProcessingTracker) SetResults(userID uuid.UUID, results []*adapter.ObligationSuggestionResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results[userID] = results
}

// GetResults retrieves the last finished run's suggestions for a user.
func (t *InMemoryProcessingTracker) GetResults(userID uuid.UUID) []*adapter.ObligationSuggestionResult {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.results[userID]
}

// ClearResults removes the stored suggestions for a user.
func (t *InMemoryProcessingTracker) ClearResults(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.results, userID)
}

// SetError stores an error for a user.
func (t *InMemoryProcessingTracker) SetError(userID uuid.UUID, err *ProcessingError) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors[userID] = err
}

// GetError retrieves the error for a user.
func (t *InMemoryProcessingTracker) GetError(userID uuid.UUID) *ProcessingError {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.errors[userID]
}

// ClearError removes the error for a user.
func (t *InMemoryProcessingTracker) ClearError(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.errors, userID)
}

// HasError checks if a user has an error.
func (t *InMemoryProcessingTracker) HasError(userID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.errors[userID]
	return ok
}
