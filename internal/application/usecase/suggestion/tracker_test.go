// Package suggestion contains AI obligation-classification use cases.
package suggestion

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
)

func TestInMemoryProcessingTracker_ErrorTracking(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userID := uuid.New()

	t.Run("HasError returns false when no error exists", func(t *testing.T) {
		if tracker.HasError(userID) {
			t.Error("expected HasError to return false for non-existent error")
		}
	})

	t.Run("GetError returns nil when no error exists", func(t *testing.T) {
		if tracker.GetError(userID) != nil {
			t.Error("expected GetError to return nil for non-existent error")
		}
	})

	t.Run("SetError stores the error", func(t *testing.T) {
		testError := &ProcessingError{
			Code:      ErrCodeAIRateLimited,
			Message:   errorMessages[ErrCodeAIRateLimited],
			Retryable: true,
			Timestamp: time.Now(),
		}

		tracker.SetError(userID, testError)

		if !tracker.HasError(userID) {
			t.Error("expected HasError to return true after SetError")
		}

		retrieved := tracker.GetError(userID)
		if retrieved == nil {
			t.Fatal("expected GetError to return non-nil error")
		}
		if retrieved.Code != testError.Code {
			t.Errorf("expected code %s, got %s", testError.Code, retrieved.Code)
		}
		if retrieved.Retryable != testError.Retryable {
			t.Errorf("expected retryable %v, got %v", testError.Retryable, retrieved.Retryable)
		}
	})

	t.Run("ClearError removes the error", func(t *testing.T) {
		tracker.ClearError(userID)
		if tracker.HasError(userID) {
			t.Error("expected HasError to return false after ClearError")
		}
	})
}

func TestInMemoryProcessingTracker_ProcessingState(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userID := uuid.New()

	t.Run("IsProcessing returns false initially", func(t *testing.T) {
		if tracker.IsProcessing(userID) {
			t.Error("expected IsProcessing to return false before SetProcessing")
		}
	})

	t.Run("SetProcessing stores the job id", func(t *testing.T) {
		tracker.SetProcessing(userID, "job-1")
		if !tracker.IsProcessing(userID) {
			t.Error("expected IsProcessing to return true after SetProcessing")
		}
		if got := tracker.GetJobID(userID); got != "job-1" {
			t.Errorf("expected job id job-1, got %q", got)
		}
	})

	t.Run("ClearProcessing removes the state", func(t *testing.T) {
		tracker.ClearProcessing(userID)
		if tracker.IsProcessing(userID) {
			t.Error("expected IsProcessing to return false after ClearProcessing")
		}
	})
}

func TestInMemoryProcessingTracker_Results(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userID := uuid.New()

	if tracker.GetResults(userID) != nil {
		t.Error("expected no results before SetResults")
	}

	results := []*adapter.ObligationSuggestionResult{
		{DraftID: uuid.New(), SuggestedKind: "tax", SuggestedFrequency: "monthly", Confidence: 0.9},
	}
	tracker.SetResults(userID, results)

	got := tracker.GetResults(userID)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].SuggestedKind != "tax" {
		t.Errorf("expected suggested kind tax, got %q", got[0].SuggestedKind)
	}

	tracker.ClearResults(userID)
	if tracker.GetResults(userID) != nil {
		t.Error("expected no results after ClearResults")
	}
}

func TestInMemoryProcessingTracker_ConcurrentAccess(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := uuid.New()
			tracker.SetProcessing(userID, "job")
			tracker.IsProcessing(userID)
			tracker.SetError(userID, &ProcessingError{Code: ErrCodeAIUnknownError})
			tracker.HasError(userID)
			tracker.ClearProcessing(userID)
			tracker.ClearError(userID)
		}()
	}
	wg.Wait()
}
