package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
)

const (
	// BatchSize is the number of drafts to classify per AI request. Kept
	// small so Gemini responds within the batch timeout.
	BatchSize = 40

	// BatchTimeout is the timeout for classifying a single batch.
	BatchTimeout = 45 * time.Second

	// MaxBatches bounds a single run (40 * 25 = 1000 drafts max).
	MaxBatches = 25
)

// splitIntoBatches divides drafts into batches of BatchSize.
func splitIntoBatches(drafts []*adapter.ObligationDraftForAI) [][]*adapter.ObligationDraftForAI {
	batches := make([][]*adapter.ObligationDraftForAI, 0)
	for i := 0; i < len(drafts); i += BatchSize {
		end := i + BatchSize
		if end > len(drafts) {
			end = len(drafts)
		}
		batches = append(batches, drafts[i:end])
	}
	return batches
}

// DraftInput is one draft obligation submitted for classification.
type DraftInput struct {
	Name        string
	Description string
}

// StartSuggestionInput represents the input for starting a classification run.
type StartSuggestionInput struct {
	UserID uuid.UUID
	Drafts []DraftInput
}

// StartSuggestionOutput represents the output of starting a classification run.
type StartSuggestionOutput struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// StartSuggestionUseCase starts an asynchronous run that asks the AI service
// to suggest a kind and recurrence for each draft obligation.
type StartSuggestionUseCase struct {
	suggestionService adapter.SuggestionService
	processingTracker ProcessingTracker
}

// NewStartSuggestionUseCase creates a new StartSuggestionUseCase instance.
func NewStartSuggestionUseCase(
	suggestionService adapter.SuggestionService,
	processingTracker ProcessingTracker,
) *StartSuggestionUseCase {
	return &StartSuggestionUseCase{
		suggestionService: suggestionService,
		processingTracker: processingTracker,
	}
}

// Execute starts the classification run.
func (uc *StartSuggestionUseCase) Execute(ctx context.Context, input StartSuggestionInput) (*StartSuggestionOutput, error) {
	if uc.suggestionService == nil || !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"AI suggestion service is not configured",
			domainerror.ErrSuggestionServiceUnavailable,
		)
	}
	if len(input.Drafts) == 0 {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeNoDrafts,
			"no drafts to classify",
			domainerror.ErrNoDrafts,
		)
	}
	if uc.processingTracker.IsProcessing(input.UserID) {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionAlreadyProcessing,
			"a classification run is already in progress",
			domainerror.ErrSuggestionAlreadyProcessing,
		)
	}

	uc.processingTracker.ClearError(input.UserID)
	uc.processingTracker.ClearResults(input.UserID)

	drafts := make([]*adapter.ObligationDraftForAI, len(input.Drafts))
	for i, d := range input.Drafts {
		drafts[i] = &adapter.ObligationDraftForAI{
			ID:          uuid.New(),
			Name:        d.Name,
			Description: d.Description,
		}
	}

	jobID := uuid.New().String()
	uc.processingTracker.SetProcessing(input.UserID, jobID)

	go uc.processAsync(context.Background(), input.UserID, drafts, jobID)

	return &StartSuggestionOutput{
		JobID:   jobID,
		Message: fmt.Sprintf("classification started for %d drafts", len(drafts)),
	}, nil
}

// processAsync classifies drafts in the background using batched requests.
func (uc *StartSuggestionUseCase) processAsync(ctx context.Context, userID uuid.UUID, drafts []*adapter.ObligationDraftForAI, jobID string) {
	startTime := time.Now()
	logger := slog.Default().With("jobID", jobID, "userID", userID.String(), "draftCount", len(drafts))

	logger.Info("Starting AI classification run")

	defer func() {
		uc.processingTracker.ClearProcessing(userID)
		logger.Info("AI classification run finished", "duration", time.Since(startTime).String())
	}()

	batches := splitIntoBatches(drafts)
	if len(batches) > MaxBatches {
		logger.Warn("Draft count exceeds maximum, processing first batches only",
			"totalDrafts", len(drafts),
			"maxProcessed", MaxBatches*BatchSize,
		)
		batches = batches[:MaxBatches]
	}

	allResults := make([]*adapter.ObligationSuggestionResult, 0, len(drafts))
	for batchNum, batch := range batches {
		batchLogger := logger.With("batch", batchNum+1, "totalBatches", len(batches))
		batchLogger.Info("Classifying batch", "batchDrafts", len(batch))

		batchCtx, batchCancel := context.WithTimeout(ctx, BatchTimeout)
		results, err := uc.suggestionService.Suggest(batchCtx, &adapter.ObligationSuggestionRequest{Drafts: batch})
		batchCancel()

		if err != nil {
			batchLogger.Error("Batch classification failed", "error", err.Error())
			uc.processingTracker.SetError(userID, classifyError(err))
			return
		}
		allResults = append(allResults, results...)
	}

	uc.processingTracker.SetResults(userID, allResults)
	logger.Info("Classification results stored", "resultCount", len(allResults))
}
