package tax

import (
	"context"
	"fmt"
	"time"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

// GenerateObligationsInput represents the input for generating obligations
// from active tax templates. Now anchors the generated due dates; a zero
// value falls back to the wall clock.
type GenerateObligationsInput struct {
	Now    time.Time
	Editor string
}

// GenerateObligationsOutput represents the output of obligation generation.
// Skipped counts templates whose next occurrence already had an open obligation.
type GenerateObligationsOutput struct {
	Generated []*entity.Obligation
	Skipped   int
}

// GenerateObligationsUseCase materializes obligations from active tax
// templates, one per template for its next occurrence. Generation is
// idempotent: a template whose occurrence already exists is skipped.
type GenerateObligationsUseCase struct {
	taxRepo        adapter.TaxRepository
	obligationRepo adapter.ObligationRepository
	calendar       schedule.HolidayCalendar
}

// NewGenerateObligationsUseCase creates a new GenerateObligationsUseCase instance.
func NewGenerateObligationsUseCase(
	taxRepo adapter.TaxRepository,
	obligationRepo adapter.ObligationRepository,
	calendar schedule.HolidayCalendar,
) *GenerateObligationsUseCase {
	return &GenerateObligationsUseCase{
		taxRepo:        taxRepo,
		obligationRepo: obligationRepo,
		calendar:       calendar,
	}
}

// Execute generates obligations from all active templates.
func (uc *GenerateObligationsUseCase) Execute(ctx context.Context, input GenerateObligationsInput) (*GenerateObligationsOutput, error) {
	taxes, err := uc.taxRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active taxes: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	output := &GenerateObligationsOutput{}
	for _, t := range taxes {
		obligation, err := uc.generateOne(ctx, t, now, input.Editor)
		if err != nil {
			return nil, err
		}
		if obligation == nil {
			output.Skipped++
			continue
		}
		output.Generated = append(output.Generated, obligation)
	}

	return output, nil
}

// GenerateForTax generates the next obligation for one template.
func (uc *GenerateObligationsUseCase) GenerateForTax(ctx context.Context, t *entity.Tax, now time.Time, editor string) (*entity.Obligation, error) {
	if !t.Active {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeTaxInactive,
			fmt.Sprintf("tax %q is inactive", t.Code),
			domainerror.ErrTaxInactive,
		)
	}
	return uc.generateOne(ctx, t, now, editor)
}

func (uc *GenerateObligationsUseCase) generateOne(ctx context.Context, t *entity.Tax, now time.Time, editor string) (*entity.Obligation, error) {
	dueDate, err := schedule.NextOccurrence(t.Recurrence, now, uc.calendar)
	if err != nil {
		return nil, fmt.Errorf("failed to compute occurrence for tax %q: %w", t.Code, err)
	}

	existing, err := uc.obligationRepo.FindOpenDueWithin(ctx, now, dueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing obligations: %w", err)
	}
	name := obligationName(t, dueDate)
	for _, o := range existing {
		if o.Name == name {
			return nil, nil
		}
	}

	rule := t.Recurrence
	obligation := entity.NewObligation(
		name,
		t.Description,
		entity.ObligationKindTax,
		dueDate,
		nil,
		nil,
		&rule,
		editor,
	)
	nextGeneration := dueDate
	obligation.NextGenerationAt = &nextGeneration

	if err := uc.obligationRepo.Create(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to create generated obligation: %w", err)
	}
	return obligation, nil
}

// obligationName labels a generated obligation with the template code and the
// occurrence period so repeated runs can recognize it.
func obligationName(t *entity.Tax, dueDate time.Time) string {
	return fmt.Sprintf("%s %s", t.Code, dueDate.Format("2006-01"))
}
