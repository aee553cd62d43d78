package projects

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

// Validate checks the structural invariants of a catalog record: identity and
// name present, non-negative money fields, known statuses, ISO dates.
func (p Project) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, validation.Min(1)),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Budget, validation.Min(0.0)),
		validation.Field(&p.Spent, validation.Min(0.0)),
		validation.Field(&p.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&p.RescheduledDate, validation.Date(dateLayout)),
	)
	if err != nil {
		return fmt.Errorf("projects: project %d invalid: %w", p.ID, err)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("projects: project %d has unknown status %q", p.ID, p.Status)
	}
	for _, event := range p.Timeline {
		if err := event.validate(); err != nil {
			return fmt.Errorf("projects: project %d timeline: %w", p.ID, err)
		}
	}
	for _, payment := range p.Payments {
		if err := payment.validate(); err != nil {
			return fmt.Errorf("projects: project %d payments: %w", p.ID, err)
		}
	}
	return nil
}

func (e TimelineEvent) validate() error {
	if err := validation.ValidateStruct(&e,
		validation.Field(&e.Date, validation.Required, validation.Date(dateLayout)),
		validation.Field(&e.Label, validation.Required),
	); err != nil {
		return err
	}
	switch e.Status {
	case TimelineCompleted, TimelinePending, TimelineInProgress:
		return nil
	}
	return fmt.Errorf("unknown timeline status %q", e.Status)
}

func (p Payment) validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, validation.Min(1)),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Amount, validation.Min(0.0)),
		validation.Field(&p.Date, validation.Required, validation.Date(dateLayout)),
	); err != nil {
		return err
	}
	switch p.Status {
	case PaymentPaid, PaymentPending:
		return nil
	}
	return fmt.Errorf("unknown payment status %q", p.Status)
}

// Validate ensures draft dates are empty or ISO calendar dates.
func (d DateDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Start, validation.Required, validation.Date(dateLayout)),
		validation.Field(&d.Rescheduled, validation.Date(dateLayout)),
	)
}
