package budget

import (
	"time"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

const maxDescriptionLen = 500

// CreateItemInput holds the parameters for recording an expense.
type CreateItemInput struct {
	PlanID      uuid.UUID
	Day         *string
	PlaceID     *uuid.UUID
	Amount      float64
	Description string
	Category    domain.BudgetCategory
}

// Validate checks all fields and collects all errors.
func (i *CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if i.Day != nil && !validDate(*i.Day) {
		errs = append(errs, domain.FieldError{Field: "day", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if i.Amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 500)"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown budget category"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateItemInput holds partial fields for editing an expense. Nil fields are
// left unchanged.
type UpdateItemInput struct {
	Day         *string
	PlaceID     *uuid.UUID
	Amount      *float64
	Description *string
	Category    *domain.BudgetCategory
}

// Validate checks field shapes.
func (i *UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.Day != nil && !validDate(*i.Day) {
		errs = append(errs, domain.FieldError{Field: "day", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if i.Amount != nil && *i.Amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 500)"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown budget category"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
