package plan

import (
	"time"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

const maxTitleLen = 120

// CreatePlanInput holds the parameters for creating a plan.
type CreatePlanInput struct {
	Title     string
	StartDate string
	EndDate   string
	Region    string
	OwnerName string
}

// Validate checks all fields and collects all errors.
func (i *CreatePlanInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 120)"})
	}

	start, startOK := parseDate(i.StartDate)
	if !startOK {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	end, endOK := parseDate(i.EndDate)
	if !endOK {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not precede start_date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePlanInput holds partial fields for editing a plan. Nil fields are
// left unchanged.
type UpdatePlanInput struct {
	Title     *string
	StartDate *string
	EndDate   *string
	Region    *string
}

// Validate checks field shapes; the start/end relation is re-checked against
// the merged plan by UpdatePlan.
func (i *UpdatePlanInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 120)"})
		}
	}
	if i.StartDate != nil {
		if _, ok := parseDate(*i.StartDate); !ok {
			errs = append(errs, domain.FieldError{Field: "start_date", Message: "must be an ISO date (YYYY-MM-DD)"})
		}
	}
	if i.EndDate != nil {
		if _, ok := parseDate(*i.EndDate); !ok {
			errs = append(errs, domain.FieldError{Field: "end_date", Message: "must be an ISO date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}
