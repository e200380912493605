package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

const (
	maxNotesLen = 2000

	// defaultVisitMinutes is the end-time default applied when a new visit
	// omits its end time.
	defaultVisitMinutes = 60
)

// CreateVisitInput holds the parameters for adding a visit to a day.
type CreateVisitInput struct {
	PlanID    uuid.UUID
	Date      string
	PlaceID   uuid.UUID
	StartTime string
	// EndTime may be empty; it then defaults to StartTime + 60 minutes.
	EndTime string
	Notes   *string
}

// Validate checks all fields and collects all errors.
func (i *CreateVisitInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if i.PlaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "place_id", Message: "required"})
	}
	if !validDate(i.Date) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}

	start, startErr := domain.ParseTimeOfDay(i.StartTime)
	if startErr != nil {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "must be HH:mm"})
	}

	if i.EndTime != "" {
		end, endErr := domain.ParseTimeOfDay(i.EndTime)
		if endErr != nil {
			errs = append(errs, domain.FieldError{Field: "end_time", Message: "must be HH:mm"})
		} else if startErr == nil && end <= start {
			errs = append(errs, domain.FieldError{Field: "end_time", Message: "must be after start_time"})
		}
	}

	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateVisitInput holds partial fields for editing a visit. Nil fields are
// left unchanged.
type UpdateVisitInput struct {
	EntryID   uuid.UUID
	Date      *string
	PlaceID   *uuid.UUID
	StartTime *string
	EndTime   *string
	Notes     *string
}

// Validate checks field shapes; start/end ordering is re-checked against the
// merged entry by UpdateVisit, since either side may come from storage.
func (i *UpdateVisitInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.PlaceID != nil && *i.PlaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "place_id", Message: "must not be empty"})
	}
	if i.Date != nil && !validDate(*i.Date) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if i.StartTime != nil {
		if _, err := domain.ParseTimeOfDay(*i.StartTime); err != nil {
			errs = append(errs, domain.FieldError{Field: "start_time", Message: "must be HH:mm"})
		}
	}
	if i.EndTime != nil {
		if _, err := domain.ParseTimeOfDay(*i.EndTime); err != nil {
			errs = append(errs, domain.FieldError{Field: "end_time", Message: "must be HH:mm"})
		}
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validDate reports whether s is a calendar date in YYYY-MM-DD form.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
