package place

import (
	"github.com/seongjinkim/tripday-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
	maxImages         = 10
)

// CreatePlaceInput holds the parameters for adding a catalog place.
type CreatePlaceInput struct {
	Name        string
	Category    domain.PlaceCategory
	Latitude    float64
	Longitude   float64
	Description *string
	Images      []string
	Address     *string
	Phone       *string
	Website     *string
}

// Validate checks all fields and collects all errors.
func (i *CreatePlaceInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown place category"})
	}

	if i.Latitude < -90 || i.Latitude > 90 {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if i.Longitude < -180 || i.Longitude > 180 {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}
	if len(i.Images) > maxImages {
		errs = append(errs, domain.FieldError{Field: "images", Message: "too many (max 10)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
