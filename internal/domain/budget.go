package domain

import (
	"time"

	"github.com/google/uuid"
)

// BudgetCategory classifies an expense.
type BudgetCategory string

const (
	BudgetCategoryAccommodation BudgetCategory = "accommodation"
	BudgetCategoryFood          BudgetCategory = "food"
	BudgetCategoryTransport     BudgetCategory = "transport"
	BudgetCategoryActivity      BudgetCategory = "activity"
	BudgetCategoryShopping      BudgetCategory = "shopping"
	BudgetCategoryOther         BudgetCategory = "other"
)

func (c BudgetCategory) String() string { return string(c) }

func (c BudgetCategory) IsValid() bool {
	switch c {
	case BudgetCategoryAccommodation, BudgetCategoryFood, BudgetCategoryTransport,
		BudgetCategoryActivity, BudgetCategoryShopping, BudgetCategoryOther:
		return true
	}
	return false
}

// BudgetCategories lists all categories in display order.
var BudgetCategories = []BudgetCategory{
	BudgetCategoryAccommodation,
	BudgetCategoryFood,
	BudgetCategoryTransport,
	BudgetCategoryActivity,
	BudgetCategoryShopping,
	BudgetCategoryOther,
}

// BudgetItem is a single expense attached to a plan, optionally pinned to a
// day or a place.
type BudgetItem struct {
	ID          uuid.UUID
	PlanID      uuid.UUID
	Day         *string // ISO date within the plan range
	PlaceID     *uuid.UUID
	Amount      float64
	Description string
	Category    BudgetCategory
	CreatedAt   time.Time
}

// BudgetUpdate holds partial fields for updating a budget item.
type BudgetUpdate struct {
	Day         *string
	PlaceID     *uuid.UUID
	Amount      *float64
	Description *string
	Category    *BudgetCategory
}
