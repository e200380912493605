package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/internal/service/budget"
)

// PlanResponse is the JSON representation of a plan.
type PlanResponse struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Region    string           `json:"region"`
	Confirmed bool             `json:"confirmed"`
	OwnerID   uuid.UUID        `json:"owner_id"`
	Weather   *WeatherResponse `json:"weather,omitempty"`
	Members   []MemberResponse `json:"members,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type WeatherResponse struct {
	MaxTemp     float64 `json:"max_temp"`
	MinTemp     float64 `json:"min_temp"`
	Description string  `json:"description"`
}

type MemberResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
}

func toPlanResponse(p *domain.Plan) PlanResponse {
	resp := PlanResponse{
		ID:        p.ID,
		Title:     p.Title,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Region:    p.Region,
		Confirmed: p.Confirmed,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Weather != nil {
		resp.Weather = &WeatherResponse{
			MaxTemp:     p.Weather.MaxTemp,
			MinTemp:     p.Weather.MinTemp,
			Description: p.Weather.Description,
		}
	}
	for _, m := range p.Members {
		resp.Members = append(resp.Members, MemberResponse{
			UserID: m.UserID,
			Name:   m.Name,
			Role:   m.Role.String(),
		})
	}
	return resp
}

func toPlanResponses(plans []domain.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, toPlanResponse(&plans[i]))
	}
	return out
}

// PlaceResponse is the JSON representation of a place.
type PlaceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description *string   `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Website     *string   `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPlaceResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category.String(),
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Description: p.Description,
		Images:      p.Images,
		Address:     p.Address,
		Phone:       p.Phone,
		Website:     p.Website,
		CreatedAt:   p.CreatedAt,
	}
}

func toPlaceResponses(places []domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for i := range places {
		out = append(out, toPlaceResponse(&places[i]))
	}
	return out
}

// BookmarkResponse is a bookmarked place on a plan's candidate list.
type BookmarkResponse struct {
	ID          uuid.UUID      `json:"id"`
	PlanID      uuid.UUID      `json:"plan_id"`
	PlaceID     uuid.UUID      `json:"place_id"`
	Recommended bool           `json:"recommended"`
	AddedAt     time.Time      `json:"added_at"`
	Place       *PlaceResponse `json:"place,omitempty"`
}

func toBookmarkResponse(b *domain.Bookmark) BookmarkResponse {
	resp := BookmarkResponse{
		ID:          b.ID,
		PlanID:      b.PlanID,
		PlaceID:     b.PlaceID,
		Recommended: b.Recommended,
		AddedAt:     b.AddedAt,
	}
	if b.Place != nil {
		place := toPlaceResponse(b.Place)
		resp.Place = &place
	}
	return resp
}

func toBookmarkResponses(bookmarks []domain.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		out = append(out, toBookmarkResponse(&bookmarks[i]))
	}
	return out
}

// EntryResponse is a scheduled visit.
type EntryResponse struct {
	ID        uuid.UUID `json:"id"`
	PlanID    uuid.UUID `json:"plan_id"`
	Date      string    `json:"date"`
	PlaceID   uuid.UUID `json:"place_id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Order     int       `json:"order"`
	Notes     *string   `json:"notes,omitempty"`
	ETA       *int      `json:"eta_minutes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toEntryResponse(e *domain.ScheduleEntry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		PlanID:    e.PlanID,
		Date:      e.Date,
		PlaceID:   e.PlaceID,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Order:     e.Order,
		Notes:     e.Notes,
		ETA:       e.ETA,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.ScheduleEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out
}

// DayResponse is one trip day's entries with the summed visit time.
type DayResponse struct {
	Date                 string          `json:"date"`
	Entries              []EntryResponse `json:"entries"`
	TotalDurationMinutes int             `json:"total_duration_minutes"`
}

func toDayResponses(days []domain.ScheduleDay) []DayResponse {
	out := make([]DayResponse, 0, len(days))
	for i := range days {
		out = append(out, DayResponse{
			Date:                 days[i].Date,
			Entries:              toEntryResponses(days[i].Entries),
			TotalDurationMinutes: days[i].TotalDurationMinutes,
		})
	}
	return out
}

// TimelineItemResponse is one row of a rendered day: a visit or a travel
// segment. Key is stable across rebuilds for UI reconciliation.
type TimelineItemResponse struct {
	Key           string         `json:"key"`
	Type          string         `json:"type"`
	Entry         *EntryResponse `json:"entry,omitempty"`
	Place         *PlaceResponse `json:"place,omitempty"`
	TravelMinutes *int           `json:"travel_minutes,omitempty"`
}

func toTimelineResponse(items []domain.TimelineItem) []TimelineItemResponse {
	out := make([]TimelineItemResponse, 0, len(items))
	for i := range items {
		item := TimelineItemResponse{
			Key:  items[i].Key,
			Type: string(items[i].Type),
		}
		if items[i].Entry != nil {
			entry := toEntryResponse(items[i].Entry)
			item.Entry = &entry
		}
		if items[i].Place != nil {
			place := toPlaceResponse(items[i].Place)
			item.Place = &place
		}
		if items[i].Type == domain.TimelineItemTravel {
			minutes := items[i].TravelMinutes
			item.TravelMinutes = &minutes
		}
		out = append(out, item)
	}
	return out
}

// BudgetItemResponse is a single expense.
type BudgetItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	PlanID      uuid.UUID  `json:"plan_id"`
	Day         *string    `json:"day,omitempty"`
	PlaceID     *uuid.UUID `json:"place_id,omitempty"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toBudgetItemResponse(item *domain.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		ID:          item.ID,
		PlanID:      item.PlanID,
		Day:         item.Day,
		PlaceID:     item.PlaceID,
		Amount:      item.Amount,
		Description: item.Description,
		Category:    item.Category.String(),
		CreatedAt:   item.CreatedAt,
	}
}

// BudgetSummaryResponse is all expenses with the total and per-category
// subtotals.
type BudgetSummaryResponse struct {
	Items      []BudgetItemResponse `json:"items"`
	Total      float64              `json:"total"`
	ByCategory map[string]float64   `json:"by_category"`
}

func toBudgetSummaryResponse(summary *budget.Summary) BudgetSummaryResponse {
	items := make([]BudgetItemResponse, 0, len(summary.Items))
	for i := range summary.Items {
		items = append(items, toBudgetItemResponse(&summary.Items[i]))
	}
	byCategory := make(map[string]float64, len(summary.ByCategory))
	for cat, amount := range summary.ByCategory {
		byCategory[cat.String()] = amount
	}
	return BudgetSummaryResponse{Items: items, Total: summary.Total, ByCategory: byCategory}
}

// PackingItemResponse is one checklist entry.
type PackingItemResponse struct {
	ID        uuid.UUID `json:"id"`
	PlanID    uuid.UUID `json:"plan_id"`
	Text      string    `json:"text"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPackingItemResponse(item *domain.PackingItem) PackingItemResponse {
	return PackingItemResponse{
		ID:        item.ID,
		PlanID:    item.PlanID,
		Text:      item.Text,
		ImageURL:  item.ImageURL,
		Completed: item.Completed,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toPackingItemResponses(items []domain.PackingItem) []PackingItemResponse {
	out := make([]PackingItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toPackingItemResponse(&items[i]))
	}
	return out
}

// ReviewResponse is a post-trip review.
type ReviewResponse struct {
	ID        uuid.UUID  `json:"id"`
	PlanID    uuid.UUID  `json:"plan_id"`
	PlaceID   *uuid.UUID `json:"place_id,omitempty"`
	AuthorID  uuid.UUID  `json:"author_id"`
	Type      string     `json:"type"`
	Content   string     `json:"content"`
	Images    []string   `json:"images,omitempty"`
	Rating    *int       `json:"rating,omitempty"`
	WrittenAt time.Time  `json:"written_at"`
}

func toReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		PlanID:    r.PlanID,
		PlaceID:   r.PlaceID,
		AuthorID:  r.AuthorID,
		Type:      r.Type.String(),
		Content:   r.Content,
		Images:    r.Images,
		Rating:    r.Rating,
		WrittenAt: r.WrittenAt,
	}
}

func toReviewResponses(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return out
}
