package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Plans    *PlanHandler
	Places   *PlaceHandler
	Schedule *ScheduleHandler
	Budget   *BudgetHandler
	Packing  *PackingHandler
	Reviews  *ReviewHandler
}

// NewRouter builds the route table. All API routes live under /api/v1;
// probes are unversioned.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Plans
	mux.HandleFunc("POST /api/v1/plans", h.Plans.Create)
	mux.HandleFunc("GET /api/v1/plans", h.Plans.List)
	mux.HandleFunc("POST /api/v1/plans/join", h.Plans.Join)
	mux.HandleFunc("GET /api/v1/plans/{planID}", h.Plans.Get)
	mux.HandleFunc("PATCH /api/v1/plans/{planID}", h.Plans.Update)
	mux.HandleFunc("DELETE /api/v1/plans/{planID}", h.Plans.Delete)
	mux.HandleFunc("POST /api/v1/plans/{planID}/confirm", h.Plans.Confirm)
	mux.HandleFunc("POST /api/v1/plans/{planID}/members", h.Plans.AddMember)
	mux.HandleFunc("DELETE /api/v1/plans/{planID}/members/{userID}", h.Plans.RemoveMember)
	mux.HandleFunc("POST /api/v1/plans/{planID}/share", h.Plans.Share)
	mux.HandleFunc("POST /api/v1/plans/{planID}/weather/refresh", h.Plans.RefreshWeather)

	// Places and bookmarks
	mux.HandleFunc("POST /api/v1/places", h.Places.Create)
	mux.HandleFunc("PUT /api/v1/places", h.Places.Save)
	mux.HandleFunc("GET /api/v1/places", h.Places.Search)
	mux.HandleFunc("GET /api/v1/places/{placeID}", h.Places.Get)
	mux.HandleFunc("POST /api/v1/plans/{planID}/bookmarks", h.Places.AddBookmark)
	mux.HandleFunc("GET /api/v1/plans/{planID}/bookmarks", h.Places.ListBookmarks)
	mux.HandleFunc("DELETE /api/v1/plans/{planID}/bookmarks/{placeID}", h.Places.RemoveBookmark)

	// Schedule
	mux.HandleFunc("GET /api/v1/plans/{planID}/schedule", h.Schedule.ListDays)
	mux.HandleFunc("GET /api/v1/plans/{planID}/days/{date}", h.Schedule.ListDay)
	mux.HandleFunc("GET /api/v1/plans/{planID}/days/{date}/timeline", h.Schedule.Timeline)
	mux.HandleFunc("POST /api/v1/plans/{planID}/days/{date}/visits", h.Schedule.CreateVisit)
	mux.HandleFunc("POST /api/v1/plans/{planID}/days/{date}/reorder", h.Schedule.Reorder)
	mux.HandleFunc("POST /api/v1/plans/{planID}/days/{date}/move", h.Schedule.Move)
	mux.HandleFunc("GET /api/v1/visits/{entryID}", h.Schedule.GetVisit)
	mux.HandleFunc("PATCH /api/v1/visits/{entryID}", h.Schedule.UpdateVisit)
	mux.HandleFunc("DELETE /api/v1/visits/{entryID}", h.Schedule.DeleteVisit)

	// Budget
	mux.HandleFunc("POST /api/v1/plans/{planID}/budget", h.Budget.Create)
	mux.HandleFunc("GET /api/v1/plans/{planID}/budget", h.Budget.Summary)
	mux.HandleFunc("PATCH /api/v1/budget/{itemID}", h.Budget.Update)
	mux.HandleFunc("DELETE /api/v1/budget/{itemID}", h.Budget.Delete)

	// Packing
	mux.HandleFunc("POST /api/v1/plans/{planID}/packing", h.Packing.Create)
	mux.HandleFunc("GET /api/v1/plans/{planID}/packing", h.Packing.List)
	mux.HandleFunc("PATCH /api/v1/packing/{itemID}", h.Packing.Update)
	mux.HandleFunc("POST /api/v1/packing/{itemID}/toggle", h.Packing.Toggle)
	mux.HandleFunc("DELETE /api/v1/packing/{itemID}", h.Packing.Delete)

	// Reviews
	mux.HandleFunc("POST /api/v1/plans/{planID}/reviews", h.Reviews.Create)
	mux.HandleFunc("GET /api/v1/plans/{planID}/reviews", h.Reviews.ListByPlan)
	mux.HandleFunc("GET /api/v1/plans/{planID}/places/{placeID}/reviews", h.Reviews.ListByPlace)
	mux.HandleFunc("DELETE /api/v1/reviews/{reviewID}", h.Reviews.Delete)

	return mux
}
