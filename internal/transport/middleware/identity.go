package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

// userIDHeader carries the acting user's ID. Identity is asserted by the
// gateway in front of this service, so the header is trusted as-is.
const userIDHeader = "X-User-Id"

// Identity reads the user ID header into the request context. Requests
// without the header proceed anonymously; services decide what anonymous
// callers may do. A malformed header is rejected outright.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid "+userIDHeader+" header", http.StatusBadRequest)
			return
		}

		ctx := ctxutil.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
