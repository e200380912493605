// Package share implements plan share links: signed tokens that admit the
// bearer to one plan with a bounded role until they expire.
package share

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

type planRepo interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

// Service issues and resolves share link tokens. Tokens are HS256 JWTs: the
// plan ID is the subject and the granted role a custom claim.
type Service struct {
	log    *slog.Logger
	plans  planRepo
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewService creates a new share service. secret must be at least 32
// characters.
func NewService(logger *slog.Logger, plans planRepo, secret, issuer string, ttl time.Duration) *Service {
	return &Service{
		log:    logger.With("service", "share"),
		plans:  plans,
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// shareClaims extends standard JWT claims with the granted role.
type shareClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateLink issues a share token for a plan. Editors only; the granted
// role must be collaborator or viewer.
func (s *Service) GenerateLink(ctx context.Context, planID uuid.UUID, role domain.MemberRole) (string, error) {
	if role != domain.MemberRoleCollaborator && role != domain.MemberRoleViewer {
		return "", domain.NewValidationError("role", "must be collaborator or viewer")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrForbidden
	}

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return "", err
	}

	if actorRole, member := plan.RoleOf(userID); !member || !actorRole.CanEdit() {
		return "", domain.ErrForbidden
	}

	now := time.Now()
	claims := shareClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   planID.String(),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign share token: %w", err)
	}

	return signed, nil
}

// Resolve validates a share token and returns the grant it carries.
// Expired, tampered or foreign-issuer tokens yield ErrValidation.
func (s *Service) Resolve(ctx context.Context, tokenString string) (*domain.ShareGrant, error) {
	if tokenString == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &shareClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domain.NewValidationError("token", "invalid or expired share token")
	}

	claims, ok := token.Claims.(*shareClaims)
	if !ok || !token.Valid {
		return nil, domain.NewValidationError("token", "invalid share token claims")
	}

	if claims.Issuer != s.issuer {
		return nil, domain.NewValidationError("token", "unknown issuer")
	}

	planID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.NewValidationError("token", "invalid plan reference")
	}

	role := domain.MemberRole(claims.Role)
	if !role.IsValid() {
		return nil, domain.NewValidationError("token", "invalid role")
	}

	// The plan may have been deleted since the link was issued.
	if _, err := s.plans.GetByID(ctx, planID); err != nil {
		return nil, err
	}

	return &domain.ShareGrant{
		PlanID:    planID,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
