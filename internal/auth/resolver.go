package auth

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
)

// ErrUnauthorized is the single failure every credential problem folds
// into. Callers never learn which sub-step failed; the specific cause
// is only visible in debug logs.
var ErrUnauthorized = errors.New("could not validate credentials")

// AdminLookup is the read-only admin access the resolver needs.
type AdminLookup interface {
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
}

// Resolver turns a request's credential channels (bearer token, session
// admin id) into an authenticated admin. It is stateless and performs
// read-only lookups.
type Resolver struct {
	tokens *TokenManager
	admins AdminLookup
	logger *slog.Logger
}

func NewResolver(tokens *TokenManager, admins AdminLookup, logger *slog.Logger) *Resolver {
	return &Resolver{
		tokens: tokens,
		admins: admins,
		logger: logger,
	}
}

// ResolveToken resolves a bearer credential alone. Any failure —
// invalid signature, expired token, missing subject, unknown admin —
// comes back as ErrUnauthorized.
func (r *Resolver) ResolveToken(ctx context.Context, bearer string) (*models.Admin, error) {
	admin, err := r.resolveTokenInternal(ctx, bearer)
	if err != nil {
		r.logger.Debug("token resolution failed", "reason", err.Error())
		return nil, ErrUnauthorized
	}
	return admin, nil
}

// Resolve is the combined token-or-session resolution. A bearer
// credential, when present, takes precedence; its failures fall through
// silently to the session channel. Session lookup failures are likewise
// swallowed. Only when neither channel yields an admin does the request
// fail.
func (r *Resolver) Resolve(ctx context.Context, bearer, sessionAdminID string) (*models.Admin, error) {
	if bearer != "" {
		if admin, err := r.resolveTokenInternal(ctx, bearer); err == nil {
			return admin, nil
		} else {
			r.logger.Debug("token resolution failed, falling back to session", "reason", err.Error())
		}
	}

	if admin := r.ResolveSession(ctx, sessionAdminID); admin != nil {
		return admin, nil
	}

	return nil, ErrUnauthorized
}

// ResolveSession resolves the session channel only. Absence of an
// identity is a legitimate outcome, never an error: malformed session
// values and failed lookups resolve to nil.
func (r *Resolver) ResolveSession(ctx context.Context, sessionAdminID string) *models.Admin {
	if sessionAdminID == "" {
		return nil
	}

	id, err := strconv.ParseUint(sessionAdminID, 10, 64)
	if err != nil {
		r.logger.Debug("malformed session admin id", "value", sessionAdminID)
		return nil
	}

	admin, err := r.admins.GetByID(ctx, uint(id))
	if err != nil {
		r.logger.Debug("session admin lookup failed", "admin_id", id, "reason", err.Error())
		return nil
	}
	return admin
}

func (r *Resolver) resolveTokenInternal(ctx context.Context, bearer string) (*models.Admin, error) {
	claims, err := r.tokens.Parse(bearer)
	if err != nil {
		return nil, errors.New("invalid token: " + err.Error())
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject claim")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.New("token subject is not an admin id")
	}

	admin, err := r.admins.GetByID(ctx, uint(id))
	if err != nil {
		return nil, errors.New("admin not found")
	}
	return admin, nil
}
