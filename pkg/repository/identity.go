package repository

import (
	"context"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/models"
	"go.uber.org/zap"
)

// UserFinder is the source of truth for roles.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RoleCache is a best-effort cache in front of UserFinder.
type RoleCache interface {
	GetRole(ctx context.Context, email string) (string, bool, error)
	SetRole(ctx context.Context, email, role string) error
	InvalidateRole(ctx context.Context, email string) error
}

// IdentityStore resolves the role of a caller by email. Cache failures are
// logged and never fail a lookup.
type IdentityStore struct {
	users  UserFinder
	cache  RoleCache
	logger *zap.Logger
}

// NewIdentityStore builds a read-through identity store; cache may be nil.
func NewIdentityStore(users UserFinder, cache RoleCache, logger *zap.Logger) *IdentityStore {
	return &IdentityStore{users: users, cache: cache, logger: logger}
}

// Role returns the role recorded for email. found is false when no user
// record exists; that is not an error.
func (s *IdentityStore) Role(ctx context.Context, email string) (role string, found bool, err error) {
	if s.cache != nil {
		role, ok, err := s.cache.GetRole(ctx, email)
		if err != nil {
			s.logger.Warn("Role cache read failed", zap.String("email", email), zap.Error(err))
		} else if ok {
			return role, true, nil
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return "", false, nil
		}
		return "", false, err
	}

	if s.cache != nil {
		if err := s.cache.SetRole(ctx, email, user.Role); err != nil {
			s.logger.Warn("Role cache write failed", zap.String("email", email), zap.Error(err))
		}
	}
	return user.Role, true, nil
}

// Invalidate drops any cached role for email.
func (s *IdentityStore) Invalidate(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateRole(ctx, email); err != nil {
		s.logger.Warn("Role cache invalidation failed", zap.String("email", email), zap.Error(err))
	}
}
