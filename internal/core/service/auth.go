package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

var _ port.Authenticator = (*AuthService)(nil)

const (
	userSnapshotKey   = "techmart_user"
	minPasswordLength = 6
	defaultAvatarURL  = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg"
)

// AuthService keeps at most one resident identity. The credential check is
// a placeholder rule, not real authentication.
type AuthService struct {
	mu        sync.Mutex
	current   *domain.User
	snapshots port.Snapshotter
}

func NewAuthService(snapshots port.Snapshotter) *AuthService {
	s := &AuthService{snapshots: snapshots}
	s.restore()
	return s
}

func (s *AuthService) restore() {
	const op = "AuthService.restore"

	var user domain.User
	err := s.snapshots.Load(userSnapshotKey, &user)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("discarding unreadable user snapshot", "op", op, "err", err)
		}
		return
	}
	s.current = &user
}

func (s *AuthService) Login(
	ctx context.Context, email, password string,
) (domain.User, error) {
	const op = "AuthService.Login"

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if email == "" || len(password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	user := domain.User{
		UserID:    uuid.NewString(),
		Email:     email,
		FirstName: firstNameFromEmail(email),
		LastName:  "User",
		Avatar:    defaultAvatarURL,
	}
	s.setCurrent(user)
	return user, nil
}

func (s *AuthService) Register(
	ctx context.Context, email, password, firstName, lastName string,
) (domain.User, error) {
	const op = "AuthService.Register"

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if email == "" || firstName == "" || lastName == "" ||
		len(password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidRegistration)
	}

	user := domain.User{
		UserID:    uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Avatar:    defaultAvatarURL,
	}
	s.setCurrent(user)
	return user, nil
}

func (s *AuthService) setCurrent(user domain.User) {
	const op = "AuthService.setCurrent"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &user
	if err := s.snapshots.Save(userSnapshotKey, user); err != nil {
		slog.Error("failed to save user snapshot", "op", op, "err", err)
	}
}

func (s *AuthService) Logout() {
	const op = "AuthService.Logout"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.snapshots.Delete(userSnapshotKey); err != nil {
		slog.Error("failed to delete user snapshot", "op", op, "err", err)
	}
}

func (s *AuthService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

func (s *AuthService) IsAuthenticated() bool {
	return s.Current() != nil
}

func firstNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return local
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
