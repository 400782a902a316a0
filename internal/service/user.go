package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/VenueBooker/internal/auth"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const profileRecentBookings = 10

type UserService struct {
	repo        ports.UserRepo
	bookingRepo ports.BookingRepo
	activity    ports.ActivityLog
	bcryptCost  int
	logger      logger.Logger
	now         func() time.Time
}

func NewUserService(
	repo ports.UserRepo,
	bookingRepo ports.BookingRepo,
	activity ports.ActivityLog,
	bcryptCost int,
	logger logger.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		bookingRepo: bookingRepo,
		activity:    activity,
		bcryptCost:  bcryptCost,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	user, err := s.create(ctx, name, email, input.Password, false, input.TelegramChatID)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("New registration: %s (%s)", user.Name, user.Email)
	if err = s.activity.Append(ctx, domain.ActivityRegister, msg); err != nil {
		return nil, fmt.Errorf("record activity: %w", err)
	}

	return user, nil
}

// Login checks credentials and stamps the last login time. With adminOnly set
// non-admin accounts are refused as if the credentials were wrong.
func (s *UserService) Login(ctx context.Context, email, password string, adminOnly bool) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if adminOnly && !user.IsAdmin {
		return nil, domain.ErrInvalidCredentials
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err = s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("touch last login: %w", err)
	}
	user.LastLogin = &now

	prefix := "User"
	if adminOnly {
		prefix = "ADMIN"
	}
	msg := fmt.Sprintf("%s logged in: %s (%s)", prefix, user.Name, user.Email)
	if err = s.activity.Append(ctx, domain.ActivityLogin, msg); err != nil {
		return nil, fmt.Errorf("record activity: %w", err)
	}

	return user, nil
}

func (s *UserService) Logout(ctx context.Context, actor *domain.Actor) error {
	if err := actor.Authenticated(); err != nil {
		return err
	}

	msg := fmt.Sprintf("User logged out: %s (%s)", actor.Name, actor.Email)
	if err := s.activity.Append(ctx, domain.ActivityLogout, msg); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, actor *domain.Actor, newPassword, confirm string) error {
	if err := actor.Authenticated(); err != nil {
		return err
	}
	if newPassword != confirm {
		return fmt.Errorf("%w: new passwords do not match", domain.ErrValidation)
	}
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err = s.repo.UpdatePassword(ctx, actor.UserID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	msg := fmt.Sprintf("Password changed: %s (%s)", actor.Name, actor.Email)
	if err = s.activity.Append(ctx, domain.ActivityUser, msg); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (s *UserService) Profile(ctx context.Context, actor *domain.Actor) (*domain.Profile, error) {
	if err := actor.Authenticated(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	p := &domain.Profile{User: *user, TotalBookings: len(bookings)}
	now := s.now()
	for _, b := range bookings {
		if b.Paid {
			p.PaidBookings++
		}
		if b.IsUpcoming(now) {
			p.Upcoming++
		}
	}

	recent := bookings
	if len(recent) > profileRecentBookings {
		recent = recent[:profileRecentBookings]
	}
	p.Recent = recent

	return p, nil
}

// List returns non-admin accounts matching filter.
func (s *UserService) List(ctx context.Context, actor *domain.Actor, filter domain.UserFilter) ([]*domain.User, error) {
	if err := actor.Admin(); err != nil {
		return nil, err
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(ctx, filter)
}

// EnsureAdmin creates the administrator account on first run. An existing
// account with the same email is left untouched.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check admin: %w", err)
	}

	user, err := s.create(ctx, name, email, password, true, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin account seeded", logger.String("email", email))

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) create(ctx context.Context, name, email, password string, isAdmin bool, chatID *int64) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		IsAdmin:        isAdmin,
		TelegramChatID: chatID,
		CreatedAt:      s.now().UTC(),
	}
	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
