package service

import (
	"context"
	"fmt"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"mercadillo/internal/domain"
)

// AccountService handles registration, authentication, profile edits,
// ratings and notifications.
type AccountService struct {
	snap    *domain.Snapshot
	flush   Flusher
	session Session
	log     zerolog.Logger
}

func NewAccountService(snap *domain.Snapshot, flush Flusher, session Session, log zerolog.Logger) *AccountService {
	return &AccountService{
		snap:    snap,
		flush:   flush,
		session: session,
		log:     log,
	}
}

// Register creates an account with the default profile. Fails with
// ErrDuplicateAccount when the username is taken, leaving no partial
// state behind.
func (s *AccountService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	if _, exists := s.snap.Account(username); exists {
		return nil, domain.ErrDuplicateAccount
	}

	acc := &domain.Account{
		Username:      username,
		Password:      password,
		Profile:       domain.DefaultProfile(),
		OfferIDs:      []int64{},
		Notifications: []domain.Notification{},
	}
	s.snap.Accounts[username] = acc

	if err := s.flush.Save(ctx, s.snap); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	s.log.Info().Str("user", username).Msg("account registered")
	return acc, nil
}

// Authenticate verifies credentials and returns the matched account.
func (s *AccountService) Authenticate(username, password string) (*domain.Account, error) {
	if err := s.snap.Authenticate(username, password); err != nil {
		return nil, err
	}
	acc, _ := s.snap.Account(username)
	return acc, nil
}

// UpdateProfile overwrites the editable fields of the active account's
// profile. Nil fields are left untouched.
func (s *AccountService) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) error {
	username, err := s.session.Require()
	if err != nil {
		return err
	}
	acc, ok := s.snap.Account(username)
	if !ok {
		return domain.ErrNotAuthenticated
	}

	if upd.Slogan != nil {
		acc.Profile.Slogan = *upd.Slogan
	}
	if upd.Biography != nil {
		acc.Profile.Biography = *upd.Biography
	}
	if upd.Contact != nil {
		acc.Profile.Contact = *upd.Contact
	}
	if upd.Location != nil {
		acc.Profile.Location = *upd.Location
	}

	if err := s.flush.Save(ctx, s.snap); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// AddRating appends a rating to an account's set. Values outside 0-5
// fail with ErrRatingOutOfRange; absent accounts are a no-op.
func (s *AccountService) AddRating(ctx context.Context, username string, rating float64) error {
	if rating < 0 || rating > domain.StarSlots {
		return domain.ErrRatingOutOfRange
	}
	acc, ok := s.snap.Account(username)
	if !ok {
		return nil
	}
	acc.Profile.Ratings = append(acc.Profile.Ratings, rating)
	if err := s.flush.Save(ctx, s.snap); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// AverageRating returns the mean of an account's ratings, 0 when the set
// is empty or the account is unknown.
func (s *AccountService) AverageRating(username string) float64 {
	acc, ok := s.snap.Account(username)
	if !ok {
		return 0
	}
	return domain.AverageRating(acc.Profile.Ratings)
}

// ProfileView is the rendered profile handed to the presentation layer.
type ProfileView struct {
	Username string         `json:"username"`
	Profile  domain.Profile `json:"profile"`
	Average  float64        `json:"average"`
	Stars    domain.StarBar `json:"stars"`
}

// ProfileView builds the presentation-ready profile of an account,
// including the derived 5-slot star indicator.
func (s *AccountService) ProfileView(username string) (*ProfileView, bool) {
	acc, ok := s.snap.Account(username)
	if !ok {
		return nil, false
	}
	avg := domain.AverageRating(acc.Profile.Ratings)
	return &ProfileView{
		Username: acc.Username,
		Profile:  acc.Profile,
		Average:  avg,
		Stars:    domain.Stars(avg),
	}, true
}

// Notify appends a notification to an account. No core flow calls this;
// it exists for embedders driving the notifications screen.
func (s *AccountService) Notify(ctx context.Context, username, message string) error {
	acc, ok := s.snap.Account(username)
	if !ok {
		return nil
	}
	acc.Notifications = append(acc.Notifications, domain.Notification{
		ID:      xid.New().String(),
		Message: message,
	})
	if err := s.flush.Save(ctx, s.snap); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Notifications returns an account's notification list, oldest first.
func (s *AccountService) Notifications(username string) []domain.Notification {
	acc, ok := s.snap.Account(username)
	if !ok {
		return nil
	}
	return acc.Notifications
}
