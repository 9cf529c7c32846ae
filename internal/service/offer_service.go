package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"mercadillo/internal/domain"
)

// OfferService handles publishing and browsing of offers.
type OfferService struct {
	snap     *domain.Snapshot
	flush    Flusher
	session  Session
	validate *validator.Validate
	seq      *domain.Sequence
	log      zerolog.Logger

	now func() time.Time
}

func NewOfferService(snap *domain.Snapshot, flush Flusher, session Session, log zerolog.Logger) *OfferService {
	return &OfferService{
		snap:     snap,
		flush:    flush,
		session:  session,
		validate: validator.New(),
		seq:      domain.NewSequence(snap.MaxOfferID()),
		log:      log,
		now:      time.Now,
	}
}

// SetClock overrides the wall clock behind ids and creation dates.
// Intended for tests.
func (s *OfferService) SetClock(now func() time.Time) {
	s.now = now
	s.seq.SetClock(now)
}

// PublishInput carries the raw field values of the publish form. Size and
// Gender are meaningful only when Apparel is set.
type PublishInput struct {
	Title       string
	Description string
	Category    string
	Price       string
	ListingType string
	ImageURL    string
	Apparel     bool
	Size        string `validate:"required_if=Apparel true"`
	Gender      string `validate:"required_if=Apparel true"`
}

// Publish creates an offer authored by the active account and appends it
// to the global collection and the author's owned list. A set apparel
// flag requires size and gender; an unset flag forces both to the
// "No aplica" sentinel regardless of what was supplied.
func (s *OfferService) Publish(ctx context.Context, in PublishInput) (*domain.Offer, error) {
	author, err := s.session.Require()
	if err != nil {
		return nil, err
	}
	acc, ok := s.snap.Account(author)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	if err := s.validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return nil, fmt.Errorf("%w: %s", domain.ErrOfferFieldInvalid, strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("validate offer: %w", err)
	}

	size, gender := in.Size, in.Gender
	if !in.Apparel {
		size, gender = domain.NotApplicable, domain.NotApplicable
	}
	image := in.ImageURL
	if image == "" {
		image = domain.DefaultOfferImage
	}

	offer := &domain.Offer{
		ID:          s.seq.Next(),
		Author:      author,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		ListingType: in.ListingType,
		ImageURL:    image,
		Apparel:     in.Apparel,
		Size:        size,
		Gender:      gender,
		Date:        s.now().Format("2006-01-02"),
		Interested:  []string{},
	}

	s.snap.Offers = append(s.snap.Offers, offer)
	acc.OfferIDs = append(acc.OfferIDs, offer.ID)

	if err := s.flush.Save(ctx, s.snap); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	s.log.Info().Int64("offer", offer.ID).Str("author", author).Msg("offer published")
	return offer, nil
}

// List returns the full offer collection in insertion order. No paging or
// filtering; offer volume is assumed small.
func (s *OfferService) List() []*domain.Offer {
	return s.snap.Offers
}

// Get returns the offer with the given id. Absent ids are a no-op render
// for the caller, not an error.
func (s *OfferService) Get(id int64) (*domain.Offer, bool) {
	return s.snap.Offer(id)
}
