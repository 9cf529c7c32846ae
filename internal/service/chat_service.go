package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mercadillo/internal/domain"
)

// ChatService mirrors messages between two participants' thread views.
// Both participants are driven locally, so send takes the sender
// explicitly; it still requires some active session before mutating
// state.
type ChatService struct {
	snap    *domain.Snapshot
	flush   Flusher
	session Session
	seq     *domain.Sequence
	log     zerolog.Logger
}

func NewChatService(snap *domain.Snapshot, flush Flusher, session Session, log zerolog.Logger) *ChatService {
	return &ChatService{
		snap:    snap,
		flush:   flush,
		session: session,
		seq:     domain.NewSequence(snap.MaxMessageTimestamp()),
		log:     log,
	}
}

// SetClock overrides the message timestamp clock. Intended for tests.
func (s *ChatService) SetClock(now func() time.Time) {
	s.seq.SetClock(now)
}

// Send appends one message record to both the sender's thread with the
// receiver and the receiver's thread with the sender. The two appends are
// a single step: validation happens up front and nothing between the
// appends can fail, so the mirror never diverges.
func (s *ChatService) Send(ctx context.Context, sender, receiver, text string) (*domain.Message, error) {
	if _, err := s.session.Require(); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}
	if sender == receiver {
		return nil, domain.ErrSelfChat
	}

	msg := domain.Message{
		Sender:    sender,
		Text:      text,
		Timestamp: s.seq.Next(),
	}

	out := s.snap.EnsureThread(sender, receiver)
	in := s.snap.EnsureThread(receiver, sender)
	out.Messages = append(out.Messages, msg)
	in.Messages = append(in.Messages, msg)

	if err := s.flush.Save(ctx, s.snap); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	s.log.Debug().Str("from", sender).Str("to", receiver).Msg("message mirrored")
	return &msg, nil
}

// OpenThread returns the initiator's thread with partner, creating an
// empty one when absent. Idempotent. Only the initiator's view is
// created here; the partner's mirror appears lazily on first send.
func (s *ChatService) OpenThread(ctx context.Context, initiator, partner string) ([]domain.Message, error) {
	if initiator == partner {
		return nil, domain.ErrSelfChat
	}
	if t, ok := s.snap.FindThread(initiator, partner); ok {
		return t.Messages, nil
	}

	t := s.snap.EnsureThread(initiator, partner)
	if err := s.flush.Save(ctx, s.snap); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return t.Messages, nil
}

// Threads returns the partner names the owner has a thread with, in
// insertion order.
func (s *ChatService) Threads(owner string) []string {
	threads := s.snap.Chats[owner]
	partners := make([]string, 0, len(threads))
	for _, t := range threads {
		partners = append(partners, t.Partner)
	}
	return partners
}

// Messages returns the owner's thread with partner, or nil when no thread
// exists.
func (s *ChatService) Messages(owner, partner string) []domain.Message {
	if t, ok := s.snap.FindThread(owner, partner); ok {
		return t.Messages
	}
	return nil
}
