package service_test

import (
	"context"

	"mercadillo/internal/domain"
)

// fakeSession stands in for the session manager.
type fakeSession struct {
	user string
}

func (f *fakeSession) Require() (string, error) {
	if f.user == "" {
		return "", domain.ErrNotAuthenticated
	}
	return f.user, nil
}

// flushRecorder counts snapshot flushes and can simulate a failing store.
type flushRecorder struct {
	saves int
	fail  error
}

func (f *flushRecorder) Save(_ context.Context, _ *domain.Snapshot) error {
	if f.fail != nil {
		return f.fail
	}
	f.saves++
	return nil
}
