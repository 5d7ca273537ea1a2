// Package captcha issues one-shot human-verification challenges for
// the login flow. The code is held server-side under an opaque
// challenge ID and expires after a short TTL.
package captcha

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medqueue/hospital-api/pkg/metrics"
	"github.com/medqueue/hospital-api/pkg/validator"
)

var (
	ErrChallengeNotFound = errors.New("captcha challenge not found or expired")
	ErrWrongAnswer       = errors.New("captcha answer does not match")
)

// Store holds pending challenge codes. Take removes the code so every
// challenge verifies at most once.
type Store interface {
	Set(ctx context.Context, id, code string, ttl time.Duration) error
	Take(ctx context.Context, id string) (string, error)
}

// Challenge is what the client receives. The code is displayed to the
// human; the ID comes back with the login request.
type Challenge struct {
	ID   string `json:"captcha_id"`
	Code string `json:"code"`
}

type Service struct {
	store  Store
	length int
	ttl    time.Duration
	m      *metrics.Metrics
}

func NewService(store Store, length int, ttl time.Duration, m *metrics.Metrics) *Service {
	if length <= 0 {
		length = validator.CaptchaLength
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{store: store, length: length, ttl: ttl, m: m}
}

func (s *Service) Issue(ctx context.Context) (*Challenge, error) {
	ch := &Challenge{
		ID:   uuid.New().String(),
		Code: validator.GenerateCaptcha(s.length),
	}
	if err := s.store.Set(ctx, ch.ID, ch.Code, s.ttl); err != nil {
		return nil, err
	}
	if s.m != nil {
		s.m.CaptchasIssued.Inc()
	}
	return ch, nil
}

// Verify compares answer against the stored code, case-insensitively
// and ignoring surrounding whitespace. The challenge is consumed
// whether or not the answer matches.
func (s *Service) Verify(ctx context.Context, id, answer string) error {
	code, err := s.store.Take(ctx, id)
	if err != nil {
		if s.m != nil {
			s.m.CaptchaFailures.Inc()
		}
		return ErrChallengeNotFound
	}

	if !strings.EqualFold(strings.TrimSpace(answer), code) {
		if s.m != nil {
			s.m.CaptchaFailures.Inc()
		}
		return ErrWrongAnswer
	}
	return nil
}
