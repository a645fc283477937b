package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/devsomeware/contactkit/pkg/email"
	"github.com/devsomeware/contactkit/pkg/logger"
)

// Clock provides the reset timer. Tests substitute a manual clock.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Emitter receives every intermediate state of a submission in order.
type Emitter func(State) error

// Submitter delivers one form submission per call.
type Submitter struct {
	cfg    Config
	sender email.EmailSender
	clock  Clock
	log    *slog.Logger
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithClock replaces the wall clock used for the reset delay.
func WithClock(c Clock) SubmitterOption {
	return func(s *Submitter) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger for delivery outcomes.
func WithLogger(l *slog.Logger) SubmitterOption {
	return func(s *Submitter) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSubmitter creates a Submitter sending through sender.
func NewSubmitter(cfg Config, sender email.EmailSender, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		cfg:    cfg.withDefaults(),
		sender: sender,
		clock:  realClock{},
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deliver validates the form, performs exactly one SendEmail call and returns
// the state with the outcome alert. A delivery failure is not an error: it is
// logged and reported through the danger alert. The returned error is either
// ErrIncompleteForm, in which case nothing was sent, or an error from emit.
func (s *Submitter) Deliver(ctx context.Context, st State, emit Emitter) (State, error) {
	if err := st.Form.Validate(); err != nil {
		return st, err
	}

	st = Reduce(st, SubmitStarted{})
	if err := emit(st); err != nil {
		return st, err
	}

	params := s.templateParams(st.Form)
	start := time.Now()
	err := s.sender.SendEmail(ctx, s.cfg.Credentials, params)
	if err != nil {
		s.log.ErrorContext(ctx, "contact message not delivered",
			logger.Error(err),
			logger.Component("contact"),
			logger.Event("delivery_failed"),
			logger.Duration(time.Since(start)),
		)
		st = Reduce(st, DeliveryFailed{Err: err})
	} else {
		s.log.InfoContext(ctx, "contact message delivered",
			logger.Component("contact"),
			logger.Event("delivery_succeeded"),
			logger.Recipients(len(params.Recipients())),
			logger.Duration(time.Since(start)),
		)
		st = Reduce(st, DeliverySucceeded{})
	}

	return st, emit(st)
}

// Submit runs Deliver and, after a successful delivery, waits ResetDelay before
// hiding the alert and clearing the form. A failed delivery starts no timer
// and leaves the form as it was. Cancelling ctx abandons the wait.
func (s *Submitter) Submit(ctx context.Context, st State, emit Emitter) (State, error) {
	st, err := s.Deliver(ctx, st, emit)
	if err != nil || st.Alert.Kind != AlertSuccess {
		return st, err
	}

	select {
	case <-ctx.Done():
		return st, nil
	case <-s.clock.After(ResetDelay):
	}

	st = Reduce(Reduce(st, AlertHidden{}), FormReset{})
	return st, emit(st)
}

func (s *Submitter) templateParams(f FormState) email.TemplateParams {
	return email.TemplateParams{
		FromName:  f.Name,
		ToName:    s.cfg.ToName,
		FromEmail: f.Email,
		ToEmail:   s.cfg.ToEmail,
		Message:   f.Message,
	}
}
