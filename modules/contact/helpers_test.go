package contact_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/mock"

	"github.com/devsomeware/contactkit/modules/contact"
	"github.com/devsomeware/contactkit/pkg/email"
)

var testCreds = email.Credentials{ServiceID: "service_1", TemplateID: "template_1", PublicKey: "pk_1"}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, creds email.Credentials, params email.TemplateParams) error {
	args := m.Called(ctx, creds, params)
	return args.Error(0)
}

// manualClock fires timers only when advanced.
type manualClock struct {
	mu        sync.Mutex
	now       time.Duration
	timers    []manualTimer
	scheduled chan time.Duration
}

type manualTimer struct {
	at time.Duration
	ch chan time.Time
}

func newManualClock() *manualClock {
	return &manualClock{scheduled: make(chan time.Duration, 16)}
}

func (c *manualClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.mu.Lock()
	c.timers = append(c.timers, manualTimer{at: c.now + d, ch: ch})
	c.mu.Unlock()
	c.scheduled <- d
	return ch
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
	pending := c.timers[:0]
	for _, t := range c.timers {
		if t.at <= c.now {
			t.ch <- time.Unix(0, 0).Add(c.now)
			continue
		}
		pending = append(pending, t)
	}
	c.timers = pending
}

func (c *manualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// immediateClock fires every timer at once and records the requested delays.
type immediateClock struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (c *immediateClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func (c *immediateClock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.delays...)
}

// recorder collects emitted states.
type recorder struct {
	mu     sync.Mutex
	states []contact.State
}

func (r *recorder) emit(st contact.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, st)
	return nil
}

func (r *recorder) snapshot() []contact.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]contact.State(nil), r.states...)
}

func filledState() contact.State {
	st := contact.InitialState()
	st.Form = contact.FormState{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	return st
}

func expectedParams() email.TemplateParams {
	return email.TemplateParams{
		FromName:  "Ada",
		ToName:    "Aniket Subudhi",
		FromEmail: "ada@example.com",
		ToEmail:   "aniketsubudhi00@gmail.com,khanbasir5555@gmail.com,ankit245202@gmail.com",
		Message:   "Hello",
	}
}

func textView(format string, args func() []any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args()...)
		return err
	})
}

func testViews() *contact.Views {
	return &contact.Views{
		Page: func(p contact.PageParams) templ.Component {
			return textView("<page refresh=%q name=%q alert=%q kind=%q></page>", func() []any {
				return []any{p.RefreshAfter.String(), p.State.Form.Name, p.State.Alert.Text, p.State.Alert.Kind}
			})
		},
		Alert: func(p contact.AlertParams) templ.Component {
			return textView("<div id=\"contact-alert\" data-show=\"%t\" data-kind=\"%s\">%s</div>", func() []any {
				return []any{p.Alert.Show, p.Alert.Kind, p.Alert.Text}
			})
		},
	}
}
