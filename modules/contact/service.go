package contact

import (
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/devsomeware/contactkit/handler"
	"github.com/devsomeware/contactkit/pkg/binder"
)

// AlertID is the DOM id of the alert container patched on every outcome.
const AlertID = "contact-alert"

// PageParams is the data for the full contact page.
type PageParams struct {
	State State
	// RefreshAfter, when non-zero, makes the page reload an empty form after
	// the delay. It is set on the no-JavaScript success path.
	RefreshAfter time.Duration
}

// AlertParams is the data for the alert container.
type AlertParams struct {
	Alert AlertState
}

// Views renders the contact page. Both functions are required.
type Views struct {
	Page  func(PageParams) templ.Component
	Alert func(AlertParams) templ.Component
}

// SubmitRequest is bound from Datastar signals or from a plain form post.
type SubmitRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

func (r SubmitRequest) state() State {
	st := InitialState()
	st = Reduce(st, FieldChanged{Field: FieldName, Value: r.Name})
	st = Reduce(st, FieldChanged{Field: FieldEmail, Value: r.Email})
	st = Reduce(st, FieldChanged{Field: FieldMessage, Value: r.Message})
	return st
}

// Service serves the contact page and its submissions.
type Service struct {
	submitter    *Submitter
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewService(submitter *Submitter, views *Views, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{
		submitter:    submitter,
		views:        views,
		errorHandler: errorHandler,
	}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		handler.WithDecorators(noStore[struct{}]()),
	))

	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SubmitRequest](
			binder.Signals(), // Datastar @post
			binder.Form(),    // no-JS fallback
		),
		handler.WithErrorHandler[handler.Context, SubmitRequest](s.errorHandler),
		handler.WithDecorators(noStore[SubmitRequest]()),
	))

	return r
}

// noStore keeps browsers from caching pages that carry form values or an
// outcome alert. Datastar streams set their own cache headers.
func noStore[R any]() handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			ctx.ResponseWriter().Header().Set("Cache-Control", "no-store")
			return next(ctx, req)
		}
	}
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(PageParams{State: InitialState()}))
}

func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	st := req.state()
	if err := st.Form.Validate(); err != nil {
		return handler.Error(err)
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(stream handler.StreamContext) error {
			_, err := s.submitter.Submit(stream, st, s.patcher(stream, st))
			return err
		})
	}

	final, err := s.submitter.Deliver(ctx, st, func(State) error { return nil })
	if err != nil {
		return handler.Error(err)
	}

	params := PageParams{State: final}
	if final.Alert.Show && final.Alert.Kind == AlertSuccess {
		params.RefreshAfter = ResetDelay
	}
	return handler.Templ(s.views.Page(params))
}

// patcher streams only what changed since the previous state, so fields the
// visitor edits while a request is in flight are not overwritten.
func (s *Service) patcher(stream handler.StreamContext, prev State) Emitter {
	return func(next State) error {
		if signals := changedSignals(prev, next); len(signals) > 0 {
			if err := stream.SendSignals(signals); err != nil {
				return err
			}
		}
		if next.Alert != prev.Alert {
			err := stream.SendComponent(
				s.views.Alert(AlertParams{Alert: next.Alert}),
				handler.WithTarget("#"+AlertID),
			)
			if err != nil {
				return err
			}
		}
		prev = next
		return nil
	}
}

func changedSignals(prev, next State) map[string]any {
	signals := make(map[string]any)
	for _, f := range Fields {
		if v := next.Form.Get(f); v != prev.Form.Get(f) {
			signals[string(f)] = v
		}
	}
	if next.Loading != prev.Loading {
		signals["loading"] = next.Loading
	}
	return signals
}
