package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/devsomeware/contactkit/handler"
	"github.com/devsomeware/contactkit/modules/contact"
	"github.com/devsomeware/contactkit/pkg/clientip"
	"github.com/devsomeware/contactkit/pkg/email"
	"github.com/devsomeware/contactkit/pkg/environment"
	"github.com/devsomeware/contactkit/pkg/httpserver"
	"github.com/devsomeware/contactkit/pkg/requestid"
	"github.com/devsomeware/contactkit/views"
)

// newRouter wires the contact module, health checks and static files.
// /readyz reports NOT_READY until the email credentials are configured.
func newRouter(cfg Configs, content views.Content, sender email.EmailSender, log *slog.Logger, opts ...contact.SubmitterOption) http.Handler {
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	submitter := contact.NewSubmitter(cfg.Contact, sender, append([]contact.SubmitterOption{contact.WithLogger(log)}, opts...)...)
	contactSvc := contact.NewService(submitter, views.ContactViews(content, cfg.App.ContactPath), errorHandler)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(environment.Parse(cfg.App.Env)),
		middleware.Recoverer,
	)

	r.NotFound(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.App.ContactPath, http.StatusFound)
	})
	r.Mount(cfg.App.ContactPath, contactSvc.Handle())
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, func(context.Context) error {
		return cfg.Contact.Credentials.Validate()
	}))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.App.StaticDir))))

	return r
}
