// Package handler provides type-safe HTTP handlers that render templ
// components either as full HTML documents or, for Datastar requests, as
// server-sent event patches.
//
// A handler binds the request into a typed value and returns a Response:
//
//	func (s *Service) page(ctx handler.Context, req PageRequest) handler.Response {
//		return handler.Templ(s.views.Page(params))
//	}
//
//	r.Get("/", handler.Wrap(s.page))
//
// Long running Datastar interactions return handler.SSE and push several
// patches over the same stream:
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendSignals(map[string]any{"loading": true}); err != nil {
//			return err
//		}
//		return stream.SendComponent(views.Alert(alert), handler.WithTarget("#alert"))
//	})
//
// Errors from binding and rendering go to an ErrorHandler. NewErrorHandler
// logs them and answers with an error page or, for Datastar requests, a toast.
package handler
