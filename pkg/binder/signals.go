package binder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds the Datastar signal store sent with @get/@post actions using
// `json:"name"` tags. Non-Datastar requests are not applicable.
//
// Datastar sends signals as a JSON body, or in the "datastar" query parameter
// for GET requests.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDatastarRequest(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseSignals, err)
		}
		return nil
	}
}

// isDatastarRequest mirrors handler.IsDataStar. It is duplicated here so that
// binder does not import handler.
func isDatastarRequest(r *http.Request) bool {
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has("datastar")
}
