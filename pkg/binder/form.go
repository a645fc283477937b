// Package binder decodes HTTP request payloads into tagged request structs.
//
// Binders are chained with handler.WithBinders; a binder that does not
// recognise the request returns ErrBinderNotApplicable and the next one is
// tried. The contact page uses two: Signals for Datastar requests and Form
// for the plain HTML fallback.
//
//	type SubmitRequest struct {
//		Name  string `form:"name" json:"name"`
//		Email string `form:"email" json:"email"`
//	}
package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms.
const DefaultMaxMemory = 1 << 20 // 1 MB

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// using `form:"name"` tags. Requests without a form content type are not
// applicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrBinderNotApplicable
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type: %v", ErrUnsupportedMediaType, err)
		}

		var values map[string][]string
		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case strings.HasPrefix(mediaType, "multipart/form-data"):
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return ErrBinderNotApplicable
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
