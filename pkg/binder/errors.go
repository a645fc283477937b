package binder

import "errors"

var (
	// ErrBinderNotApplicable signals that the request does not carry the kind of
	// payload this binder handles. handler.Wrap skips to the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
)
