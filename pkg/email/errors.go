package email

import "errors"

var (
	ErrFailedToSendEmail  = errors.New("email.errors.failed_to_send_email")
	ErrInvalidConfig      = errors.New("email.errors.invalid_config")
	ErrMissingCredentials = errors.New("email.errors.missing_credentials")
	ErrUnknownProvider    = errors.New("email.errors.unknown_provider")
)
