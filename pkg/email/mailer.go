package email

import (
	"context"
	"fmt"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, creds Credentials, params TemplateParams) error
}

// Credentials identify the sending account and the message template.
// They are supplied by configuration and passed with every call.
type Credentials struct {
	ServiceID  string `env:"EMAILJS_SERVICE_ID"`
	TemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
}

// Validate reports every empty credential field.
func (c Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.ServiceID) == "" {
		missing = append(missing, "ServiceID")
	}
	if strings.TrimSpace(c.TemplateID) == "" {
		missing = append(missing, "TemplateID")
	}
	if strings.TrimSpace(c.PublicKey) == "" {
		missing = append(missing, "PublicKey")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// TemplateParams are the variables substituted into the message template.
type TemplateParams struct {
	FromName  string `json:"from_name"`
	ToName    string `json:"to_name"`
	FromEmail string `json:"from_email"`
	ToEmail   string `json:"to_email"` // comma-separated recipient list
	Message   string `json:"message"`
}

// Recipients splits ToEmail into trimmed, non-empty addresses.
func (p TemplateParams) Recipients() []string {
	parts := strings.Split(p.ToEmail, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
