package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/devsomeware/contactkit/pkg/email/templates"
)

// DevSender implements EmailSender for local development.
// It saves each message as an HTML file plus a JSON metadata file.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type emailMetadata struct {
	Timestamp  string         `json:"timestamp"`
	ServiceID  string         `json:"service_id"`
	TemplateID string         `json:"template_id"`
	Params     TemplateParams `json:"template_params"`
}

// SendEmail writes <timestamp>_<sender>.html and .json to the output directory.
func (d *DevSender) SendEmail(ctx context.Context, creds Credentials, params TemplateParams) error {
	if err := creds.Validate(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	body, err := templates.Render(ctx, templates.ContactMessage(templates.Message{
		FromName:  params.FromName,
		FromEmail: params.FromEmail,
		ToName:    params.ToName,
		Body:      params.Message,
	}))
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	now := d.now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(params.FromEmail))

	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(body), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	data, err := json.MarshalIndent(emailMetadata{
		Timestamp:  now.Format(time.RFC3339),
		ServiceID:  creds.ServiceID,
		TemplateID: creds.TemplateID,
		Params:     params,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}
	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename keeps [a-zA-Z0-9-_.], lowercases and caps the length at 100.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "@", "_at_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
