package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/devsomeware/contactkit/pkg/email/templates"
	"github.com/devsomeware/contactkit/pkg/validator"
)

type postmarkClient struct {
	client *postmark.Client
	sender string
}

// NewPostmarkClient creates a Postmark-backed email sender.
func NewPostmarkClient(cfg Config) (EmailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if !validator.IsEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkClient{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		sender: cfg.SenderEmail,
	}, nil
}

// SendEmail renders the message locally and sends one email addressed to every
// recipient. The visitor's address becomes Reply-To and the template ID is
// used as the Postmark tag.
func (c *postmarkClient) SendEmail(ctx context.Context, creds Credentials, params TemplateParams) error {
	if err := creds.Validate(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
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

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     c.sender,
		ReplyTo:  params.FromEmail,
		To:       strings.Join(params.Recipients(), ","),
		Subject:  subject(params),
		Tag:      creds.TemplateID,
		HTMLBody: body,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

func subject(params TemplateParams) string {
	return "New message from " + params.FromName
}
