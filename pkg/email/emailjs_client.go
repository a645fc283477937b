package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const emailJSSendPath = "/api/v1.0/email/send"

// EmailJSClient sends messages through the EmailJS REST API.
type EmailJSClient struct {
	client     *resty.Client
	privateKey string
}

type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams TemplateParams `json:"template_params"`
	AccessToken    string         `json:"accessToken,omitempty"`
}

// NewEmailJSClient creates an EmailJS sender. The client performs exactly one
// request per SendEmail call; retries are disabled.
func NewEmailJSClient(cfg Config) *EmailJSClient {
	base := cfg.EmailJSBaseURL
	if base == "" {
		base = DefaultEmailJSBaseURL
	}
	return &EmailJSClient{
		client: resty.New().
			SetBaseURL(base).
			SetRetryCount(0).
			SetHeader("Content-Type", "application/json"),
		privateKey: cfg.EmailJSPrivateKey,
	}
}

// SendEmail posts the template parameters. Only HTTP 200 counts as delivered.
func (c *EmailJSClient) SendEmail(ctx context.Context, creds Credentials, params TemplateParams) error {
	if err := creds.Validate(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(emailJSRequest{
			ServiceID:      creds.ServiceID,
			TemplateID:     creds.TemplateID,
			UserID:         creds.PublicKey,
			TemplateParams: params,
			AccessToken:    c.privateKey,
		}).
		Post(emailJSSendPath)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("emailjs error: %d - %s", resp.StatusCode(), resp.String()),
		)
	}
	return nil
}
