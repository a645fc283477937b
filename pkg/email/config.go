package email

import "fmt"

// Provider names accepted by EMAIL_PROVIDER.
const (
	ProviderEmailJS  = "emailjs"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// DefaultEmailJSBaseURL is the public EmailJS REST endpoint.
const DefaultEmailJSBaseURL = "https://api.emailjs.com"

// Config holds email provider configuration.
// Postmark tokens are only needed when Provider is "postmark".
type Config struct {
	Provider string `env:"EMAIL_PROVIDER" envDefault:"emailjs"`

	EmailJSBaseURL string `env:"EMAILJS_BASE_URL" envDefault:"https://api.emailjs.com"`
	// EmailJSPrivateKey is sent as accessToken. EmailJS requires it when API
	// calls from non-browser clients are restricted to signed requests.
	EmailJSPrivateKey string `env:"EMAILJS_PRIVATE_KEY"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"noreply@localhost"`

	DevOutputDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// New returns the sender selected by cfg.Provider.
func New(cfg Config) (EmailSender, error) {
	switch cfg.Provider {
	case ProviderEmailJS, "":
		return NewEmailJSClient(cfg), nil
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
