package contact

import (
	"time"

	"github.com/devsomeware/contactkit/pkg/email"
)

// ResetDelay is how long the success alert stays up before the alert hides and
// the form clears.
const ResetDelay = 3000 * time.Millisecond

const (
	DefaultToName  = "Aniket Subudhi"
	DefaultToEmail = "aniketsubudhi00@gmail.com,khanbasir5555@gmail.com,ankit245202@gmail.com"
)

// Config holds the delivery settings of the contact form.
// Credentials are optional at startup; a submission without them fails
// with email.ErrMissingCredentials.
type Config struct {
	Credentials email.Credentials

	ToName  string `env:"CONTACT_TO_NAME" envDefault:"Aniket Subudhi"`
	ToEmail string `env:"CONTACT_TO_EMAIL" envDefault:"aniketsubudhi00@gmail.com,khanbasir5555@gmail.com,ankit245202@gmail.com"`
}

func (c Config) withDefaults() Config {
	if c.ToName == "" {
		c.ToName = DefaultToName
	}
	if c.ToEmail == "" {
		c.ToEmail = DefaultToEmail
	}
	return c
}
