package main

import (
	"github.com/devsomeware/contactkit/modules/contact"
	"github.com/devsomeware/contactkit/pkg/email"
	"github.com/devsomeware/contactkit/pkg/httpserver"
)

// AppConfig holds application-wide settings.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"contactkit"`
	LogLevel    string `env:"LOG_LEVEL"` // overrides the environment default: debug, info, warn, error
	StaticDir   string `env:"STATIC_DIR" envDefault:"./static"`
	ContentFile string `env:"CONTENT_FILE"`
	ContactPath string `env:"CONTACT_PATH" envDefault:"/contact"`
}

// Configs bundles every config struct the server needs.
type Configs struct {
	App     AppConfig
	HTTP    httpserver.Config
	Email   email.Config
	Contact contact.Config
}
