package views

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrLoadingContent = errors.New("views.errors.loading_content")

// Content is the copy and imagery of the contact page.
type Content struct {
	Title              string `yaml:"title"`
	Heading            string `yaml:"heading"`
	Intro              string `yaml:"intro"`
	NameLabel          string `yaml:"name_label"`
	NamePlaceholder    string `yaml:"name_placeholder"`
	EmailLabel         string `yaml:"email_label"`
	EmailPlaceholder   string `yaml:"email_placeholder"`
	MessageLabel       string `yaml:"message_label"`
	MessagePlaceholder string `yaml:"message_placeholder"`
	SubmitLabel        string `yaml:"submit_label"`
	SendingLabel       string `yaml:"sending_label"`
	Background         string `yaml:"background"`
	BackgroundWidth    int    `yaml:"background_width"`
	Illustration       string `yaml:"illustration"`
	ArrowIcon          string `yaml:"arrow_icon"`
}

// DefaultContent returns the built-in page copy.
func DefaultContent() Content {
	return Content{
		Title:              "Contact",
		Heading:            "Lets talk",
		Intro:              "Whether you are interested in contributing to open-source projects, joining our developer community, participating in events, or just saying hello, we’d love to hear from you!",
		NameLabel:          "Full Name",
		NamePlaceholder:    "e.g., DevSomeware",
		EmailLabel:         "Email Address",
		EmailPlaceholder:   "e.g., devsomeware@gmail.com",
		MessageLabel:       "Your Message",
		MessagePlaceholder: "Share your thoughts or inquiries...",
		SubmitLabel:        "Send Message",
		SendingLabel:       "Sending...",
		Background:         "/static/stars.svg",
		BackgroundWidth:    1024,
		Illustration:       "/static/terminal.svg",
		ArrowIcon:          "/static/arrow-up.svg",
	}
}

// LoadContent reads a YAML file over DefaultContent. Keys absent from the file
// keep their default. An empty path returns the defaults.
func LoadContent(path string) (Content, error) {
	c := DefaultContent()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrLoadingContent, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: %s: %v", ErrLoadingContent, path, err)
	}
	return c, nil
}
