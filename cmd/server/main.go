package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/devsomeware/contactkit/pkg/clientip"
	"github.com/devsomeware/contactkit/pkg/config"
	"github.com/devsomeware/contactkit/pkg/email"
	"github.com/devsomeware/contactkit/pkg/environment"
	"github.com/devsomeware/contactkit/pkg/httpserver"
	"github.com/devsomeware/contactkit/pkg/logger"
	"github.com/devsomeware/contactkit/pkg/requestid"
	"github.com/devsomeware/contactkit/views"
)

func main() {
	var cfg Configs
	config.MustLoad(&cfg.App)
	config.MustLoad(&cfg.HTTP)
	config.MustLoad(&cfg.Email)
	config.MustLoad(&cfg.Contact)

	env := environment.Parse(cfg.App.Env)
	opts := []logger.Option{
		logger.WithEnvironment(env, cfg.App.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.App.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
			panic(err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Configs, log *slog.Logger) error {
	content, err := views.LoadContent(cfg.App.ContentFile)
	if err != nil {
		return err
	}

	sender, err := email.New(cfg.Email)
	if err != nil {
		return err
	}
	if err := cfg.Contact.Credentials.Validate(); err != nil {
		log.Warn("email credentials incomplete, submissions will fail",
			logger.Error(err),
			logger.Provider(cfg.Email.Provider),
		)
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("contact page available", slog.String("path", cfg.App.ContactPath))
		}),
	)
	return srv.Run(ctx, newRouter(cfg, content, sender, log))
}
