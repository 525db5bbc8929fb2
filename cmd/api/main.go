package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	app "github.com/mohammadpnp/email-blast/internal/application/mailing"
	"github.com/mohammadpnp/email-blast/internal/bootstrap"
	"github.com/mohammadpnp/email-blast/internal/config"
	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/db"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/file"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/mail/resend"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/mail/ses"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/mail/smtp"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/mail/stdout"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/repository"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/security"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/validator"
	"github.com/redis/go-redis/v9"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("failed to load config", err)
	}
	slog.SetDefault(newLogger(cfg.Logging.Level))

	if err := cfg.Validate(); err != nil {
		fatal("invalid config", err)
	}

	if err := run(cfg); err != nil {
		fatal("server stopped", err)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	gormDB, pool, err := db.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close(gormDB, pool)

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	opts := validator.Options{
		CheckMX:   cfg.Validation.CheckMX,
		ProbeSMTP: cfg.Validation.ProbeSMTP,
	}
	if cfg.Redis.URL != "" {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(redisOpts)
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unavailable, domain checks will not be cached", "error", err)
		}
		opts.Cache = validator.NewRedisDomainCache(client, cfg.Validation.CacheTTL)
	}

	transport, err := newTransport(ctx, cfg.Mail)
	if err != nil {
		return err
	}

	tmpl, err := app.NewMessageTemplate(cfg.Mail.From, cfg.Mail.Subject, cfg.Mail.TemplateFile)
	if err != nil {
		return err
	}

	server := bootstrap.NewHTTPServer(cfg.HTTP, bootstrap.Dependencies{
		Passwords:   repository.NewPasswordRepository(gormDB),
		Stats:       repository.NewEmailStatsRepository(pool),
		Hasher:      security.NewBcryptHasher(0),
		Validator:   validator.New(opts),
		Sheets:      file.NewSheetReader(),
		Transport:   transport,
		Template:    tmpl,
		Concurrency: cfg.Dispatch.Concurrency,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.HTTP.Port, "mail_provider", transport.Name())
		if err := server.Start(":" + cfg.HTTP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newTransport(ctx context.Context, cfg config.MailConfig) (domain.Transport, error) {
	switch cfg.Provider {
	case config.ProviderSMTP:
		return smtp.NewTransport(smtp.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		}), nil
	case config.ProviderSES:
		return ses.New(ctx, ses.Config{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
		})
	case config.ProviderResend:
		return resend.New(cfg.Resend.APIKey), nil
	case config.ProviderStdout:
		return stdout.NewTransport(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
