package bootstrap

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	app "github.com/mohammadpnp/email-blast/internal/application/mailing"
	"github.com/mohammadpnp/email-blast/internal/config"
	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
	httpecho "github.com/mohammadpnp/email-blast/internal/interfaces/http/echo"
)

// Dependencies are the adapters the HTTP use cases run against.
type Dependencies struct {
	Passwords   domain.PasswordRepository
	Stats       domain.StatsRepository
	Hasher      domain.PasswordHasher
	Validator   domain.AddressValidator
	Sheets      domain.SheetReader
	Transport   domain.Transport
	Template    app.MessageTemplate
	Concurrency int
}

func NewHTTPServer(cfg config.HTTPConfig, deps Dependencies) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	server.Use(requestLogger())
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	server.Use(middleware.BodyLimit(cfg.BodyLimit))

	setPassword := app.NewSetPassword(deps.Passwords, deps.Hasher)
	validatePassword := app.NewValidatePassword(deps.Passwords, deps.Hasher)
	validateEmails := app.NewValidateEmails(deps.Validator, deps.Concurrency)
	sendEmails := app.NewSendEmails(deps.Sheets, deps.Validator, deps.Transport, deps.Stats, app.SendEmailsConfig{
		Concurrency: deps.Concurrency,
		Template:    deps.Template,
	})
	getEmailStats := app.NewGetEmailStats(deps.Stats)

	httpecho.RegisterRoutes(server, httpecho.Handlers{
		Passwords: httpecho.NewPasswordHandler(setPassword, validatePassword),
		Emails:    httpecho.NewEmailHandler(validateEmails, sendEmails),
		Stats:     httpecho.NewStatsHandler(getEmailStats),
	})

	return server
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
