package echo

import (
	"net/http"

	e "github.com/labstack/echo/v4"
)

type Handlers struct {
	Passwords *PasswordHandler
	Emails    *EmailHandler
	Stats     *StatsHandler
}

func RegisterRoutes(server *e.Echo, h Handlers) {
	server.GET("/healthz", Healthz)

	server.POST("/set-password", h.Passwords.SetPassword)
	server.POST("/validate-password", h.Passwords.ValidatePassword)
	server.POST("/validate-emails", h.Emails.ValidateEmails)
	server.POST("/send-emails", h.Emails.SendEmails)
	server.GET("/email-stats", h.Stats.GetEmailStats)
}

func Healthz(c e.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
