package echo

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/email-blast/internal/application/mailing"
)

type PasswordHandler struct {
	setPassword      app.SetPassword
	validatePassword app.ValidatePassword
}

type passwordRequest struct {
	Password string `json:"password" form:"password"`
}

func NewPasswordHandler(setPassword app.SetPassword, validatePassword app.ValidatePassword) *PasswordHandler {
	return &PasswordHandler{
		setPassword:      setPassword,
		validatePassword: validatePassword,
	}
}

func (h *PasswordHandler) SetPassword(c echo.Context) error {
	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	err := h.setPassword.Execute(c.Request().Context(), app.SetPasswordInput{Password: req.Password})
	if err != nil {
		if errors.Is(err, app.ErrPasswordAlreadySet) {
			return respondError(c, http.StatusBadRequest, "password_already_set", "password already set")
		}
		if errors.Is(err, app.ErrInvalidPassword) {
			return respondError(c, http.StatusBadRequest, "invalid_password", "password must be 1 to 72 bytes")
		}

		slog.Error("set password failed", "error", err)
		return respondError(c, http.StatusInternalServerError, "internal_error", "error setting password")
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "password set successfully"})
}

func (h *PasswordHandler) ValidatePassword(c echo.Context) error {
	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	out, err := h.validatePassword.Execute(c.Request().Context(), app.ValidatePasswordInput{Password: req.Password})
	if err != nil {
		slog.Error("validate password failed", "error", err)
		return respondError(c, http.StatusInternalServerError, "internal_error", "error validating password")
	}

	return c.JSON(http.StatusOK, out)
}
