package echo

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/email-blast/internal/application/mailing"
)

// uploadField is the multipart field carrying the optional spreadsheet.
const uploadField = "file"

type EmailHandler struct {
	validateEmails app.ValidateEmails
	sendEmails     app.SendEmails
}

type emailsRequest struct {
	Emails string `json:"emails" form:"emails"`
}

func NewEmailHandler(validateEmails app.ValidateEmails, sendEmails app.SendEmails) *EmailHandler {
	return &EmailHandler{
		validateEmails: validateEmails,
		sendEmails:     sendEmails,
	}
}

func (h *EmailHandler) ValidateEmails(c echo.Context) error {
	var req emailsRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	out, err := h.validateEmails.Execute(c.Request().Context(), app.ValidateEmailsInput{Emails: req.Emails})
	if err != nil {
		slog.Error("validate emails failed", "error", err)
		return respondError(c, http.StatusInternalServerError, "internal_error", "failed to validate emails")
	}

	return c.JSON(http.StatusOK, out)
}

func (h *EmailHandler) SendEmails(c echo.Context) error {
	var req emailsRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	upload, err := openUpload(c)
	if err != nil {
		slog.Warn("reading upload failed", "error", err)
		return respondError(c, http.StatusBadRequest, "invalid_file", "uploaded file could not be read")
	}

	in := app.SendEmailsInput{Emails: req.Emails}
	if upload != nil {
		defer upload.Close()
		in.File = &app.Upload{Filename: upload.filename, Content: upload.File}
	}

	out, err := h.sendEmails.Execute(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, app.ErrInvalidUpload) {
			return respondError(c, http.StatusBadRequest, "invalid_file", "uploaded file must be a spreadsheet with an Email column")
		}

		slog.Error("send emails failed", "error", err)
		return respondError(c, http.StatusInternalServerError, "internal_error", "failed to send emails")
	}

	return c.JSON(http.StatusOK, out)
}

type openedUpload struct {
	multipart.File
	filename string
}

// openUpload returns nil when the request carries no file.
func openUpload(c echo.Context) (*openedUpload, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &openedUpload{File: file, filename: header.Filename}, nil
}
