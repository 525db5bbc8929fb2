package echo_test

import (
	"context"
	"io"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/email-blast/internal/application/mailing"
	httpecho "github.com/mohammadpnp/email-blast/internal/interfaces/http/echo"
)

type fakeSetPassword struct {
	got app.SetPasswordInput
	err error
}

func (f *fakeSetPassword) Execute(ctx context.Context, in app.SetPasswordInput) error {
	f.got = in
	return f.err
}

type fakeValidatePassword struct {
	output app.ValidatePasswordOutput
	err    error
}

func (f *fakeValidatePassword) Execute(ctx context.Context, in app.ValidatePasswordInput) (app.ValidatePasswordOutput, error) {
	if f.err != nil {
		return app.ValidatePasswordOutput{}, f.err
	}
	return f.output, nil
}

type fakeValidateEmails struct {
	got    app.ValidateEmailsInput
	output app.ValidateEmailsOutput
	err    error
}

func (f *fakeValidateEmails) Execute(ctx context.Context, in app.ValidateEmailsInput) (app.ValidateEmailsOutput, error) {
	f.got = in
	if f.err != nil {
		return app.ValidateEmailsOutput{}, f.err
	}
	return f.output, nil
}

type fakeSendEmails struct {
	gotEmails   string
	gotFilename string
	gotContent  string
	output      app.SendEmailsOutput
	err         error
}

func (f *fakeSendEmails) Execute(ctx context.Context, in app.SendEmailsInput) (app.SendEmailsOutput, error) {
	f.gotEmails = in.Emails
	if in.File != nil {
		f.gotFilename = in.File.Filename
		data, _ := io.ReadAll(in.File.Content)
		f.gotContent = string(data)
	}
	if f.err != nil {
		return app.SendEmailsOutput{}, f.err
	}
	return f.output, nil
}

type fakeGetEmailStats struct {
	output app.GetEmailStatsOutput
	err    error
}

func (f *fakeGetEmailStats) Execute(ctx context.Context) (app.GetEmailStatsOutput, error) {
	if f.err != nil {
		return app.GetEmailStatsOutput{}, f.err
	}
	return f.output, nil
}

type fakes struct {
	setPassword      *fakeSetPassword
	validatePassword *fakeValidatePassword
	validateEmails   *fakeValidateEmails
	sendEmails       *fakeSendEmails
	stats            *fakeGetEmailStats
}

func newFakes() *fakes {
	return &fakes{
		setPassword:      &fakeSetPassword{},
		validatePassword: &fakeValidatePassword{},
		validateEmails:   &fakeValidateEmails{},
		sendEmails:       &fakeSendEmails{},
		stats:            &fakeGetEmailStats{},
	}
}

func (f *fakes) server() *echo.Echo {
	e := echo.New()
	httpecho.RegisterRoutes(e, httpecho.Handlers{
		Passwords: httpecho.NewPasswordHandler(f.setPassword, f.validatePassword),
		Emails:    httpecho.NewEmailHandler(f.validateEmails, f.sendEmails),
		Stats:     httpecho.NewStatsHandler(f.stats),
	})
	return e
}
