package ses

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSESClient struct {
	err       error
	callCount int
	lastInput *sesv2.SendEmailInput
}

func (m *mockSESClient) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	m.callCount++
	m.lastInput = params
	if m.err != nil {
		return nil, m.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("test-message-id")}, nil
}

func testMessage() domain.Message {
	return domain.Message{
		From:    "sender@example.com",
		To:      domain.EmailAddress("alice@example.com"),
		Subject: "Offer",
		HTML:    "<h1>Hi</h1>",
	}
}

func TestSendBuildsSimpleHTMLMessage(t *testing.T) {
	t.Parallel()

	mock := &mockSESClient{}
	tr := NewWithClient(mock)
	assert.Equal(t, "ses", tr.Name())

	require.NoError(t, tr.Send(context.Background(), testMessage()))
	require.Equal(t, 1, mock.callCount)

	input := mock.lastInput
	assert.Equal(t, "sender@example.com", aws.ToString(input.FromEmailAddress))
	assert.Equal(t, []string{"alice@example.com"}, input.Destination.ToAddresses)
	require.NotNil(t, input.Content.Simple)
	assert.Equal(t, "Offer", aws.ToString(input.Content.Simple.Subject.Data))
	assert.Equal(t, "<h1>Hi</h1>", aws.ToString(input.Content.Simple.Body.Html.Data))
	assert.Nil(t, input.Content.Simple.Body.Text)
}

func TestSendDoesNotRetry(t *testing.T) {
	t.Parallel()

	mock := &mockSESClient{err: errors.New("throttled")}
	tr := NewWithClient(mock)

	err := tr.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alice@example.com")
	assert.Contains(t, err.Error(), "throttled")
	assert.Equal(t, 1, mock.callCount)
}
