package smtp

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"loveacts-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestSendBuildsMessage(t *testing.T) {
	d := &recordingDialer{}
	c := &Client{
		cfg:    &config.SMTPConfig{FromEmail: "no-reply@loveacts.app", FromName: "LoveActs"},
		dialer: d,
	}

	require.NoError(t, c.Send(context.Background(), "ana@example.com", "Hello", "<p>hi</p>"))
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"ana@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<p>hi</p>")
}

func TestSendWrapsDialerError(t *testing.T) {
	c := &Client{cfg: &config.SMTPConfig{}, dialer: &recordingDialer{err: errors.New("refused")}}
	assert.ErrorContains(t, c.Send(context.Background(), "a@b.co", "s", "b"), "refused")
}

func TestSendHonoursCancelledContext(t *testing.T) {
	d := &recordingDialer{}
	c := &Client{cfg: &config.SMTPConfig{}, dialer: d}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Send(ctx, "a@b.co", "s", "b"), context.Canceled)
	assert.Empty(t, d.sent)
}

func TestNewClientTLSModes(t *testing.T) {
	starttls := NewClient(&config.SMTPConfig{Host: "smtp.example.com", Port: 587, UseTLS: true})
	assert.False(t, starttls.dialer.(*gomail.Dialer).SSL)

	ssl := NewClient(&config.SMTPConfig{Host: "smtp.example.com", Port: 465})
	assert.True(t, ssl.dialer.(*gomail.Dialer).SSL)
}
