package channel

import (
	"context"
	"testing"

	"romantic-api/core/config"
	"romantic-api/modules/reminder/entity"

	"github.com/stretchr/testify/assert"
)

func TestEmailChannelSkipsWhenUnconfigured(t *testing.T) {
	ch := NewEmailChannel(config.SMTPConfig{})

	result := ch.Send(context.Background(), Message{
		To:      "amor@mimujer.local",
		Subject: "Recordatorio romántico: Aniversario",
	})

	assert.Equal(t, entity.StatusSkipped, result.Status)
	assert.Equal(t, "SMTP not configured", result.Details)
}

func TestEmailChannelBuildsHTMLMessage(t *testing.T) {
	ch := NewEmailChannel(config.SMTPConfig{From: "no-reply@mimujer.local"})

	raw := ch.buildMessage(Message{
		To:       "amor@mimujer.local",
		Subject:  "Recordatorio romántico: Aniversario",
		HTMLBody: "<h2>Aniversario</h2>",
	})

	assert.Contains(t, raw, "From: no-reply@mimujer.local\r\n")
	assert.Contains(t, raw, "To: amor@mimujer.local\r\n")
	assert.Contains(t, raw, "Subject: Recordatorio romántico: Aniversario\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.Contains(t, raw, "<h2>Aniversario</h2>")
}

func TestPushChannelAlwaysSkips(t *testing.T) {
	ch := NewPushChannel()

	result := ch.Send(context.Background(), Message{To: "amor@mimujer.local"})

	assert.Equal(t, entity.StatusSkipped, result.Status)
	assert.Equal(t, "push not implemented", result.Details)
}

func TestRegistryLooksUpByName(t *testing.T) {
	email := NewEmailChannel(config.SMTPConfig{})
	r := NewRegistry(email, NewPushChannel())

	got, ok := r.Get("email")
	assert.True(t, ok)
	assert.Same(t, email, got)

	_, ok = r.Get("paloma")
	assert.False(t, ok)
}
