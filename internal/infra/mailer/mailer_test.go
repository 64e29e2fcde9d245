package mailer

import (
	"context"
	"testing"

	"github.com/caderh/caderh-api/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMessages(t *testing.T) {
	msg := recoveryMessage("ana@caderh.hn", "Ana <b>", "123456")
	assert.Equal(t, "Código de Verificación", msg.Subject)
	assert.Contains(t, msg.HTML, "<b>123456</b>")
	assert.Contains(t, msg.HTML, "Ana &lt;b&gt;")

	msg = accountMessage("admin.caderh.hn", "ana@caderh.hn", "Ana", "s3cr3tPw", "Supervisor")
	assert.Equal(t, "Credenciales de Acceso", msg.Subject)
	assert.Contains(t, msg.HTML, "https://admin.caderh.hn")
	assert.Contains(t, msg.HTML, "<b>s3cr3tPw</b>")
	assert.Contains(t, msg.HTML, "<b>Supervisor</b>")
}

func TestNew_FallsBackToLog(t *testing.T) {
	m := New(&config.Config{}, zap.NewNop())
	_, ok := m.(*LogMailer)
	assert.True(t, ok)
	assert.NoError(t, m.SendRecoveryCode(context.Background(), "a@b.c", "A", "000000"))

	m = New(&config.Config{Mail: config.MailCfg{SendgridApiKey: "SG.test"}}, zap.NewNop())
	_, ok = m.(*SendgridMailer)
	assert.True(t, ok)
}
