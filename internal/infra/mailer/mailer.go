package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/caderh/caderh-api/internal/config"
	"go.uber.org/zap"
)

const (
	subjectRecovery = "Código de Verificación"
	subjectAccount  = "Credenciales de Acceso"
)

type Mailer interface {
	SendAccountEmail(ctx context.Context, to, name, password, role string) error
	SendRecoveryCode(ctx context.Context, to, name, code string) error
}

type Message struct {
	To      string
	Name    string
	Subject string
	HTML    string
}

// New picks SendGrid when an api key is configured and falls back to logging.
func New(cfg *config.Config, log *zap.Logger) Mailer {
	if cfg.Mail.SendgridApiKey == "" {
		return NewLogMailer(log, cfg.Mail.SiteURL)
	}
	return NewSendgridMailer(cfg.Mail, log)
}

func recoveryMessage(to, name, code string) Message {
	return Message{
		To:      to,
		Name:    name,
		Subject: subjectRecovery,
		HTML: fmt.Sprintf("Estimado %s,<br>Tu código de verificación para el sistema estadístico de CADERH es:<br><b>%s</b>",
			html.EscapeString(name), html.EscapeString(code)),
	}
}

func accountMessage(siteURL, to, name, password, role string) Message {
	url := "https://" + siteURL
	return Message{
		To:      to,
		Name:    name,
		Subject: subjectAccount,
		HTML: fmt.Sprintf("Estimado %s,<br>Tus credenciales bajo el rol de <b>%s</b> para el sistema estadístico de CADERH son:<br>"+
			"Url: <a href='%s'>%s</a><br>Usuario: <b>%s</b><br>Contraseña: <b>%s</b>",
			html.EscapeString(name), html.EscapeString(role), url, url, html.EscapeString(to), html.EscapeString(password)),
	}
}

// LogMailer writes messages to the log instead of sending them. Used in development.
type LogMailer struct {
	log     *zap.Logger
	siteURL string
}

func NewLogMailer(log *zap.Logger, siteURL string) *LogMailer {
	return &LogMailer{log: log, siteURL: siteURL}
}

func (m *LogMailer) SendAccountEmail(_ context.Context, to, name, password, role string) error {
	msg := accountMessage(m.siteURL, to, name, password, role)
	m.log.Sugar().Infow("mail (not sent)", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *LogMailer) SendRecoveryCode(_ context.Context, to, name, code string) error {
	msg := recoveryMessage(to, name, code)
	m.log.Sugar().Infow("mail (not sent)", "to", msg.To, "subject", msg.Subject)
	return nil
}
