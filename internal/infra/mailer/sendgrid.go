package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/caderh/caderh-api/internal/config"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type SendgridMailer struct {
	client  *sendgrid.Client
	from    *sgmail.Email
	siteURL string
	log     *zap.Logger
}

func NewSendgridMailer(cfg config.MailCfg, log *zap.Logger) *SendgridMailer {
	return &SendgridMailer{
		client:  sendgrid.NewSendClient(cfg.SendgridApiKey),
		from:    sgmail.NewEmail(cfg.FromName, cfg.From),
		siteURL: cfg.SiteURL,
		log:     log,
	}
}

func (s *SendgridMailer) SendAccountEmail(ctx context.Context, to, name, password, role string) error {
	return s.send(ctx, accountMessage(s.siteURL, to, name, password, role))
}

func (s *SendgridMailer) SendRecoveryCode(ctx context.Context, to, name, code string) error {
	return s.send(ctx, recoveryMessage(to, name, code))
}

func (s *SendgridMailer) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail(msg.Name, msg.To))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	return m
}

func (s *SendgridMailer) send(ctx context.Context, msg Message) error {
	res, err := s.client.SendWithContext(ctx, s.prepare(msg))
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	s.log.Sugar().Debugw("mail sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
