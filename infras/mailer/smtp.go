package mailer

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/wneessen/go-mail"
)

type smtpMailer struct {
	cfg  *config.Config
	otel otel.Otel
}

func NewSMTP(cfg *config.Config, otl otel.Otel) Mailer {
	return &smtpMailer{cfg: cfg, otel: otl}
}

func (s *smtpMailer) client() (*mail.Client, error) {
	options := []mail.Option{
		mail.WithPort(s.cfg.Mail.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	if s.cfg.Mail.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Mail.Username),
			mail.WithPassword(s.cfg.Mail.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Mail.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize smtp client: %w", err)
	}

	return client, nil
}

// message builds the go-mail message for m.
func (s *smtpMailer) message(m Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(s.cfg.Mail.FromName, s.cfg.Mail.From); err != nil {
		return nil, fmt.Errorf("failed to set from address: %w", err)
	}

	if err := msg.To(m.To...); err != nil {
		return nil, fmt.Errorf("failed to set recipient: %w", err)
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)

	if m.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)
	}

	return msg, nil
}

func (s *smtpMailer) Send(ctx context.Context, m Mail) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".smtp.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = m.validate(); err != nil {
		return err
	}

	msg, err := s.message(m)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return err
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
