package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/otel"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	DriverSMTP = "smtp"
	DriverSES  = "ses"
)

var ErrNoRecipient = errors.New("mail has no recipient")

// Mail is a single outgoing message. HTML is optional; Text is always sent.
type Mail struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

func (m Mail) validate() error {
	if len(m.To) == 0 || strings.TrimSpace(m.To[0]) == "" {
		return ErrNoRecipient
	}

	return nil
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// New picks the delivery driver configured under MAIL_DRIVER.
func New(cfg *config.Config, otl otel.Otel) Mailer {
	switch cfg.Mail.Driver {
	case DriverSES:
		log.Info().Str("region", cfg.External.SES.Region).Msg("Mailer uses Amazon SES")

		return NewSES(cfg, otl)
	default:
		log.Info().Str("host", cfg.Mail.Host).Int("port", cfg.Mail.Port).Msg("Mailer uses SMTP")

		return NewSMTP(cfg, otl)
	}
}
