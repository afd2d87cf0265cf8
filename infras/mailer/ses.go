package mailer

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog/log"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client sesAPI
	cfg    *config.Config
	otel   otel.Otel
}

func NewSES(cfg *config.Config, otl otel.Otel) Mailer {
	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(), awsConfig.WithRegion(cfg.External.SES.Region))
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration for SES")
	}

	return newSESWithClient(ses.NewFromConfig(awsCfg), cfg, otl)
}

func newSESWithClient(client sesAPI, cfg *config.Config, otl otel.Otel) *sesMailer {
	return &sesMailer{client: client, cfg: cfg, otel: otl}
}

func (s *sesMailer) input(m Mail) *ses.SendEmailInput {
	from := (&mail.Address{Name: s.cfg.Mail.FromName, Address: s.cfg.Mail.From}).String()

	body := &types.Body{
		Text: &types.Content{Data: aws.String(m.Text), Charset: aws.String("UTF-8")},
	}
	if m.HTML != "" {
		body.Html = &types.Content{Data: aws.String(m.HTML), Charset: aws.String("UTF-8")}
	}

	return &ses.SendEmailInput{
		Source:      aws.String(from),
		Destination: &types.Destination{ToAddresses: m.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(m.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	}
}

func (s *sesMailer) Send(ctx context.Context, m Mail) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".ses.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = m.validate(); err != nil {
		return err
	}

	out, err := s.client.SendEmail(ctx, s.input(m))
	if err != nil {
		return fmt.Errorf("failed to send mail through SES: %w", err)
	}

	log.Debug().Str("messageID", aws.ToString(out.MessageId)).Msg("Sent mail through SES")

	return nil
}
