package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
	"github.com/go-resty/resty/v2"
)

// mailClient delivers email through the serverless mail function over HTTP.
// The function accepts a JSON body {to, subject, html} and authenticates
// callers with a bearer service key.
type mailClient struct {
	client *resty.Client
	url    string
	logger *logger.Logger
}

// NewMailClient constructs a [MailDispatcher] over the configured mail
// function.
func NewMailClient(cfg config.Mail, log *logger.Logger) MailDispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetTimeout(timeout).
		SetAuthToken(cfg.ServiceKey)

	return &mailClient{
		client: cli,
		url:    strings.TrimRight(cfg.FunctionURL, "/"),
		logger: log,
	}
}

// Send posts one message to the mail function. A transport failure maps to
// [ErrMailUnavailable]; a non-2xx answer maps to [ErrMailRejected].
func (m *mailClient) Send(ctx context.Context, msg models.MailMessage) error {
	log := logger.FromContext(ctx)

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(m.url)
	if err != nil {
		log.Err(err).Str("func", "*mailClient.Send").Str("to", msg.To).Msg("mail function unreachable")
		return fmt.Errorf("%w: %w", ErrMailUnavailable, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		log.Error().Str("func", "*mailClient.Send").Str("to", msg.To).
			Int("status", resp.StatusCode()).Msg("mail function rejected message")
		return fmt.Errorf("%w: http %d: %s", ErrMailRejected, resp.StatusCode(), body)
	}

	log.Info().Str("func", "*mailClient.Send").Str("to", msg.To).Msg("mail sent")
	return nil
}
