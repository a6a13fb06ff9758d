package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leap-forms-backend/config"
	"leap-forms-backend/pkg/logger"

	gomail "github.com/wneessen/go-mail"
)

// ImplicitTLSPort is the SMTPS port; any other port negotiates STARTTLS when offered
const ImplicitTLSPort = 465

// DefaultTimeout bounds dialing and each SMTP command
const DefaultTimeout = 15 * time.Second

// Message is a single outgoing email
type Message struct {
	From    string
	To      string
	ReplyTo string // optional
	Subject string
	Text    string
	HTML    string
}

// Sender delivers messages through a mail relay
type Sender interface {
	Send(ctx context.Context, msg Message) error
	IsConfigured() bool
}

// EmailService handles sending emails via SMTP
type EmailService struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

// NewEmailService creates a new email service from the MAIL_* configuration
func NewEmailService(cfg *config.Config) *EmailService {
	timeout := cfg.MailTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &EmailService{
		host:     cfg.MailHost,
		port:     cfg.MailPort,
		username: cfg.MailUser,
		password: cfg.MailPassword,
		timeout:  timeout,
	}
}

// Send delivers msg as a text/plain body with a text/html alternative
func (s *EmailService) Send(ctx context.Context, msg Message) error {
	if !s.IsConfigured() {
		return fmt.Errorf("smtp: relay host not configured")
	}

	m, err := BuildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has a relay to talk to
func (s *EmailService) IsConfigured() bool {
	return s.host != ""
}

func (s *EmailService) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithTimeout(s.timeout),
	}

	if s.port == ImplicitTLSPort {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	// WithPort last so the TLS options do not reset it
	opts = append(opts, gomail.WithPort(s.port))

	if s.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.username),
			gomail.WithPassword(s.password),
		)
	}
	return opts
}

// BuildMessage converts a Message into a MIME message.
// Reply-To is best-effort: an address go-mail cannot parse is dropped, not fatal.
func BuildMessage(msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	if replyTo := strings.TrimSpace(msg.ReplyTo); replyTo != "" {
		if err := m.ReplyTo(replyTo); err != nil {
			logger.Log.Warn("dropping unparsable reply-to address", "error", err.Error())
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}
