package easydb

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"
)

// Notification is an operator alert about a failed connection.
type Notification struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers connection failure alerts. Open uses it when the
// Config has a NotifyEmail.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// mailSender is the part of *mail.Client that SMTPNotifier uses.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPNotifier mails notifications through an SMTP relay. STARTTLS is used
// when the relay offers it.
type SMTPNotifier struct {
	// Addr is host:port of the relay.
	Addr string
	From string

	// Username and Password enable SMTP PLAIN auth when Username is set.
	Username string
	Password string

	sender mailSender
}

func NewSMTPNotifier(addr, from string) *SMTPNotifier {
	return &SMTPNotifier{
		Addr: addr,
		From: from,
	}
}

func (s *SMTPNotifier) Notify(ctx context.Context, n Notification) (err error) {
	var msg *mail.Msg
	var sender mailSender

	err = ctx.Err()
	if err != nil {
		goto end
	}
	msg, err = s.message(n)
	if err != nil {
		goto end
	}
	sender = s.sender
	if sender == nil {
		sender, err = s.client()
		if err != nil {
			goto end
		}
	}
	err = sender.DialAndSendWithContext(ctx, msg)
	if err != nil {
		err = fmt.Errorf("sending notification to %s: %w", n.To, err)
	}
end:
	return err
}

func (s *SMTPNotifier) client() (*mail.Client, error) {
	host, portText, err := net.SplitHostPort(s.Addr)
	if err != nil {
		return nil, fmt.Errorf("smtp address %q: %w", s.Addr, err)
	}
	port, err := strconv.Atoi(portText)
	if err != nil {
		return nil, fmt.Errorf("smtp port %q: %w", portText, err)
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if s.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username),
			mail.WithPassword(s.Password),
		)
	}
	c, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}
	return c, nil
}

func (s *SMTPNotifier) message(n Notification) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.From); err != nil {
		return nil, fmt.Errorf("notification sender %q: %w", s.From, err)
	}
	if err := m.To(n.To); err != nil {
		return nil, fmt.Errorf("notification recipient %q: %w", n.To, err)
	}
	m.Subject(singleLine(n.Subject))
	m.SetBodyString(mail.TypeTextPlain, n.Body)
	return m, nil
}

// singleLine folds CR and LF into spaces so a value cannot start a new
// header line.
func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, s)
}
