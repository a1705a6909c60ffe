package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"

	"urlpro/internal/types"
)

type Options struct {
	From     string
	Host     string
	Port     int
	Username string
	Password string
}

// Mailer delivers weekly digests over SMTP.
type Mailer struct {
	from string
	send func(ctx context.Context, msg *mail.Msg) error
}

func New(opts Options) (*Mailer, error) {
	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.Username),
			mail.WithPassword(opts.Password),
		)
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{
		from: opts.From,
		send: func(ctx context.Context, msg *mail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}, nil
}

// SendWeeklyReport skips users without an address or with email turned off.
func (m *Mailer) SendWeeklyReport(ctx context.Context, d types.WeeklyDigest) error {
	if !d.EmailEnabled || d.Email == "" {
		return nil
	}

	msg, err := buildWeeklyMessage(m.from, d)
	if err != nil {
		return err
	}
	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("send weekly report to user %d: %w", d.UserID, err)
	}

	logrus.WithField("user_id", d.UserID).Info("weekly report emailed")
	return nil
}

func buildWeeklyMessage(from string, d types.WeeklyDigest) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(d.Email); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject("Your weekly URL report")
	msg.SetBodyString(mail.TypeTextPlain, WeeklyText(d))
	return msg, nil
}

// WeeklyText renders the plain-text digest shared by every channel.
func WeeklyText(d types.WeeklyDigest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", d.Username)
	fmt.Fprintf(&b, "Your links between %s and %s:\n\n",
		d.From.UTC().Format("Jan 2"), d.To.UTC().Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "Clicks: %d\n", d.Clicks)
	fmt.Fprintf(&b, "Active links: %d\n", d.ActiveURLs)
	return b.String()
}
