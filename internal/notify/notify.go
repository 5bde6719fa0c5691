// Package notify sends e-mail notifications about new visitor inquiries.
package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"ouma-web/internal/models"

	"gopkg.in/gomail.v2"
)

// Inquiry what the visitor submitted
type Inquiry struct {
	Session *models.ChatSession
	Message string
	Source  string
}

// Notifier announces new inquiries
type Notifier interface {
	InquiryReceived(ctx context.Context, in Inquiry) error
}

// Nop discards notifications
type Nop struct{}

func (Nop) InquiryReceived(context.Context, Inquiry) error { return nil }

// MailConfig SMTP settings
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer sends inquiry mails over SMTP
type Mailer struct {
	cfg    MailConfig
	dialer *gomail.Dialer
}

// NewMailer creates a Mailer
func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// InquiryReceived mails the inquiry to the configured recipient
func (m *Mailer) InquiryReceived(ctx context.Context, in Inquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := BuildMessage(m.cfg.From, m.cfg.To, in)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send inquiry mail: %w", err)
	}
	return nil
}

// BuildMessage composes the notification mail
func BuildMessage(from, to string, in Inquiry) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	if in.Session != nil && in.Session.Email != "" {
		msg.SetHeader("Reply-To", in.Session.Email)
	}
	msg.SetHeader("Subject", Subject(in))
	msg.SetBody("text/html", Body(in))
	return msg
}

// Subject mail subject line
func Subject(in Inquiry) string {
	who := "visitor"
	if in.Session != nil && in.Session.Company != "" {
		who = in.Session.Company
	}
	return fmt.Sprintf("New inquiry from %s (#%d)", who, sessionID(in))
}

// Body HTML mail body, every value escaped
func Body(in Inquiry) string {
	var sb strings.Builder
	sb.WriteString("<h3>New inquiry</h3><table>")
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&sb, "<tr><th align=\"left\">%s</th><td>%s</td></tr>", label, html.EscapeString(value))
	}
	row("Session", fmt.Sprint(sessionID(in)))
	row("Source", in.Source)
	if s := in.Session; s != nil {
		row("Company", s.Company)
		row("Product", s.InterestedProduct)
		row("Phone", s.Phone)
		row("Email", s.Email)
	}
	sb.WriteString("</table>")
	if in.Message != "" {
		fmt.Fprintf(&sb, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(in.Message), "\n", "<br>"))
	}
	return sb.String()
}

func sessionID(in Inquiry) uint {
	if in.Session == nil {
		return 0
	}
	return in.Session.ID
}
