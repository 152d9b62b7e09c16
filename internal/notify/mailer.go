package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

// Summary is the order digest sent to the operator after checkout.
type Summary struct {
	OrderID      string
	CustomerName string
	Phone        string
	Address      string
	TotalAmount  int64
	Items        []SummaryItem
}

// SummaryItem is one purchased line in the digest.
type SummaryItem struct {
	Title     string
	Quantity  int
	UnitPrice int64
}

// SMTPConfig carries the mail transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Mailer sends order summaries to a single fixed operator recipient.
type Mailer struct {
	cfg  SMTPConfig
	from string
	to   string
}

// NewMailer builds a Mailer. from is the verified sender, to the operator
// address that receives every order.
func NewMailer(cfg SMTPConfig, from, to string) *Mailer {
	return &Mailer{cfg: cfg, from: from, to: to}
}

// Send formats the summary as HTML and delivers it over SMTP.
func (m *Mailer) Send(ctx context.Context, s Summary) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Order! %d BDT - %s", s.TotalAmount, s.CustomerName))
	msg.SetBodyString(mail.TypeTextHTML, formatBody(s))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func formatBody(s Summary) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; padding: 20px;">`)
	b.WriteString("<h2>New Order Received</h2>")
	fmt.Fprintf(&b, "<p><strong>Order ID:</strong> %s</p>", s.OrderID)
	fmt.Fprintf(&b, "<p><strong>Customer:</strong> %s</p>", s.CustomerName)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", s.Phone)
	fmt.Fprintf(&b, "<p><strong>Address:</strong> %s</p>", s.Address)
	b.WriteString("<h3>Order Items:</h3><ul>")
	for _, item := range s.Items {
		fmt.Fprintf(&b, "<li><strong>%s</strong> x %d - %d BDT</li>", item.Title, item.Quantity, item.UnitPrice)
	}
	b.WriteString("</ul><hr/>")
	fmt.Fprintf(&b, "<h3>Total Amount: %d BDT</h3>", s.TotalAmount)
	b.WriteString("</div>")
	return b.String()
}
