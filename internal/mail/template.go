package mail

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// ContactFields is the validated contact form payload used to render the
// notification email.
type ContactFields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// BuildContactMessage renders the notification for one contact submission.
// User-supplied fields are HTML-escaped before they reach the HTML body.
func BuildContactMessage(from, to string, fields ContactFields, now time.Time) *Message {
	subject := fields.Subject
	if strings.TrimSpace(subject) == "" {
		subject = "New message from portfolio"
	}
	return &Message{
		From:    from,
		To:      to,
		ReplyTo: fields.Email,
		Subject: fmt.Sprintf("Portfolio Contact: %s", subject),
		HTML:    renderHTML(fields, now),
		Text:    renderText(fields, now),
		Headers: map[string]string{"X-Entity-Ref-ID": fmt.Sprintf("contact-%d", now.UnixMilli())},
	}
}

func renderHTML(fields ContactFields, now time.Time) string {
	name := html.EscapeString(fields.Name)
	email := html.EscapeString(fields.Email)
	subject := html.EscapeString(fields.Subject)
	message := strings.ReplaceAll(html.EscapeString(fields.Message), "\n", "<br>")

	var sb strings.Builder
	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	sb.WriteString(`<h2 style="color: #333; border-bottom: 2px solid #007acc; padding-bottom: 10px;">New Portfolio Contact</h2>`)
	sb.WriteString(`<div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	fmt.Fprintf(&sb, `<p><strong>Name:</strong> %s</p>`, name)
	fmt.Fprintf(&sb, `<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>`, email, email)
	if subject != "" {
		fmt.Fprintf(&sb, `<p><strong>Subject:</strong> %s</p>`, subject)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`<div style="background: #fff; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px;">`)
	sb.WriteString(`<h3 style="color: #555; margin-top: 0;">Message:</h3>`)
	fmt.Fprintf(&sb, `<p style="line-height: 1.6; color: #333;">%s</p>`, message)
	sb.WriteString(`</div>`)
	fmt.Fprintf(&sb, `<p style="color: #888; font-size: 12px; margin-top: 20px;">Sent from portfolio contact form at %s</p>`, now.UTC().Format(time.RFC1123))
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderText(fields ContactFields, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("New Portfolio Contact\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", fields.Name)
	fmt.Fprintf(&sb, "Email: %s\n", fields.Email)
	if strings.TrimSpace(fields.Subject) != "" {
		fmt.Fprintf(&sb, "Subject: %s\n", fields.Subject)
	}
	fmt.Fprintf(&sb, "\nMessage:\n%s\n", fields.Message)
	fmt.Fprintf(&sb, "\nSent at %s\n", now.UTC().Format(time.RFC1123))
	return sb.String()
}
