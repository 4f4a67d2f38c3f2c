// internal/email/mailer/mailer.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Braham27/churchflow-sub002/internal/email"
)

// Sender delivers a rendered email. *email.Service satisfies it.
type Sender interface {
	Send(data email.EmailData, htmlContent, textContent string) error
}

var invitationHTML = template.Must(template.New("invitation").Parse(`
<p>Hello,</p>
<p>You have been invited to join <strong>{{.ChurchName}}</strong> on ChurchFlow.</p>
<p><a href="{{.Link}}">Accept your invitation</a></p>
<p>This link expires in 7 days.</p>
`))

// SendInvitationEmail sends a church membership invitation.
func SendInvitationEmail(s Sender, to, churchName, link string) error {
	var html bytes.Buffer
	err := invitationHTML.Execute(&html, struct {
		ChurchName string
		Link       string
	}{ChurchName: churchName, Link: link})
	if err != nil {
		return fmt.Errorf("rendering invitation email: %w", err)
	}

	text := fmt.Sprintf("You have been invited to join %s on ChurchFlow. Accept: %s", churchName, link)

	return s.Send(email.EmailData{
		To:      to,
		Subject: fmt.Sprintf("You're invited to join %s", churchName),
	}, html.String(), text)
}

// SendAnnouncementEmail sends a plain announcement to a member.
func SendAnnouncementEmail(s Sender, to, subject, body string) error {
	html := fmt.Sprintf("<p>%s</p>", template.HTMLEscapeString(body))
	return s.Send(email.EmailData{
		To:      to,
		Subject: subject,
	}, html, body)
}
