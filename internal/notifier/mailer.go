// Package notifier delivers approval notifications over SMTP. Sending happens
// on a background goroutine so the review path never waits on a mail server,
// and delivery failures are logged rather than returned.
package notifier

import (
	"crypto/tls"
	"fmt"
	"html"

	"rewards-recognition-backend/internal/config"
	"rewards-recognition-backend/internal/database/models"

	mail "github.com/go-mail/mail/v2"
	"github.com/sirupsen/logrus"
)

// MailNotifier sends nomination approval emails through an SMTP relay
type MailNotifier struct {
	dialer *mail.Dialer
	from   string
	log    *logrus.Entry
}

// NewMailNotifier creates a mail notifier from SMTP configuration. Returns nil
// if SMTP is not configured, which disables notifications.
func NewMailNotifier(cfg *config.Config) *MailNotifier {
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
		logrus.Info("SMTP not configured, approval notifications disabled")
		return nil
	}

	d := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.SMTPHost,
		InsecureSkipVerify: cfg.SMTPSkipTLSVerify,
	}

	return &MailNotifier{
		dialer: d,
		from:   cfg.SMTPFrom,
		log:    logrus.WithField("component", "notifier"),
	}
}

// NominationApproved emails the nominator and the nominee once a director has
// approved the nomination. Returns immediately; delivery runs in the
// background.
func (n *MailNotifier) NominationApproved(nomination *models.Nomination) {
	if n == nil {
		return
	}

	go func() {
		if nomination.Nominator != nil && nomination.Nominator.Email != "" {
			n.send(nomination.Nominator.Email,
				"Nomination Approved",
				nominatorBody(nomination))
		}
		if nomination.Nominee != nil && nomination.Nominee.Email != "" {
			n.send(nomination.Nominee.Email,
				"You've Been Selected for an Award!",
				nomineeBody(nomination))
		}
	}()
}

func (n *MailNotifier) send(to, subject, body string) {
	m := mail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.log.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).WithError(err).Error("Failed to send approval notification")
		return
	}
	n.log.WithField("to", to).Info("Sent approval notification")
}

func nominatorBody(nomination *models.Nomination) string {
	nominee := "your nominee"
	if nomination.Nominee != nil {
		nominee = html.EscapeString(nomination.Nominee.Name)
	}
	return fmt.Sprintf(`<html><body>
<p>Good news!</p>
<p>Your nomination for <strong>%s</strong>%s%s has received final approval from the director.</p>
<p>Thank you for taking the time to recognize your colleague.</p>
</body></html>`, nominee, categoryClause(nomination), periodClause(nomination))
}

func nomineeBody(nomination *models.Nomination) string {
	name := ""
	if nomination.Nominee != nil {
		name = " " + html.EscapeString(nomination.Nominee.Name)
	}
	return fmt.Sprintf(`<html><body>
<p>Congratulations%s!</p>
<p>You have been selected for an award%s%s. Your colleagues recognized your outstanding contribution and the director has approved the nomination.</p>
<p>Well done!</p>
</body></html>`, name, categoryClause(nomination), periodClause(nomination))
}

func categoryClause(nomination *models.Nomination) string {
	if nomination.Category == nil {
		return ""
	}
	return fmt.Sprintf(" in the <strong>%s</strong> category", html.EscapeString(nomination.Category.Name))
}

func periodClause(nomination *models.Nomination) string {
	if nomination.YearQuarter == nil {
		return ""
	}
	return fmt.Sprintf(" for <strong>%s</strong>", html.EscapeString(nomination.YearQuarter.Label()))
}
