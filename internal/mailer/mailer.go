// Package mailer sends the post-submission notification emails through
// Resend: a confirmation to the applicant and a digest to the admin list.
// Delivery is best-effort and never influences the submission outcome.
package mailer

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/pollmap/cbnugeumeundong/internal/model"
)

// Mailer wraps the Resend client. A nil *Mailer is valid and no-ops, which
// is how an unconfigured deployment runs.
type Mailer struct {
	client *resend.Client
	sender string
	admins []string
}

// New returns nil when no API key is configured.
func New(apiKey, sender string, admins []string) *Mailer {
	if apiKey == "" {
		return nil
	}
	return &Mailer{
		client: resend.NewClient(apiKey),
		sender: sender,
		admins: admins,
	}
}

// Notify dispatches both notification emails for a stored application and
// returns immediately. Delivery runs on its own goroutine; failures are
// logged and absorbed so a successful submission can never be reported as
// failed because of email trouble.
func (m *Mailer) Notify(app model.Application) {
	if m == nil || m.client == nil {
		return
	}
	go m.send(app)
}

func (m *Mailer) send(app model.Application) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("mailer: recovered from panic during notification: %v", r)
		}
	}()

	if body, err := renderApplicantBody(app); err != nil {
		log.Printf("mailer: failed to render applicant confirmation: %v", err)
	} else {
		_, err := m.client.Emails.Send(&resend.SendEmailRequest{
			From:    fmt.Sprintf("금은동 <%s>", m.sender),
			To:      []string{app.Email},
			Subject: "금은동 지원서 접수 확인",
			Html:    body,
		})
		if err != nil {
			log.Printf("mailer: applicant confirmation to %s failed: %v", app.Email, err)
		}
	}

	if len(m.admins) == 0 {
		return
	}

	if body, err := renderAdminBody(app); err != nil {
		log.Printf("mailer: failed to render admin digest: %v", err)
	} else {
		_, err := m.client.Emails.Send(&resend.SendEmailRequest{
			From:    fmt.Sprintf("금은동 시스템 <%s>", m.sender),
			To:      m.admins,
			Subject: fmt.Sprintf("[금은동] 새로운 지원서 접수 - %s", app.Name),
			Html:    body,
		})
		if err != nil {
			log.Printf("mailer: admin digest failed: %v", err)
		}
	}
}
