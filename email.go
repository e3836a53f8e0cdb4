package main

import (
	"fmt"
	"net/smtp"
)

// sendContactEmail relays a contact form submission to the site owner's
// inbox. Recipient falls back to the profile email if TO_EMAIL is unset.
func (a *App) sendContactEmail(name, email, message string) error {
	if a.cfg.SMTPUser == "" || a.cfg.SMTPPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	toEmail := a.cfg.ToEmail
	if toEmail == "" {
		profile := defaultProfile()
		a.store.Read(profileFile, &profile)
		toEmail = profile.Email
	}
	if toEmail == "" {
		return fmt.Errorf("no recipient email configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + a.cfg.SMTPUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", a.cfg.SMTPUser, a.cfg.SMTPPass, a.cfg.SMTPHost)
	return smtp.SendMail(a.cfg.SMTPHost+":"+a.cfg.SMTPPort, auth, a.cfg.SMTPUser, []string{toEmail}, msg)
}
