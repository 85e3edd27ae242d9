package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"api/config"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
		from:     config.MailFrom,
	}
}

// SendTeamConfirmationEmail notifies every team member that their team has
// been registered. A blank SMTP username means mail is not configured and the
// send is skipped.
func (s *EmailService) SendTeamConfirmationEmail(to []string, teamName string, teamID int) error {
	if len(to) == 0 {
		return nil
	}
	if s.username == "" {
		log.Println("SMTP not configured, skipping confirmation email")
		return nil
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	htmlTemplate := strings.TrimSpace(`
From: %s <%s>
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Team Registration Successful

<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Team Registration Successful</title>
</head>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background: linear-gradient(to right, #1a1a1a, #2d2d2d); padding: 40px 20px; text-align: center; border-radius: 12px;">
                <h1 style="color: #ffffff; margin-bottom: 30px; font-size: 24px;">Team Registration Successful</h1>
                <p style="color: #9ca3af; margin-bottom: 10px; font-size: 16px;">Your team <b style="color: #ffffff;">%s</b> has been registered successfully.</p>
                <p style="color: #9ca3af; margin-bottom: 30px; font-size: 16px;">Team ID: <b style="color: #d97706;">%d</b></p>
                <p style="color: #9ca3af; font-size: 14px;">Good luck in the hackathon!</p>
            </td>
        </tr>
        <tr>
            <td style="text-align: center; padding-top: 20px;">
                <p style="color: #6b7280; font-size: 14px;">Innotech Hackathon</p>
            </td>
        </tr>
    </table>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate, s.from, s.username, strings.Join(to, ","), teamName, teamID))
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, to, msg)
}
