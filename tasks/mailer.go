package tasks

import (
	"fmt"
	"net/smtp"
	"os"

	log "github.com/sirupsen/logrus"

	"yatube/monitoring"
)

const MailChannelBufferSize = 1000

type Email struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(email Email) error
}

// SMTPSender submits mail to the relay described by the SMTP_* environment
// variables.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPSenderFromEnv() *SMTPSender {
	return &SMTPSender{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

func (s *SMTPSender) Send(email Email) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.from, email.To, email.Subject, email.Body,
	)

	var smtpAuth smtp.Auth
	if s.username != "" {
		smtpAuth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	return smtp.SendMail(
		s.host+":"+s.port,
		smtpAuth,
		s.from,
		[]string{email.To},
		[]byte(message),
	)
}

// Mailer dispatches mail from a buffered channel so request handlers never
// block on SMTP. Run is meant to live in its own goroutine under
// utils.Recoverer.
type Mailer struct {
	Ch chan Email

	sender Sender
}

func NewMailer(sender Sender) *Mailer {
	return &Mailer{
		Ch:     make(chan Email, MailChannelBufferSize),
		sender: sender,
	}
}

// Enqueue hands the email to the worker without blocking. A full queue drops
// the message; mail here is best-effort notification, not durable state.
func (m *Mailer) Enqueue(email Email) {
	select {
	case m.Ch <- email:
	default:
		log.Warnf("Mail queue full, dropping email to %s", email.To)
		monitoring.MailDispatches.WithLabelValues("dropped").Inc()
	}
}

func (m *Mailer) Run() {
	for email := range m.Ch {
		if err := m.sender.Send(email); err != nil {
			log.Errorf("Error sending email to %s: %v", email.To, err)
			monitoring.MailDispatches.WithLabelValues("error").Inc()
			continue
		}
		monitoring.MailDispatches.WithLabelValues("sent").Inc()
	}
}
