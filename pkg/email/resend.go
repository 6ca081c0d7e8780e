package email

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:     os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName: os.Getenv("EMAIL_FROM_NAME"),
		logger:   logger,
	}
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<h2>Welcome, {{.Name}}!</h2>
<p>Thanks for joining. Your account is pending approval &mdash; we will let you
know as soon as an administrator has reviewed your profile.</p>
`))

var passwordResetTemplate = template.Must(template.New("reset").Parse(`
<h2>Password reset</h2>
<p>We received a request to reset your password. The link below is valid for
15 minutes.</p>
<p><a href="{{.ResetURL}}">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>
`))

func (s *EmailService) send(to, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		s.logger.Error("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (s *EmailService) SendWelcomeEmail(to, name string) error {
	return s.send(to, "Welcome! Your account is pending approval", welcomeTemplate, struct {
		Name string
	}{Name: name})
}

func (s *EmailService) SendPasswordResetEmail(to, resetURL string) error {
	return s.send(to, "Reset your password", passwordResetTemplate, struct {
		ResetURL string
	}{ResetURL: resetURL})
}
