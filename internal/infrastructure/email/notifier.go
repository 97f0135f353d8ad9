package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// To is the destination address for new-report notifications.
	To string
}

// SMTPNotifier sends the new-report notification email over SMTP.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
	}
}

// Notify composes and delivers the notification for a newly created report.
// Callers dispatch it off the request path; delivery failure is theirs to log.
func (n *SMTPNotifier) Notify(ctx context.Context, report *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, plainBody, htmlBody := composeMessage(report)

	m := gomail.NewMessage()
	m.SetHeader("From", n.config.From)
	m.SetHeader("To", n.config.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}

func composeMessage(report *domain.Report) (subject, plainBody, htmlBody string) {
	subject = fmt.Sprintf("Nuevo reporte de incidencia: %s - %s", report.Categoria, report.Componente)

	submittedAt := report.CreatedAt.Format("02/01/2006 15:04")

	plainBody = fmt.Sprintf(`Se ha registrado un nuevo reporte de incidencia.

Solicitante: %s
Categoría: %s
Componente: %s
Descripción: %s
Fecha de envío: %s
`, report.Solicitante, report.Categoria, report.Componente, report.Descripcion, submittedAt)

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Nuevo reporte de incidencia</h2>
			<p><strong>Solicitante:</strong> %s</p>
			<p><strong>Categoría:</strong> %s</p>
			<p><strong>Componente:</strong> %s</p>
			<p><strong>Descripción:</strong> %s</p>
			<p><strong>Fecha de envío:</strong> %s</p>
		</body>
		</html>
	`, report.Solicitante, report.Categoria, report.Componente, report.Descripcion, submittedAt)

	return subject, plainBody, htmlBody
}
