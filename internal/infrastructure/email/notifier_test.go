package email

import (
	"strings"
	"testing"
	"time"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
)

func TestComposeMessage(t *testing.T) {
	report := &domain.Report{
		ID:          "6617f0a1",
		Solicitante: "Ana",
		Categoria:   "Hardware",
		Componente:  "Mouse",
		Descripcion: "no enciende",
		Estado:      domain.StatusPendiente,
		CreatedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	subject, plain, html := composeMessage(report)

	if subject != "Nuevo reporte de incidencia: Hardware - Mouse" {
		t.Fatalf("unexpected subject: %q", subject)
	}

	for _, want := range []string{"Ana", "Hardware", "Mouse", "no enciende", "14/03/2026 09:30"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("plain body missing %q:\n%s", want, plain)
		}
		if !strings.Contains(html, want) {
			t.Fatalf("html body missing %q:\n%s", want, html)
		}
	}
}
