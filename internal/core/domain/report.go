package domain

import (
	"errors"
	"time"
)

// ReportStatus represents the lifecycle state of an incident report.
type ReportStatus string

const (
	StatusPendiente   ReportStatus = "Pendiente"
	StatusEnRevision  ReportStatus = "En Revisión"
	StatusSolucionado ReportStatus = "Solucionado"
)

const (
	CategoriaHardware = "Hardware"
	CategoriaSoftware = "Software"
)

// componentesPorCategoria is the closed vocabulary of valid components per
// category. Component names come verbatim from the intake form.
var componentesPorCategoria = map[string][]string{
	CategoriaHardware: {
		"Monitor", "Teclado", "Mouse", "CPU / Procesador", "Memoria RAM",
		"Disco Duro", "Fuente de Poder", "Tarjeta Madre", "Impresora",
	},
	CategoriaSoftware: {
		"Sistema Operativo", "Paquete Office", "Navegadores", "Antivirus",
		"Drivers", "Conectividad / Red", "Software Académico",
	},
}

var ErrReportNotFound = errors.New("report not found")
var ErrInvalidCategoria = errors.New("invalid categoria")
var ErrInvalidComponente = errors.New("componente does not belong to categoria")
var ErrInvalidEstado = errors.New("invalid estado")

// IsValid reports whether s is one of the three known estados.
func (s ReportStatus) IsValid() bool {
	switch s {
	case StatusPendiente, StatusEnRevision, StatusSolucionado:
		return true
	}
	return false
}

// Componentes returns the valid component list for a category, or nil when the
// category itself is unknown.
func Componentes(categoria string) []string {
	return componentesPorCategoria[categoria]
}

// ValidateVocabulario checks a categoria/componente pair against the closed
// vocabulary.
func ValidateVocabulario(categoria, componente string) error {
	componentes, ok := componentesPorCategoria[categoria]
	if !ok {
		return ErrInvalidCategoria
	}
	for _, c := range componentes {
		if c == componente {
			return nil
		}
	}
	return ErrInvalidComponente
}

// Report is the core aggregate root: one submitted incident record.
type Report struct {
	ID          string       `json:"id"`
	Solicitante string       `json:"solicitante"`
	Categoria   string       `json:"categoria"`
	Componente  string       `json:"componente"`
	Descripcion string       `json:"descripcion"`
	Estado      ReportStatus `json:"estado"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
