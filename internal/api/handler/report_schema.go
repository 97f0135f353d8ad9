package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createReportRequest struct {
	Solicitante string `json:"solicitante" validate:"required"`
	Categoria   string `json:"categoria"   validate:"required,oneof=Hardware Software"`
	Componente  string `json:"componente"  validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

// updateReportRequest is a partial update: absent fields stay unchanged.
type updateReportRequest struct {
	Solicitante *string `json:"solicitante"`
	Categoria   *string `json:"categoria"`
	Componente  *string `json:"componente"`
	Descripcion *string `json:"descripcion"`
	Estado      *string `json:"estado"`
}

// --- Response types ---

// reportResponse is the transport view of a report. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type reportResponse struct {
	ID          string    `json:"id"`
	Solicitante string    `json:"solicitante"`
	Categoria   string    `json:"categoria"`
	Componente  string    `json:"componente"`
	Descripcion string    `json:"descripcion"`
	Estado      string    `json:"estado"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
