package portal

import "time"

// Report mirrors the API's transport view of an incident report.
type Report struct {
	ID          string    `json:"id"`
	Solicitante string    `json:"solicitante"`
	Categoria   string    `json:"categoria"`
	Componente  string    `json:"componente"`
	Descripcion string    `json:"descripcion"`
	Estado      string    `json:"estado"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateReportInput is the public submission payload.
type CreateReportInput struct {
	Solicitante string `json:"solicitante"`
	Categoria   string `json:"categoria"`
	Componente  string `json:"componente"`
	Descripcion string `json:"descripcion"`
}

// UpdateReportInput is a partial update payload: nil fields are omitted.
type UpdateReportInput struct {
	Solicitante *string `json:"solicitante,omitempty"`
	Categoria   *string `json:"categoria,omitempty"`
	Componente  *string `json:"componente,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Estado      *string `json:"estado,omitempty"`
}

// Session is the client-side record of a successful login.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type apiError struct {
	Error string `json:"error"`
}
