package handler

import (
	"github.com/unerg-ais/reporting-system/internal/core/domain"
	"github.com/unerg-ais/reporting-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createReportRequest) ports.CreateReportInput {
	return ports.CreateReportInput{
		Solicitante: req.Solicitante,
		Categoria:   req.Categoria,
		Componente:  req.Componente,
		Descripcion: req.Descripcion,
	}
}

func toUpdateInput(req updateReportRequest) ports.UpdateReportInput {
	return ports.UpdateReportInput{
		Solicitante: req.Solicitante,
		Categoria:   req.Categoria,
		Componente:  req.Componente,
		Descripcion: req.Descripcion,
		Estado:      req.Estado,
	}
}

// --- Domain → HTTP response ---

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ID:          r.ID,
		Solicitante: r.Solicitante,
		Categoria:   r.Categoria,
		Componente:  r.Componente,
		Descripcion: r.Descripcion,
		Estado:      string(r.Estado),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func toListResponse(reports []*domain.Report) []reportResponse {
	out := make([]reportResponse, len(reports))
	for i, r := range reports {
		out[i] = toReportResponse(r)
	}
	return out
}
