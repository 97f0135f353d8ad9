package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
	"github.com/unerg-ais/reporting-system/internal/core/ports"
)

// NotificationQueue abstracts the async dispatcher that delivers the
// new-report email. Enqueue must never block the caller for long.
type NotificationQueue interface {
	Enqueue(report domain.Report)
}

type ReportService struct {
	repo   ports.ReportRepository
	queue  NotificationQueue
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, queue NotificationQueue, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, queue: queue, logger: logger}
}

// CreateReport validates the submission against the closed vocabulary,
// persists it with estado=Pendiente and server-side timestamps, and enqueues
// the notification. Notification delivery is fire-and-forget: it can complete
// after the response has been returned and its failure is never surfaced.
func (s *ReportService) CreateReport(ctx context.Context, input ports.CreateReportInput) (*domain.Report, error) {
	if err := domain.ValidateVocabulario(input.Categoria, input.Componente); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report := &domain.Report{
		Solicitante: input.Solicitante,
		Categoria:   input.Categoria,
		Componente:  input.Componente,
		Descripcion: input.Descripcion,
		Estado:      domain.StatusPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create report")
		return nil, err
	}

	s.logger.Info().
		Str("report_id", created.ID).
		Str("categoria", created.Categoria).
		Str("componente", created.Componente).
		Msg("report created")

	if s.queue != nil {
		s.queue.Enqueue(*created)
	}

	return created, nil
}

func (s *ReportService) ListReports(ctx context.Context) ([]*domain.Report, error) {
	return s.repo.List(ctx)
}

// UpdateReport applies a partial update: only non-nil input fields change.
// The merged record is re-validated against the vocabulary so an update can
// never move a report outside the closed categoria/componente table.
// Concurrent updates to the same id resolve last-writer-wins.
func (s *ReportService) UpdateReport(ctx context.Context, id string, input ports.UpdateReportInput) (*domain.Report, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Solicitante != nil {
		report.Solicitante = *input.Solicitante
	}
	if input.Categoria != nil {
		report.Categoria = *input.Categoria
	}
	if input.Componente != nil {
		report.Componente = *input.Componente
	}
	if input.Descripcion != nil {
		report.Descripcion = *input.Descripcion
	}
	if input.Estado != nil {
		estado := domain.ReportStatus(*input.Estado)
		if !estado.IsValid() {
			return nil, domain.ErrInvalidEstado
		}
		report.Estado = estado
	}

	if input.Categoria != nil || input.Componente != nil {
		if err := domain.ValidateVocabulario(report.Categoria, report.Componente); err != nil {
			return nil, err
		}
	}

	report.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, report)
	if err != nil {
		s.logger.Error().Err(err).Str("report_id", id).Msg("failed to update report")
		return nil, err
	}

	s.logger.Info().Str("report_id", id).Str("estado", string(updated.Estado)).Msg("report updated")
	return updated, nil
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("report_id", id).Msg("report deleted")
	return nil
}
