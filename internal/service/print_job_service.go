package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"docuprint/internal/apperror"
	"docuprint/internal/domain"
	"docuprint/internal/repository"
)

// PrintJobService tracks resident print jobs through their status
// lifecycle. Residents create and list their own jobs; admins see and
// update jobs from residents of their communities.
type PrintJobService interface {
	Create(ctx context.Context, residentID string, req CreatePrintJobRequest) (*domain.PrintJob, error)
	ListForResident(ctx context.Context, residentID string) ([]domain.PrintJob, error)
	ListForAdmin(ctx context.Context, adminID string) ([]domain.PrintJob, error)
	UpdateStatus(ctx context.Context, jobID, adminID, status string) (*domain.PrintJob, error)
}

// CreatePrintJobRequest is the job submission payload. The resident id
// always comes from the session, never from the body.
type CreatePrintJobRequest struct {
	Title     string `json:"title" validate:"required"`
	Pages     int    `json:"pages" validate:"required,gt=0"`
	Copies    int    `json:"copies" validate:"required,gt=0"`
	ColorMode string `json:"colorMode" validate:"required,oneof=mono color"`
	PaperSize string `json:"paperSize" validate:"required,oneof=A4 A3 Letter"`
	Notes     string `json:"notes"`
	FileName  string `json:"fileName" validate:"required"`
	FileSize  int64  `json:"fileSize" validate:"required,gt=0,lte=20971520"`
}

type printJobService struct {
	jobs      repository.PrintJobsRepo
	residents repository.ResidentsRepo
	admins    repository.AdminsRepo
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

func NewPrintJobService(
	jobs repository.PrintJobsRepo,
	residents repository.ResidentsRepo,
	admins repository.AdminsRepo,
	logger *zap.Logger,
) PrintJobService {
	return &printJobService{
		jobs:      jobs,
		residents: residents,
		admins:    admins,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *printJobService) Create(ctx context.Context, residentID string, req CreatePrintJobRequest) (*domain.PrintJob, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.FromValidation(err)
	}

	job := &domain.PrintJob{
		ID:         uuid.NewString(),
		ResidentID: residentID,
		Title:      req.Title,
		Pages:      req.Pages,
		Copies:     req.Copies,
		ColorMode:  req.ColorMode,
		PaperSize:  req.PaperSize,
		Notes:      req.Notes,
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		Status:     domain.JobQueued,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("Print job created",
		zap.String("job_id", job.ID),
		zap.String("resident_id", residentID),
		zap.Int("pages", job.Pages),
	)
	return job, nil
}

func (s *printJobService) ListForResident(ctx context.Context, residentID string) ([]domain.PrintJob, error) {
	return s.jobs.ListByResident(ctx, residentID)
}

// ListForAdmin resolves every job's resident to its community and
// keeps the jobs from communities assigned to the admin.
func (s *printJobService) ListForAdmin(ctx context.Context, adminID string) ([]domain.PrintJob, error) {
	admin, err := s.admins.Get(ctx, adminID)
	if err != nil {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.PrintJob
	for _, job := range jobs {
		res, err := s.residents.Get(ctx, job.ResidentID)
		if err != nil {
			continue
		}
		if admin.OwnsCommunity(res.CommunityID) {
			out = append(out, job)
		}
	}
	return out, nil
}

func (s *printJobService) UpdateStatus(ctx context.Context, jobID, adminID, status string) (*domain.PrintJob, error) {
	if !domain.ValidJobStatus(status) {
		return nil, apperror.Validation("status %q is not a valid print job status", status)
	}

	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound("print job %s not found", jobID)
		}
		return nil, err
	}

	admin, err := s.admins.Get(ctx, adminID)
	if err != nil {
		return nil, apperror.Forbidden("admin is not assigned to this community")
	}
	res, err := s.residents.Get(ctx, job.ResidentID)
	if err != nil {
		return nil, apperror.NotFound("print job %s not found", jobID)
	}
	if !admin.OwnsCommunity(res.CommunityID) {
		return nil, apperror.Forbidden("admin is not assigned to this community")
	}

	// Transitions are unconstrained: any status may replace any other.
	updated, err := s.jobs.UpdateStatus(ctx, jobID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Print job status updated",
		zap.String("job_id", jobID),
		zap.String("admin_id", adminID),
		zap.String("status", status),
	)
	return updated, nil
}
