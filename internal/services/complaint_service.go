package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/civitas-io/denuncias-backend/internal/config"
	"github.com/civitas-io/denuncias-backend/internal/dto"
	"github.com/civitas-io/denuncias-backend/internal/models"
	"github.com/civitas-io/denuncias-backend/internal/repository"
	"github.com/civitas-io/denuncias-backend/internal/storage"
)

const createdAtLayout = "2006-01-02 15:04"

// ValidationError aggregates every missing or invalid request field so the
// client gets the full list in one response.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

type ComplaintService struct {
	repo  *repository.ComplaintRepository
	store storage.Store
	cfg   *config.Config
}

func NewComplaintService(repo *repository.ComplaintRepository, store storage.Store, cfg *config.Config) *ComplaintService {
	return &ComplaintService{repo: repo, store: store, cfg: cfg}
}

// Submit runs the whole submission: validation, image ingestion, record
// creation, view mapping. reporterEmail comes from the verified token; any
// reporter field in the request body is ignored.
//
// The image is persisted before the database insert, so a committed record
// always references an existing file. The reverse failure (image stored,
// insert failed) leaves an orphan, which is logged and accepted.
func (s *ComplaintService) Submit(ctx context.Context, reporterEmail string, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error) {
	var missing []string
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	if req.Photo == "" {
		missing = append(missing, "photo")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	data, err := storage.DecodePayload(req.Photo)
	if err != nil {
		return nil, err
	}

	filename := storage.NewImageName()
	if err := s.store.Save(ctx, filename, data); err != nil {
		return nil, err
	}

	complaint := models.Complaint{
		ReporterEmail: reporterEmail,
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ImageFilename: filename,
	}
	if err := s.repo.Create(&complaint); err != nil {
		slog.Error("complaint insert failed after image write, file orphaned",
			"action", "submit_complaint", "filename", filename, "error", err)
		return nil, err
	}

	return s.view(&complaint), nil
}

// List returns all complaints, most recent first.
func (s *ComplaintService) List() ([]dto.ComplaintResponse, error) {
	complaints, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	views := make([]dto.ComplaintResponse, len(complaints))
	for i := range complaints {
		views[i] = *s.view(&complaints[i])
	}
	return views, nil
}

func (s *ComplaintService) GetDetail(id uint) (*dto.ComplaintResponse, error) {
	complaint, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.view(complaint), nil
}

func (s *ComplaintService) view(c *models.Complaint) *dto.ComplaintResponse {
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	return &dto.ComplaintResponse{
		ID:            c.ID,
		ReporterEmail: c.ReporterEmail,
		Description:   c.Description,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		ImageURL:      base + "/uploads/" + c.ImageFilename,
		CreatedAt:     c.CreatedAt.Format(createdAtLayout),
	}
}
