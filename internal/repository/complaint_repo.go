package repository

import (
	"errors"
	"fmt"

	"github.com/civitas-io/denuncias-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrImageRequired       = errors.New("image filename is required")
	ErrComplaintNotFound   = errors.New("complaint not found")
)

// ComplaintRepository owns complaint rows. Records are insert-only; the
// single-row insert is the storage engine's atomicity boundary.
type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create inserts a complaint. The caller has already persisted the image the
// filename points at.
func (r *ComplaintRepository) Create(complaint *models.Complaint) error {
	if complaint.Description == "" {
		return ErrDescriptionRequired
	}
	if complaint.ImageFilename == "" {
		return ErrImageRequired
	}
	if err := r.db.Create(complaint).Error; err != nil {
		return fmt.Errorf("failed to save complaint: %w", err)
	}
	return nil
}

// ListAll returns every complaint, most recent first.
func (r *ComplaintRepository) ListAll() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := r.db.Order("id DESC").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

func (r *ComplaintRepository) GetByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.First(&complaint, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to fetch complaint: %w", err)
	}
	return &complaint, nil
}
