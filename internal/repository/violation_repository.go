package repository

import (
	"context"

	"github.com/ostrovskiy/construction-supervision-api/internal/database"
	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/ostrovskiy/construction-supervision-api/internal/utils"
	"gorm.io/gorm"
)

// GormViolationRepository is a GORM implementation of ViolationRepository
type GormViolationRepository struct {
	db *gorm.DB
}

// NewViolationRepository creates a new ViolationRepository
func NewViolationRepository(db *gorm.DB) ViolationRepository {
	return &GormViolationRepository{db: db}
}

// Create inserts a new violation. The store's foreign key constraint
// rejects rows that reference a missing construction object.
func (r *GormViolationRepository) Create(ctx context.Context, violation *models.Violation) error {
	return r.db.WithContext(ctx).Create(violation).Error
}

// FindByID finds a violation by ID
func (r *GormViolationRepository) FindByID(ctx context.Context, id uint64) (*models.Violation, error) {
	var violation models.Violation
	if err := r.db.WithContext(ctx).First(&violation, id).Error; err != nil {
		return nil, err
	}
	return &violation, nil
}

// ListByContractor returns violations with a matching contractor_id
func (r *GormViolationRepository) ListByContractor(ctx context.Context, contractorID uint64, page *utils.PaginationParams) ([]models.Violation, error) {
	return r.list(ctx, "contractor_id = ?", contractorID, page)
}

// ListByConstructionObject returns violations recorded on a site
func (r *GormViolationRepository) ListByConstructionObject(ctx context.Context, constructionObjectID uint64, page *utils.PaginationParams) ([]models.Violation, error) {
	return r.list(ctx, "construction_object_id = ?", constructionObjectID, page)
}

func (r *GormViolationRepository) list(ctx context.Context, cond string, value uint64, page *utils.PaginationParams) ([]models.Violation, error) {
	var violations []models.Violation
	query := r.db.WithContext(ctx).Where(cond, value)
	if page != nil {
		query = query.Scopes(database.Paginate(*page))
	}
	if err := query.Find(&violations).Error; err != nil {
		return nil, err
	}
	return violations, nil
}

// UpdateStatus sets the resolution status in place. Unknown ids update
// zero rows and return no error; the service layer turns that into an
// explicit not-found before calling here.
func (r *GormViolationRepository) UpdateStatus(ctx context.Context, id uint64, status models.ResolutionStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Violation{}).
		Where("id = ?", id).
		Update("resolution_status", status).Error
}

// Delete soft deletes a violation; unknown ids are a no-op
func (r *GormViolationRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Violation{}, id).Error
}
