package repository

import (
	"context"

	"github.com/ostrovskiy/construction-supervision-api/internal/database"
	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/ostrovskiy/construction-supervision-api/internal/utils"
	"gorm.io/gorm"
)

// GormConstructionObjectRepository is a GORM implementation of ConstructionObjectRepository
type GormConstructionObjectRepository struct {
	db *gorm.DB
}

// NewConstructionObjectRepository creates a new ConstructionObjectRepository
func NewConstructionObjectRepository(db *gorm.DB) ConstructionObjectRepository {
	return &GormConstructionObjectRepository{db: db}
}

// Create inserts a new construction object
func (r *GormConstructionObjectRepository) Create(ctx context.Context, obj *models.ConstructionObject) error {
	return r.db.WithContext(ctx).Create(obj).Error
}

// FindByID finds a construction object by ID
func (r *GormConstructionObjectRepository) FindByID(ctx context.Context, id uint64) (*models.ConstructionObject, error) {
	var obj models.ConstructionObject
	if err := r.db.WithContext(ctx).First(&obj, id).Error; err != nil {
		return nil, err
	}
	return &obj, nil
}

// List returns all construction objects
func (r *GormConstructionObjectRepository) List(ctx context.Context, page *utils.PaginationParams) ([]models.ConstructionObject, error) {
	var objs []models.ConstructionObject
	query := r.db.WithContext(ctx)
	if page != nil {
		query = query.Scopes(database.Paginate(*page))
	}
	if err := query.Find(&objs).Error; err != nil {
		return nil, err
	}
	return objs, nil
}
