package partrepo

import (
	"context"
	"errors"

	"burger/internal/core/domain/model/catalog"
	"burger/internal/pkg/errs"

	"gorm.io/gorm"
)

const insertBatchSize = 100

// GormPartRepository implements ports.PartRepository using GORM.
type GormPartRepository struct {
	db *gorm.DB
}

func NewGormPartRepository(db *gorm.DB) *GormPartRepository {
	return &GormPartRepository{db: db}
}

// ReplaceAll deletes every stored part and inserts parts. Run it inside a
// unit of work so readers never see an empty catalog.
func (r *GormPartRepository) ReplaceAll(ctx context.Context, parts []*catalog.Part) error {
	dtos := make([]PartDTO, 0, len(parts))
	for _, part := range parts {
		if err := part.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(part))
	}

	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PartDTO{}).Error; err != nil {
		return err
	}
	if len(dtos) == 0 {
		return nil
	}
	return db.CreateInBatches(&dtos, insertBatchSize).Error
}

// Get retrieves a part by catalog id.
func (r *GormPartRepository) Get(ctx context.Context, id string) (*catalog.Part, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto PartDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("part", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns stored parts ordered by id, filtered by category unless it is
// catalog.Unknown.
func (r *GormPartRepository) List(ctx context.Context, category catalog.Category) ([]*catalog.Part, error) {
	query := r.db.WithContext(ctx).Order("id")
	if category != catalog.Unknown {
		if err := category.Validate(); err != nil {
			return nil, err
		}
		query = query.Where("category = ?", category)
	}

	var dtos []PartDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	parts := make([]*catalog.Part, 0, len(dtos))
	for _, dto := range dtos {
		part, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}
