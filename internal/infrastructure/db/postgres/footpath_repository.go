package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

// FootpathRepository is the GORM-backed store for footpath assessments.
type FootpathRepository struct {
	db *gorm.DB
}

func NewFootpathRepository(db *gorm.DB) *FootpathRepository {
	return &FootpathRepository{db: db}
}

func (r *FootpathRepository) Create(ctx context.Context, a *domain.FootpathAssessment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (r *FootpathRepository) FindByID(ctx context.Context, id string) (*domain.FootpathAssessment, error) {
	var a domain.FootpathAssessment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("find assessment: %w", err)
	}
	return &a, nil
}

func (r *FootpathRepository) FindByLocation(ctx context.Context, locationID string) ([]domain.FootpathAssessment, error) {
	var out []domain.FootpathAssessment
	if err := r.db.WithContext(ctx).Where("location_id = ?", locationID).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return out, nil
}

func (r *FootpathRepository) Update(ctx context.Context, a *domain.FootpathAssessment) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	return nil
}

func (r *FootpathRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&domain.FootpathAssessment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	return nil
}

func (r *FootpathRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.FootpathAssessment{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}
