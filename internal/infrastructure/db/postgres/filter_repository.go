package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

// FilterRepository is the GORM-backed store for category filters.
type FilterRepository struct {
	db *gorm.DB
}

func NewFilterRepository(db *gorm.DB) *FilterRepository {
	return &FilterRepository{db: db}
}

func (r *FilterRepository) Create(ctx context.Context, f *domain.Filter) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("insert filter: %w", err)
	}
	return nil
}

func (r *FilterRepository) FindAll(ctx context.Context) ([]domain.Filter, error) {
	var filters []domain.Filter
	if err := r.db.WithContext(ctx).Find(&filters).Error; err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	return filters, nil
}

func (r *FilterRepository) FindByID(ctx context.Context, id string) (*domain.Filter, error) {
	var f domain.Filter
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFilterNotFound
		}
		return nil, fmt.Errorf("find filter: %w", err)
	}
	return &f, nil
}

func (r *FilterRepository) Update(ctx context.Context, f *domain.Filter) error {
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		return fmt.Errorf("update filter: %w", err)
	}
	return nil
}

func (r *FilterRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Filter{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete filter: %w", err)
	}
	return nil
}
