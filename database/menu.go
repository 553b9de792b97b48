package database

import (
	"context"

	"restaurant_manager/helper"
	"restaurant_manager/model"
)

func (s *Store) ListMenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.MenuItem{})
	if filter.Category != nil && *filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", *filter.Category)
	}
	return list[model.MenuItem](query, filter.Pagination, "category ASC, name ASC")
}

func (s *Store) GetMenuItem(ctx context.Context, id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *Store) CreateMenuItem(ctx context.Context, item *model.MenuItem) error {
	slug, err := helper.GenerateUniqueSlug(item.Name, s.slugTaken(ctx, &model.MenuItem{}))
	if err != nil {
		return err
	}
	item.Slug = slug
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateMenuItem(ctx context.Context, item *model.MenuItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteMenuItem(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.MenuItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
