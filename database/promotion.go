package database

import (
	"context"
	"errors"
	"time"

	"restaurant_manager/helper"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// ListActivePromotions returns promotions with isActive=true, newest first.
func (s *Store) ListActivePromotions(ctx context.Context, p model.Pagination) ([]model.Promotion, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Promotion{}).Where("is_active = ?", true)
	return list[model.Promotion](query, p, "created_at DESC")
}

// GetPromotion finds a promotion by id whether or not it is active.
func (s *Store) GetPromotion(ctx context.Context, id uint) (*model.Promotion, error) {
	var promo model.Promotion
	if err := s.db.WithContext(ctx).First(&promo, id).Error; err != nil {
		return nil, translate(err)
	}
	return &promo, nil
}

func (s *Store) FindPromotionByCode(ctx context.Context, code string) (*model.Promotion, error) {
	var promo model.Promotion
	err := s.db.WithContext(ctx).Where("code = ?", helper.NormalizeCode(code)).First(&promo).Error
	if err != nil {
		return nil, translate(err)
	}
	return &promo, nil
}

func (s *Store) CreatePromotion(ctx context.Context, promo *model.Promotion) error {
	promo.Code = helper.NormalizeCode(promo.Code)
	err := s.db.WithContext(ctx).Create(promo).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCode
	}
	return err
}

func (s *Store) UpdatePromotion(ctx context.Context, promo *model.Promotion) error {
	promo.Code = helper.NormalizeCode(promo.Code)
	err := s.db.WithContext(ctx).Save(promo).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCode
	}
	return err
}

// DeactivatePromotion is the soft delete: the row stays readable by id.
func (s *Store) DeactivatePromotion(ctx context.Context, id uint) (*model.Promotion, error) {
	var promo model.Promotion
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&promo, id).Error; err != nil {
			return translate(err)
		}
		promo.IsActive = false
		return tx.Model(&promo).Update("is_active", false).Error
	})
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (s *Store) DeactivateExpiredPromotions(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Promotion{}).
		Where("is_active = ? AND valid_until < ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
