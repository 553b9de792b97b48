package database

import (
	"context"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

func (s *Store) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Transaction{})
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}
	return list[model.Transaction](query, filter.Pagination, "created_at DESC")
}

func (s *Store) GetTransaction(ctx context.Context, id uint) (*model.Transaction, error) {
	var txn model.Transaction
	if err := s.db.WithContext(ctx).First(&txn, id).Error; err != nil {
		return nil, translate(err)
	}
	return &txn, nil
}

func (s *Store) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	if txn.Status == "" {
		txn.Status = constants.STATUS_PENDING
	}
	return s.db.WithContext(ctx).Create(txn).Error
}

func (s *Store) UpdateTransactionStatus(ctx context.Context, id uint, status string) (*model.Transaction, error) {
	var txn model.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&txn, id).Error; err != nil {
			return translate(err)
		}
		txn.Status = status
		return tx.Model(&txn).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// CancelStaleTransactions cancels orders still pending since before.
func (s *Store) CancelStaleTransactions(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("status = ? AND created_at < ?", constants.STATUS_PENDING, before).
		Update("status", constants.STATUS_CANCELLED)
	return result.RowsAffected, result.Error
}
