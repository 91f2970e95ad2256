package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kaskelas_backend/internals/features/kas/payments/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) List(ctx context.Context) ([]model.PaymentModel, error) {
	var rows []model.PaymentModel
	err := s.DB.WithContext(ctx).
		Order("payment_date DESC, payment_created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) Create(ctx context.Context, p *model.PaymentModel) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *GormStore) CreateMany(ctx context.Context, ps []*model.PaymentModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range ps {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.DB.WithContext(ctx).Where("payment_id = ?", id).Delete(&model.PaymentModel{})
	return res.RowsAffected > 0, res.Error
}
