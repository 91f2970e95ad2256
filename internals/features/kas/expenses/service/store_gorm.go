package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kaskelas_backend/internals/features/kas/expenses/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) List(ctx context.Context) ([]model.ExpenseModel, error) {
	var rows []model.ExpenseModel
	err := s.DB.WithContext(ctx).Order("expense_date DESC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) Create(ctx context.Context, e *model.ExpenseModel) error {
	return s.DB.WithContext(ctx).Create(e).Error
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.DB.WithContext(ctx).Where("expense_id = ?", id).Delete(&model.ExpenseModel{})
	return res.RowsAffected > 0, res.Error
}
