package service

import (
	"context"

	"gorm.io/gorm"

	"kaskelas_backend/internals/features/kas/reminders/model"
)

type GormLogStore struct {
	DB *gorm.DB
}

func NewGormLogStore(db *gorm.DB) *GormLogStore { return &GormLogStore{DB: db} }

func (s *GormLogStore) Create(ctx context.Context, l *model.ReminderLogModel) error {
	return s.DB.WithContext(ctx).Create(l).Error
}

func (s *GormLogStore) List(ctx context.Context, limit int) ([]model.ReminderLogModel, error) {
	var rows []model.ReminderLogModel
	err := s.DB.WithContext(ctx).
		Order("reminder_log_created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
