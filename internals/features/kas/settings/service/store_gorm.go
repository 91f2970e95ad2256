package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kaskelas_backend/internals/features/kas/settings/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) All(ctx context.Context) ([]model.SettingModel, error) {
	var rows []model.SettingModel
	err := s.DB.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (s *GormStore) Upsert(ctx context.Context, rows []model.SettingModel) error {
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_updated_at"}),
		}).
		Create(&rows).Error
}
