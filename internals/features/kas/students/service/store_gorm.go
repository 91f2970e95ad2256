package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"kaskelas_backend/internals/features/kas/students/model"
	"kaskelas_backend/internals/helpers/apperr"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) List(ctx context.Context) ([]model.StudentModel, error) {
	var rows []model.StudentModel
	err := s.DB.WithContext(ctx).
		Order("student_absen ASC, student_name ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) Get(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) {
	var row model.StudentModel
	if err := s.DB.WithContext(ctx).Where("student_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) Create(ctx context.Context, st *model.StudentModel) error {
	return mapPgErr(s.DB.WithContext(ctx).Create(st).Error)
}

func (s *GormStore) Save(ctx context.Context, st *model.StudentModel) error {
	return mapPgErr(s.DB.WithContext(ctx).Save(st).Error)
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.DB.WithContext(ctx).Where("student_id = ?", id).Delete(&model.StudentModel{})
	return res.RowsAffected > 0, res.Error
}

// 23505 unique_violation → Conflict (mis. kalau DBA menambah unique index absen)
func mapPgErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperr.Conflict(err, "Data siswa bentrok dengan data lain (%s)", pgErr.ConstraintName)
	}
	return err
}
