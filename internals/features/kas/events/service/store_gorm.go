package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kaskelas_backend/internals/features/kas/events/model"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) List(ctx context.Context) ([]model.EventModel, error) {
	var rows []model.EventModel
	err := s.DB.WithContext(ctx).Order("event_created_at DESC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) Get(ctx context.Context, id uuid.UUID) (*model.EventModel, error) {
	var ev model.EventModel
	err := s.DB.WithContext(ctx).Where("event_id = ?", id).Take(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *GormStore) Create(ctx context.Context, e *model.EventModel) error {
	return s.DB.WithContext(ctx).Create(e).Error
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_payment_event_id = ?", id).
			Delete(&model.EventPaymentModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("event_id = ?", id).Delete(&model.EventModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (s *GormStore) Payments(ctx context.Context, eventID uuid.UUID) ([]model.EventPaymentModel, error) {
	return listPayments(s.DB.WithContext(ctx), eventID)
}

func (s *GormStore) AllPayments(ctx context.Context) ([]model.EventPaymentModel, error) {
	var rows []model.EventPaymentModel
	err := s.DB.WithContext(ctx).Order("event_payment_date ASC, event_payment_created_at ASC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx TxStore) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

func listPayments(db *gorm.DB, eventID uuid.UUID) ([]model.EventPaymentModel, error) {
	var rows []model.EventPaymentModel
	err := db.Where("event_payment_event_id = ?", eventID).
		Order("event_payment_date ASC, event_payment_created_at ASC").
		Find(&rows).Error
	return rows, err
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) LockEvent(ctx context.Context, id uuid.UUID) (*model.EventModel, error) {
	var ev model.EventModel
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("event_id = ?", id).
		Take(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (t *gormTx) Payments(ctx context.Context, eventID uuid.UUID) ([]model.EventPaymentModel, error) {
	return listPayments(t.db.WithContext(ctx), eventID)
}

func (t *gormTx) AddPayment(ctx context.Context, p *model.EventPaymentModel) error {
	return t.db.WithContext(ctx).Create(p).Error
}

func (t *gormTx) SaveEvent(ctx context.Context, e *model.EventModel) error {
	return t.db.WithContext(ctx).Model(&model.EventModel{}).
		Where("event_id = ?", e.EventID).
		Updates(map[string]any{
			"event_status":             e.EventStatus,
			"event_completed_at":       e.EventCompletedAt,
			"event_surplus_payment_id": e.EventSurplusPaymentID,
		}).Error
}

func (t *gormTx) CreateLedgerPayment(ctx context.Context, p *paymentModel.PaymentModel) error {
	return t.db.WithContext(ctx).Create(p).Error
}
