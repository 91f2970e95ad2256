package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaskelas_backend/internals/features/kas/expenses/model"
	"kaskelas_backend/internals/helpers/apperr"
)

type memStore struct{ rows []model.ExpenseModel }

func (m *memStore) List(ctx context.Context) ([]model.ExpenseModel, error) { return m.rows, nil }

func (m *memStore) Create(ctx context.Context, e *model.ExpenseModel) error {
	e.ExpenseID = uuid.New()
	m.rows = append(m.rows, *e)
	return nil
}

func (m *memStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range m.rows {
		if m.rows[i].ExpenseID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func d(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestAddDefaultsAndValidates(t *testing.T) {
	svc := NewService(&memStore{}, nil)
	ctx := context.Background()

	e := &model.ExpenseModel{ExpenseAmount: 12000, ExpenseDate: d("2025-11-02"), ExpensePurpose: " Sapu "}
	require.NoError(t, svc.Add(ctx, e))
	assert.Equal(t, model.CategoryOther, e.ExpenseCategory)
	assert.Equal(t, "Sapu", e.ExpensePurpose)

	err := svc.Add(ctx, &model.ExpenseModel{ExpenseAmount: 0, ExpenseDate: d("2025-11-02"), ExpensePurpose: "x"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	err = svc.Add(ctx, &model.ExpenseModel{ExpenseAmount: 10, ExpenseDate: d("2025-11-02"), ExpensePurpose: "x", ExpenseCategory: "makan"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestFilterExpenses(t *testing.T) {
	rows := []model.ExpenseModel{
		{ExpenseAmount: 1, ExpenseDate: d("2025-11-01"), ExpensePurpose: "Sapu", ExpenseCategory: model.CategoryCleanliness},
		{ExpenseAmount: 2, ExpenseDate: d("2025-11-03"), ExpensePurpose: "Spidol", ExpenseCategory: model.CategorySupplies, ExpenseApprover: "Bu Rina"},
		{ExpenseAmount: 3, ExpenseDate: d("2025-11-09"), ExpensePurpose: "Konsumsi", ExpenseCategory: model.CategoryEvent},
	}
	from, to := d("2025-11-01"), d("2025-11-03")

	got := FilterExpenses(rows, Filter{From: &from, To: &to})
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ExpenseAmount)

	assert.Len(t, FilterExpenses(rows, Filter{Category: model.CategoryEvent}), 1)
	assert.Len(t, FilterExpenses(rows, Filter{Search: "rina"}), 1)
}

func TestRemoveMissing(t *testing.T) {
	svc := NewService(&memStore{}, nil)
	assert.True(t, errors.Is(svc.Remove(context.Background(), uuid.New()), apperr.ErrNotFound))
}
