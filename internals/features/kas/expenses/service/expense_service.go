package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"kaskelas_backend/internals/features/kas/expenses/model"
	"kaskelas_backend/internals/helpers/apperr"
	"kaskelas_backend/internals/helpers/dbtime"
)

type Store interface {
	List(ctx context.Context) ([]model.ExpenseModel, error)
	Create(ctx context.Context, e *model.ExpenseModel) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Service struct {
	store Store
	inv   Invalidator
}

func NewService(store Store, inv Invalidator) *Service {
	return &Service{store: store, inv: inv}
}

type Filter struct {
	Category model.ExpenseCategory
	From     *time.Time
	To       *time.Time
	Search   string
}

func (s *Service) All(ctx context.Context) ([]model.ExpenseModel, error) {
	return s.store.List(ctx)
}

func (s *Service) List(ctx context.Context, f Filter) ([]model.ExpenseModel, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterExpenses(rows, f), nil
}

// FilterExpenses: kategori, rentang tanggal inklusif, cari di keperluan/penyetuju.
func FilterExpenses(rows []model.ExpenseModel, f Filter) []model.ExpenseModel {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.ExpenseModel, 0, len(rows))
	for _, e := range rows {
		if f.Category != "" && e.ExpenseCategory != f.Category {
			continue
		}
		if f.From != nil && e.ExpenseDate.Before(dbtime.StartOfDay(*f.From)) {
			continue
		}
		if f.To != nil && e.ExpenseDate.After(dbtime.EndOfDay(*f.To)) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.ExpensePurpose), q) && !strings.Contains(strings.ToLower(e.ExpenseApprover), q) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExpenseDate.After(out[j].ExpenseDate) })
	return out
}

func (s *Service) Add(ctx context.Context, e *model.ExpenseModel) error {
	if e.ExpenseAmount <= 0 {
		return apperr.Validation("expense_amount", "nominal pengeluaran harus lebih dari 0")
	}
	if e.ExpenseDate.IsZero() {
		return apperr.Validation("expense_date", "tanggal pengeluaran wajib diisi")
	}
	e.ExpensePurpose = strings.TrimSpace(e.ExpensePurpose)
	if e.ExpensePurpose == "" {
		return apperr.Validation("expense_purpose", "keperluan wajib diisi")
	}
	if e.ExpenseCategory == "" {
		e.ExpenseCategory = model.CategoryOther
	}
	if !e.ExpenseCategory.Valid() {
		return apperr.Validation("expense_category", "kategori tidak dikenal: %s", e.ExpenseCategory)
	}
	e.ExpenseApprover = strings.TrimSpace(e.ExpenseApprover)

	if err := s.store.Create(ctx, e); err != nil {
		return err
	}
	if s.inv != nil {
		s.inv.Invalidate(ctx)
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Pengeluaran tidak ditemukan")
	}
	if s.inv != nil {
		s.inv.Invalidate(ctx)
	}
	return nil
}
