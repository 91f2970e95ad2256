package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kaskelas_backend/internals/features/kas/expenses/model"
	"kaskelas_backend/internals/helpers/dbtime"
)

type CreateExpenseRequest struct {
	ExpenseAmount   int64  `json:"expense_amount"   validate:"required,gt=0"`
	ExpenseDate     string `json:"expense_date"     validate:"required,datetime=2006-01-02"`
	ExpensePurpose  string `json:"expense_purpose"  validate:"required,min=1,max=500"`
	ExpenseCategory string `json:"expense_category" validate:"omitempty,oneof=cleanliness event supplies other"`
	ExpenseApprover string `json:"expense_approver" validate:"omitempty,max=120"`
}

func (r CreateExpenseRequest) ToModel() (*m.ExpenseModel, error) {
	d, err := dbtime.ParseDate(r.ExpenseDate, dbtime.ClassLocation())
	if err != nil {
		return nil, err
	}
	return &m.ExpenseModel{
		ExpenseAmount:   r.ExpenseAmount,
		ExpenseDate:     d,
		ExpensePurpose:  strings.TrimSpace(r.ExpensePurpose),
		ExpenseCategory: m.ExpenseCategory(r.ExpenseCategory),
		ExpenseApprover: r.ExpenseApprover,
	}, nil
}

type ListExpenseQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=cleanliness event supplies other"`
	Q        string `query:"q"`
}

type ExpenseResponse struct {
	ExpenseID        uuid.UUID `json:"expense_id"`
	ExpenseAmount    int64     `json:"expense_amount"`
	ExpenseDate      string    `json:"expense_date"`
	ExpensePurpose   string    `json:"expense_purpose"`
	ExpenseCategory  string    `json:"expense_category"`
	ExpenseApprover  string    `json:"expense_approver"`
	ExpenseCreatedAt time.Time `json:"expense_created_at"`
}

func FromModel(x m.ExpenseModel) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        x.ExpenseID,
		ExpenseAmount:    x.ExpenseAmount,
		ExpenseDate:      dbtime.DateKey(x.ExpenseDate.In(dbtime.ClassLocation())),
		ExpensePurpose:   x.ExpensePurpose,
		ExpenseCategory:  string(x.ExpenseCategory),
		ExpenseApprover:  x.ExpenseApprover,
		ExpenseCreatedAt: x.ExpenseCreatedAt,
	}
}

func FromModels(list []m.ExpenseModel) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
