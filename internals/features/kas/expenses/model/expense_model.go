package model

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseCategory string

const (
	CategoryCleanliness ExpenseCategory = "cleanliness"
	CategoryEvent       ExpenseCategory = "event"
	CategorySupplies    ExpenseCategory = "supplies"
	CategoryOther       ExpenseCategory = "other"
)

var AllCategories = []ExpenseCategory{CategoryCleanliness, CategoryEvent, CategorySupplies, CategoryOther}

func (c ExpenseCategory) Valid() bool {
	for _, x := range AllCategories {
		if x == c {
			return true
		}
	}
	return false
}

type ExpenseModel struct {
	ExpenseID uuid.UUID `gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`

	ExpenseAmount   int64           `gorm:"column:expense_amount;not null;check:expense_amount > 0" json:"expense_amount"`
	ExpenseDate     time.Time       `gorm:"column:expense_date;not null;index"                      json:"expense_date"`
	ExpensePurpose  string          `gorm:"column:expense_purpose;type:text;not null"               json:"expense_purpose"`
	ExpenseCategory ExpenseCategory `gorm:"column:expense_category;type:varchar(16);not null;index" json:"expense_category"`
	ExpenseApprover string          `gorm:"column:expense_approver;type:varchar(120)"               json:"expense_approver"`

	ExpenseCreatedAt time.Time `gorm:"column:expense_created_at;autoCreateTime" json:"expense_created_at"`
}

func (ExpenseModel) TableName() string { return "expenses" }
