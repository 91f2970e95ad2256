package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaskelas_backend/internals/features/kas/payments/model"
	"kaskelas_backend/internals/features/kas/payments/service"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
)

type fakePayments struct{ rows []model.PaymentModel }

func (f *fakePayments) List(ctx context.Context) ([]model.PaymentModel, error) { return f.rows, nil }

func (f *fakePayments) Create(ctx context.Context, p *model.PaymentModel) error {
	p.PaymentID = uuid.New()
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakePayments) CreateMany(ctx context.Context, ps []*model.PaymentModel) error {
	for _, p := range ps {
		_ = f.Create(ctx, p)
	}
	return nil
}

func (f *fakePayments) Delete(ctx context.Context, id uuid.UUID) (bool, error) { return false, nil }

type fakeStudents struct{ rows []studentModel.StudentModel }

func (f fakeStudents) List(ctx context.Context) ([]studentModel.StudentModel, error) { return f.rows, nil }

func (f fakeStudents) Get(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error) {
	for i := range f.rows {
		if f.rows[i].StudentID == id {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

type fakeSettings struct{}

func (fakeSettings) Get(context.Context) (settingService.Settings, error) {
	return settingService.Settings{StartDate: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC), WeeklyAmount: 2000, LateThreshold: 4}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func post(t *testing.T, app *fiber.App, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestBulkCreateRejectsWholeBatch(t *testing.T) {
	ani := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Ani", StudentAbsen: 1, StudentStatus: studentModel.StudentActive}
	budi := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi", StudentAbsen: 2, StudentStatus: studentModel.StudentActive}
	store := &fakePayments{}
	ledger := service.NewLedger(store, fakeStudents{rows: []studentModel.StudentModel{ani, budi}}, fakeSettings{}, nil)

	app := fiber.New()
	app.Post("/payments/bulk", NewPaymentController(ledger).BulkCreate)

	body := `{"payment_date":"2025-11-03","payment_amount":2000,"student_ids":["` +
		ani.StudentID.String() + `","` + uuid.NewString() + `","` + budi.StudentID.String() + `"]}`
	code, env := post(t, app, "/payments/bulk", body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Empty(t, store.rows)

	body = `{"payment_date":"2025-11-03","payment_amount":2000,"payment_method":"transfer","student_ids":["` +
		ani.StudentID.String() + `","` + budi.StudentID.String() + `"]}`
	code, env = post(t, app, "/payments/bulk", body)
	require.Equal(t, fiber.StatusCreated, code, env.Message)
	assert.True(t, env.Success)

	var created []struct {
		PaymentID uuid.UUID `json:"payment_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Len(t, created, 2)
	assert.Len(t, store.rows, 2)
}
