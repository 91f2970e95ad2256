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

	"kaskelas_backend/internals/features/kas/events/model"
	"kaskelas_backend/internals/features/kas/events/service"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
)

type fakeStore struct {
	events   map[uuid.UUID]model.EventModel
	payments []model.EventPaymentModel
	ledger   []paymentModel.PaymentModel
}

func (f *fakeStore) List(ctx context.Context) ([]model.EventModel, error) {
	out := make([]model.EventModel, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, id uuid.UUID) (*model.EventModel, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeStore) Create(ctx context.Context, e *model.EventModel) error {
	e.EventID = uuid.New()
	f.events[e.EventID] = *e
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.events[id]
	delete(f.events, id)
	return ok, nil
}

func (f *fakeStore) Payments(ctx context.Context, id uuid.UUID) ([]model.EventPaymentModel, error) {
	var out []model.EventPaymentModel
	for _, p := range f.payments {
		if p.EventPaymentEventID == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) AllPayments(ctx context.Context) ([]model.EventPaymentModel, error) {
	return f.payments, nil
}

func (f *fakeStore) Transaction(ctx context.Context, fn func(tx service.TxStore) error) error {
	return fn(f)
}

func (f *fakeStore) LockEvent(ctx context.Context, id uuid.UUID) (*model.EventModel, error) {
	return f.Get(ctx, id)
}

func (f *fakeStore) AddPayment(ctx context.Context, p *model.EventPaymentModel) error {
	p.EventPaymentID = uuid.New()
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakeStore) SaveEvent(ctx context.Context, e *model.EventModel) error {
	f.events[e.EventID] = *e
	return nil
}

func (f *fakeStore) CreateLedgerPayment(ctx context.Context, p *paymentModel.PaymentModel) error {
	p.PaymentID = uuid.New()
	f.ledger = append(f.ledger, *p)
	return nil
}

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

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestEventLifecycleOverHTTP(t *testing.T) {
	ani := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Ani", StudentAbsen: 1, StudentStatus: studentModel.StudentActive}
	budi := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi", StudentAbsen: 2, StudentStatus: studentModel.StudentActive}
	store := &fakeStore{events: map[uuid.UUID]model.EventModel{}}
	engine := service.NewEngine(store, fakeStudents{rows: []studentModel.StudentModel{ani, budi}}, fakeSettings{}, nil)
	ctl := NewEventController(engine)

	app := fiber.New()
	g := app.Group("/events")
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Post("/:id/payments", ctl.RecordPayment)
	g.Post("/:id/complete", ctl.Complete)

	code, env := doJSON(t, app, "POST", "/events", `{"event_name":"Bukber","event_target_amount":100000,"event_start_date":"2025-11-01","event_end_date":"2025-11-30"}`)
	require.Equal(t, fiber.StatusCreated, code, env.Message)
	var created struct {
		EventID    uuid.UUID `json:"event_id"`
		PerStudent int64     `json:"event_per_student_amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(50000), created.PerStudent)

	base := "/events/" + created.EventID.String()
	code, _ = doJSON(t, app, "POST", base+"/payments", `{"student_id":"`+ani.StudentID.String()+`","amount":130000,"date":"2025-11-05"}`)
	require.Equal(t, fiber.StatusCreated, code)

	code, env = doJSON(t, app, "GET", base, "")
	require.Equal(t, fiber.StatusOK, code)
	var summary struct {
		TotalCollected int64 `json:"total_collected"`
		Unpaid         []struct {
			StudentID uuid.UUID `json:"student_id"`
		} `json:"unpaid_students"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, int64(130000), summary.TotalCollected)
	require.Len(t, summary.Unpaid, 1)
	assert.Equal(t, budi.StudentID, summary.Unpaid[0].StudentID)

	code, env = doJSON(t, app, "POST", base+"/complete", "")
	require.Equal(t, fiber.StatusOK, code)
	var done struct {
		SurplusAmount int64 `json:"surplus_amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &done))
	assert.Equal(t, int64(30000), done.SurplusAmount)

	code, env = doJSON(t, app, "POST", base+"/complete", "")
	assert.Equal(t, fiber.StatusConflict, code)
	assert.False(t, env.Success)
	assert.Len(t, store.ledger, 1)

	code, _ = doJSON(t, app, "POST", base+"/payments", `{"student_id":"`+budi.StudentID.String()+`","amount":5000}`)
	assert.Equal(t, fiber.StatusConflict, code)
}

func TestCreateEventRejectsBadPayload(t *testing.T) {
	store := &fakeStore{events: map[uuid.UUID]model.EventModel{}}
	ctl := NewEventController(service.NewEngine(store, fakeStudents{}, fakeSettings{}, nil))
	app := fiber.New()
	app.Post("/events", ctl.Create)

	code, env := doJSON(t, app, "POST", "/events", `{"event_name":"","event_target_amount":0}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Empty(t, store.events)
}
