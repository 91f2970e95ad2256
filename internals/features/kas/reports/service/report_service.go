package service

import (
	"context"
	"fmt"
	"time"

	eventModel "kaskelas_backend/internals/features/kas/events/model"
	expenseModel "kaskelas_backend/internals/features/kas/expenses/model"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
	tunggakan "kaskelas_backend/internals/features/kas/tunggakan/service"
	"kaskelas_backend/internals/helpers/dbtime"
)

type StudentReader interface {
	List(ctx context.Context) ([]studentModel.StudentModel, error)
}

type PaymentReader interface {
	All(ctx context.Context) ([]paymentModel.PaymentModel, error)
}

type ExpenseReader interface {
	All(ctx context.Context) ([]expenseModel.ExpenseModel, error)
}

type EventReader interface {
	AllEvents(ctx context.Context) ([]eventModel.EventModel, error)
	AllPayments(ctx context.Context) ([]eventModel.EventPaymentModel, error)
}

type Service struct {
	students StudentReader
	payments PaymentReader
	expenses ExpenseReader
	events   EventReader
	settings settingService.Reader
	cache    Cache
}

func NewService(students StudentReader, payments PaymentReader, expenses ExpenseReader, events EventReader, settings settingService.Reader, cache Cache) *Service {
	if cache == nil {
		cache = noCache{}
	}
	return &Service{
		students: students,
		payments: payments,
		expenses: expenses,
		events:   events,
		settings: settings,
		cache:    cache,
	}
}

type dataset struct {
	settings      settingService.Settings
	currentWeek   int
	students      []studentModel.StudentModel
	payments      []paymentModel.PaymentModel
	expenses      []expenseModel.ExpenseModel
	events        []eventModel.EventModel
	eventPayments []eventModel.EventPaymentModel
}

func (s *Service) load(ctx context.Context, now time.Time, withEvents bool) (*dataset, error) {
	var (
		ds  dataset
		err error
	)
	if ds.settings, err = s.settings.Get(ctx); err != nil {
		return nil, err
	}
	ds.currentWeek = tunggakan.CurrentWeek(now, ds.settings)
	if ds.students, err = s.students.List(ctx); err != nil {
		return nil, err
	}
	if ds.payments, err = s.payments.All(ctx); err != nil {
		return nil, err
	}
	if ds.expenses, err = s.expenses.All(ctx); err != nil {
		return nil, err
	}
	if withEvents {
		if ds.events, err = s.events.AllEvents(ctx); err != nil {
			return nil, err
		}
		if ds.eventPayments, err = s.events.AllPayments(ctx); err != nil {
			return nil, err
		}
	}
	return &ds, nil
}

// cached: key selalu menyertakan tanggal now karena semua laporan bergantung "hari ini".
func cached[T any](ctx context.Context, c Cache, key string, load func() (T, error)) (T, error) {
	var out T
	if c.Get(ctx, key, &out) {
		return out, nil
	}
	out, err := load()
	if err != nil {
		return out, err
	}
	c.Set(ctx, key, out)
	return out, nil
}

func cacheKey(name string, now time.Time, args ...any) string {
	k := name + ":" + dbtime.DateKey(now)
	for _, a := range args {
		k += fmt.Sprintf(":%v", a)
	}
	return k
}

func (s *Service) Dashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	return cached(ctx, s.cache, cacheKey("dashboard", now), func() (Dashboard, error) {
		ds, err := s.load(ctx, now, true)
		if err != nil {
			return Dashboard{}, err
		}
		return DashboardSummary(ds.students, ds.payments, ds.expenses, ds.events, ds.eventPayments, ds.settings, ds.currentWeek), nil
	})
}

func (s *Service) IncomeExpense(ctx context.Context, now time.Time, windowDays int) ([]DailyPoint, error) {
	return cached(ctx, s.cache, cacheKey("income-expense", now, windowDays), func() ([]DailyPoint, error) {
		ds, err := s.load(ctx, now, false)
		if err != nil {
			return nil, err
		}
		return IncomeExpenseSeries(ds.payments, ds.expenses, now, windowDays), nil
	})
}

func (s *Service) ExpenseCategories(ctx context.Context, now time.Time, windowDays int) ([]CategoryTotal, error) {
	return cached(ctx, s.cache, cacheKey("expense-categories", now, windowDays), func() ([]CategoryTotal, error) {
		ds, err := s.load(ctx, now, false)
		if err != nil {
			return nil, err
		}
		return ExpenseByCategory(ds.expenses, now, windowDays), nil
	})
}

func (s *Service) Weekly(ctx context.Context, now time.Time) ([]WeekTotal, error) {
	return cached(ctx, s.cache, cacheKey("weekly", now), func() ([]WeekTotal, error) {
		ds, err := s.load(ctx, now, false)
		if err != nil {
			return nil, err
		}
		return WeeklyTotals(ds.payments, ds.currentWeek), nil
	})
}

func (s *Service) Heatmap(ctx context.Context, now time.Time) (Heatmap, error) {
	return cached(ctx, s.cache, cacheKey("heatmap", now), func() (Heatmap, error) {
		ds, err := s.load(ctx, now, false)
		if err != nil {
			return Heatmap{}, err
		}
		return PaymentHeatmap(ds.students, ds.payments, ds.currentWeek), nil
	})
}

func (s *Service) DebtTrend(ctx context.Context, now time.Time) ([]DebtPoint, error) {
	return cached(ctx, s.cache, cacheKey("debt-trend", now), func() ([]DebtPoint, error) {
		ds, err := s.load(ctx, now, false)
		if err != nil {
			return nil, err
		}
		return DebtTrend(ds.students, ds.payments, ds.settings, ds.currentWeek), nil
	})
}
