package details

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"kaskelas_backend/internals/configs"
	eventCtl "kaskelas_backend/internals/features/kas/events/controller"
	eventRoute "kaskelas_backend/internals/features/kas/events/route"
	eventService "kaskelas_backend/internals/features/kas/events/service"
	expenseCtl "kaskelas_backend/internals/features/kas/expenses/controller"
	expenseRoute "kaskelas_backend/internals/features/kas/expenses/route"
	expenseService "kaskelas_backend/internals/features/kas/expenses/service"
	paymentCtl "kaskelas_backend/internals/features/kas/payments/controller"
	paymentRoute "kaskelas_backend/internals/features/kas/payments/route"
	paymentService "kaskelas_backend/internals/features/kas/payments/service"
	reminderCtl "kaskelas_backend/internals/features/kas/reminders/controller"
	reminderRoute "kaskelas_backend/internals/features/kas/reminders/route"
	reminderService "kaskelas_backend/internals/features/kas/reminders/service"
	reportCtl "kaskelas_backend/internals/features/kas/reports/controller"
	reportRoute "kaskelas_backend/internals/features/kas/reports/route"
	reportService "kaskelas_backend/internals/features/kas/reports/service"
	settingCtl "kaskelas_backend/internals/features/kas/settings/controller"
	settingRoute "kaskelas_backend/internals/features/kas/settings/route"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentCtl "kaskelas_backend/internals/features/kas/students/controller"
	studentRoute "kaskelas_backend/internals/features/kas/students/route"
	studentService "kaskelas_backend/internals/features/kas/students/service"
	tunggakanCtl "kaskelas_backend/internals/features/kas/tunggakan/controller"
	tunggakanRoute "kaskelas_backend/internals/features/kas/tunggakan/route"
	tunggakanService "kaskelas_backend/internals/features/kas/tunggakan/service"
	"kaskelas_backend/internals/helpers/dbtime"
	"kaskelas_backend/internals/middlewares"
)

// KasModule: semua service kas yang sudah dirangkai. Dipakai route & scheduler.
type KasModule struct {
	Cache     *reportService.RedisCache
	Settings  *settingService.Service
	Students  *studentService.Service
	Ledger    *paymentService.Ledger
	Expenses  *expenseService.Service
	Events    *eventService.Engine
	Tunggakan *tunggakanService.Service
	Reports   *reportService.Service
	Reminders *reminderService.Service
}

func NewKasModule(db *gorm.DB, rdb *redis.Client) *KasModule {
	ttl := time.Duration(configs.GetEnvInt("REPORT_CACHE_TTL_SECONDS", 60)) * time.Second
	cache := reportService.NewRedisCache(rdb, ttl)

	studentStore := studentService.NewGormStore(db)
	paymentStore := paymentService.NewGormStore(db)

	m := &KasModule{Cache: cache}
	m.Settings = settingService.NewService(settingService.NewGormStore(db), dbtime.ClassLocation(), configs.DefaultStartDate, cache)
	m.Students = studentService.NewService(studentStore, cache)
	m.Ledger = paymentService.NewLedger(paymentStore, studentStore, m.Settings, cache)
	m.Expenses = expenseService.NewService(expenseService.NewGormStore(db), cache)
	m.Events = eventService.NewEngine(eventService.NewGormStore(db), studentStore, m.Settings, cache)
	m.Tunggakan = tunggakanService.NewService(studentStore, paymentStore, m.Settings)
	m.Reports = reportService.NewService(studentStore, m.Ledger, m.Expenses, m.Events, m.Settings, cache)
	m.Reminders = reminderService.NewService(
		m.Tunggakan,
		reminderService.NewFonnteNotifier(configs.FonnteURL, configs.FonnteToken),
		reminderService.NewGormLogStore(db),
		configs.GetEnvInt("REMINDER_MIN_WEEKS", 0),
	)
	return m
}

// KasPublicRoutes: hanya baca, tanpa data sensitif (nomor WA, log pengingat).
func KasPublicRoutes(r fiber.Router, m *KasModule) {
	kas := r.Group("/kas")

	settingRoute.SettingPublicRoutes(kas, settingCtl.NewSettingController(m.Settings))
	studentRoute.StudentPublicRoutes(kas, studentCtl.NewStudentController(m.Students))
	paymentRoute.PaymentPublicRoutes(kas, paymentCtl.NewPaymentController(m.Ledger))
	expenseRoute.ExpensePublicRoutes(kas, expenseCtl.NewExpenseController(m.Expenses))
	eventRoute.EventPublicRoutes(kas, eventCtl.NewEventController(m.Events))
	tunggakanRoute.TunggakanPublicRoutes(kas, tunggakanCtl.NewTunggakanController(m.Tunggakan))
	reportRoute.ReportPublicRoutes(kas, reportCtl.NewReportController(m.Reports))
}

// KasAdminRoutes: r sudah dijaga AuthJWT + TreasurerOnly.
func KasAdminRoutes(r fiber.Router, m *KasModule) {
	kas := r.Group("/kas")

	settingRoute.SettingAdminRoutes(kas, settingCtl.NewSettingController(m.Settings))
	studentRoute.StudentAdminRoutes(kas, studentCtl.NewStudentController(m.Students))
	paymentRoute.PaymentAdminRoutes(kas, paymentCtl.NewPaymentController(m.Ledger))
	expenseRoute.ExpenseAdminRoutes(kas, expenseCtl.NewExpenseController(m.Expenses))
	eventRoute.EventAdminRoutes(kas, eventCtl.NewEventController(m.Events))
	tunggakanRoute.TunggakanAdminRoutes(kas, tunggakanCtl.NewTunggakanController(m.Tunggakan))
	reportRoute.ReportPublicRoutes(kas, reportCtl.NewReportController(m.Reports))
	reportRoute.ExportAdminRoutes(kas, &reportCtl.ExportController{
		Ledger:    m.Ledger,
		Students:  m.Students,
		Expenses:  m.Expenses,
		Events:    m.Events,
		Tunggakan: m.Tunggakan,
	})

	kas.Use("/reminders/send", middlewares.ReminderSendLimiter())
	reminderRoute.ReminderAdminRoutes(kas, reminderCtl.NewReminderController(m.Reminders))
}
