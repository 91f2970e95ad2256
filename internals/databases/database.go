package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kaskelas_backend/internals/configs"
	eventModel "kaskelas_backend/internals/features/kas/events/model"
	expenseModel "kaskelas_backend/internals/features/kas/expenses/model"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	reminderModel "kaskelas_backend/internals/features/kas/reminders/model"
	settingModel "kaskelas_backend/internals/features/kas/settings/model"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// Catatan: kalau pakai PgBouncer biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kaskelas&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate membuat/menyesuaikan tabel kas.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&settingModel.SettingModel{},
		&studentModel.StudentModel{},
		&paymentModel.PaymentModel{},
		&expenseModel.ExpenseModel{},
		&eventModel.EventModel{},
		&eventModel.EventPaymentModel{},
		&reminderModel.ReminderLogModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Skema kas siap.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("db belum terkoneksi")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
