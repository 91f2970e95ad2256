package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kaskelas_backend/internals/features/kas/students/dto"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=kas dbname=kas sslmode=disable",
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestCreateKeepsNotificationOptOut(t *testing.T) {
	db := dryRunDB(t)
	off, on := false, true

	cases := []struct {
		name  string
		notif *bool
		want  bool
	}{
		{"opt-out", &off, false},
		{"opt-in", &on, true},
		{"tidak diisi", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := dto.CreateStudentRequest{
				StudentName:                 "Budi",
				StudentAbsen:                1,
				StudentNotificationsEnabled: tc.notif,
			}.ToModel()

			stmt := db.WithContext(context.Background()).Create(st).Statement
			require.NoError(t, stmt.Error)
			assert.Contains(t, stmt.SQL.String(), `"student_notifications_enabled"`)

			var bools []bool
			for _, v := range stmt.Vars {
				if b, ok := v.(bool); ok {
					bools = append(bools, b)
				}
			}
			require.Len(t, bools, 1, strings.TrimSpace(stmt.SQL.String()))
			assert.Equal(t, tc.want, bools[0])
		})
	}
}
