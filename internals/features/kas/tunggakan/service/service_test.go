package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
	"kaskelas_backend/internals/helpers/apperr"
)

type sliceStudents []studentModel.StudentModel

func (s sliceStudents) List(context.Context) ([]studentModel.StudentModel, error) { return s, nil }

type slicePayments []paymentModel.PaymentModel

func (s slicePayments) List(context.Context) ([]paymentModel.PaymentModel, error) { return s, nil }

type staticSettings settingService.Settings

func (s staticSettings) Get(context.Context) (settingService.Settings, error) {
	return settingService.Settings(s), nil
}

func TestServiceSnapshotAndCandidates(t *testing.T) {
	phone := "628123"
	ani := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Ani", StudentAbsen: 1, StudentStatus: studentModel.StudentActive, StudentPhone: &phone, StudentNotificationsEnabled: true}
	budi := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi", StudentAbsen: 2, StudentStatus: studentModel.StudentActive}
	pays := slicePayments{
		{PaymentStudentID: &budi.StudentID, PaymentAmount: 8000, PaymentSource: paymentModel.SourceRegular},
	}
	svc := NewService(sliceStudents{ani, budi}, pays, staticSettings{StartDate: date("2025-10-27"), WeeklyAmount: 2000, LateThreshold: 4})

	now := date("2025-11-17")
	snap, err := svc.Snapshot(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 4, snap.Roster.Summary.CurrentWeek)
	assert.Equal(t, 1, snap.Roster.Summary.LateCount)

	cands, _, err := svc.Candidates(context.Background(), now, 0)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, ani.StudentID, cands[0].StudentID)
	assert.Equal(t, 4, cands[0].WeeksLate)

	one, err := svc.ForStudent(context.Background(), budi.StudentID, now)
	require.NoError(t, err)
	assert.Equal(t, StatusLunas, one.Status)

	_, err = svc.ForStudent(context.Background(), uuid.New(), now)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCurrentWeekFollowsStartDate(t *testing.T) {
	st := settingService.Settings{StartDate: date("2025-10-27"), WeeklyAmount: 2000, LateThreshold: 4}

	assert.Equal(t, 4, CurrentWeek(date("2025-11-17"), st))
	assert.Equal(t, 0, CurrentWeek(date("2025-10-26"), st))

	st.StartDate = date("2025-11-10")
	assert.Equal(t, 2, CurrentWeek(date("2025-11-17"), st))
}
