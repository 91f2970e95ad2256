package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kaskelas_backend/internals/features/kas/students/model"
)

/* =============== REQUESTS =============== */

type CreateStudentRequest struct {
	StudentName                 string  `json:"student_name"   validate:"required,min=1,max=120"`
	StudentAbsen                int     `json:"student_absen"  validate:"required,gte=1"`
	StudentStatus               string  `json:"student_status" validate:"omitempty,oneof=active inactive alumni"`
	StudentPhone                *string `json:"student_phone"  validate:"omitempty,max=32"`
	StudentNotificationsEnabled *bool   `json:"student_notifications_enabled"`
}

func (r CreateStudentRequest) ToModel() *m.StudentModel {
	status := m.StudentStatus(r.StudentStatus)
	if status == "" {
		status = m.StudentActive
	}
	notif := true
	if r.StudentNotificationsEnabled != nil {
		notif = *r.StudentNotificationsEnabled
	}
	return &m.StudentModel{
		StudentName:                 strings.TrimSpace(r.StudentName),
		StudentAbsen:                r.StudentAbsen,
		StudentStatus:               status,
		StudentPhone:                normalizePhone(r.StudentPhone),
		StudentNotificationsEnabled: notif,
	}
}

// Update (partial)
type UpdateStudentRequest struct {
	StudentName                 *string `json:"student_name"   validate:"omitempty,min=1,max=120"`
	StudentAbsen                *int    `json:"student_absen"  validate:"omitempty,gte=1"`
	StudentStatus               *string `json:"student_status" validate:"omitempty,oneof=active inactive alumni"`
	StudentPhone                *string `json:"student_phone"  validate:"omitempty,max=32"`
	StudentNotificationsEnabled *bool   `json:"student_notifications_enabled"`
}

func (r UpdateStudentRequest) ApplyTo(mo *m.StudentModel) {
	if r.StudentName != nil {
		mo.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentAbsen != nil {
		mo.StudentAbsen = *r.StudentAbsen
	}
	if r.StudentStatus != nil {
		mo.StudentStatus = m.StudentStatus(*r.StudentStatus)
	}
	if r.StudentPhone != nil {
		mo.StudentPhone = normalizePhone(r.StudentPhone)
	}
	if r.StudentNotificationsEnabled != nil {
		mo.StudentNotificationsEnabled = *r.StudentNotificationsEnabled
	}
}

type ListStudentQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=active inactive alumni"`
	Q      string `query:"q"`
}

// normalizePhone: "" → nil, spasi/strip dibuang
func normalizePhone(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(*p))
	if v == "" {
		return nil
	}
	return &v
}

/* =============== RESPONSES =============== */

type StudentResponse struct {
	StudentID                   uuid.UUID  `json:"student_id"`
	StudentName                 string     `json:"student_name"`
	StudentAbsen                int        `json:"student_absen"`
	StudentStatus               string     `json:"student_status"`
	StudentPhone                *string    `json:"student_phone,omitempty"`
	StudentNotificationsEnabled bool       `json:"student_notifications_enabled"`
	StudentCreatedAt            time.Time  `json:"student_created_at"`
	StudentUpdatedAt            *time.Time `json:"student_updated_at,omitempty"`
}

func FromModel(x m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:                   x.StudentID,
		StudentName:                 x.StudentName,
		StudentAbsen:                x.StudentAbsen,
		StudentStatus:               string(x.StudentStatus),
		StudentPhone:                x.StudentPhone,
		StudentNotificationsEnabled: x.StudentNotificationsEnabled,
		StudentCreatedAt:            x.StudentCreatedAt,
		StudentUpdatedAt:            x.StudentUpdatedAt,
	}
}

func FromModels(list []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
