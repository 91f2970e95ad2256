package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"kaskelas_backend/internals/features/kas/payments/model"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
	"kaskelas_backend/internals/helpers/dbtime"
)

// UnknownStudentName: placeholder untuk pembayaran yang siswanya sudah dihapus.
const UnknownStudentName = "Siswa tidak ditemukan"

type Filter struct {
	Search string
	Method model.PaymentMethod
	Source model.PaymentSource
	From   *time.Time
	To     *time.Time // inklusif sampai akhir hari
}

// PaymentRow: payment + nama tampilan yang sudah di-resolve.
type PaymentRow struct {
	model.PaymentModel
	StudentName  string `json:"student_name,omitempty"`
	StudentAbsen int    `json:"student_absen,omitempty"`
	StudentFound bool   `json:"student_found"`
	DisplayName  string `json:"display_name"`
}

func indexStudents(students []studentModel.StudentModel) map[uuid.UUID]studentModel.StudentModel {
	m := make(map[uuid.UUID]studentModel.StudentModel, len(students))
	for _, s := range students {
		m[s.StudentID] = s
	}
	return m
}

// Resolve mengisi nama tampilan; referensi siswa yang hilang tidak dianggap error.
func Resolve(p model.PaymentModel, byID map[uuid.UUID]studentModel.StudentModel) PaymentRow {
	row := PaymentRow{PaymentModel: p}
	if p.PaymentStudentID != nil {
		if s, ok := byID[*p.PaymentStudentID]; ok {
			row.StudentName = s.StudentName
			row.StudentAbsen = s.StudentAbsen
			row.StudentFound = true
			row.DisplayName = s.StudentName
		} else {
			row.DisplayName = UnknownStudentName
		}
		return row
	}
	row.DisplayName = p.SourceName()
	return row
}

func (f Filter) match(row PaymentRow) bool {
	if f.Method != "" && row.PaymentMethod != f.Method {
		return false
	}
	if f.Source != "" && row.PaymentSource != f.Source {
		return false
	}
	if f.From != nil && row.PaymentDate.Before(dbtime.StartOfDay(*f.From)) {
		return false
	}
	if f.To != nil && row.PaymentDate.After(dbtime.EndOfDay(*f.To)) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	if row.StudentFound {
		if strings.Contains(strings.ToLower(row.StudentName), q) {
			return true
		}
		if strings.Contains(strconv.Itoa(row.StudentAbsen), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(row.SourceName()), q)
}

// ListFiltered: pencarian gabungan (nama/absen siswa ATAU nama sumber),
// metode, sumber, dan rentang tanggal [from, to-akhir-hari]. Urut terbaru dulu.
func ListFiltered(payments []model.PaymentModel, students []studentModel.StudentModel, f Filter) []PaymentRow {
	byID := indexStudents(students)
	out := make([]PaymentRow, 0, len(payments))
	for _, p := range payments {
		row := Resolve(p, byID)
		if f.match(row) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PaymentDate.Equal(out[j].PaymentDate) {
			return out[i].PaymentDate.After(out[j].PaymentDate)
		}
		return out[i].PaymentCreatedAt.After(out[j].PaymentCreatedAt)
	})
	return out
}

func TotalForStudent(payments []model.PaymentModel, studentID uuid.UUID) int64 {
	var sum int64
	for _, p := range payments {
		if p.BelongsTo(studentID) {
			sum += p.PaymentAmount
		}
	}
	return sum
}

// TotalInRange: semua sumber, tanggal inklusif [from, to-akhir-hari].
func TotalInRange(payments []model.PaymentModel, from, to time.Time) int64 {
	lo, hi := dbtime.StartOfDay(from), dbtime.EndOfDay(to)
	var sum int64
	for _, p := range payments {
		if p.PaymentDate.Before(lo) || p.PaymentDate.After(hi) {
			continue
		}
		sum += p.PaymentAmount
	}
	return sum
}

// TotalForWeek pakai payment_week yang tersimpan (bukan dihitung ulang).
func TotalForWeek(payments []model.PaymentModel, week int) int64 {
	var sum int64
	for _, p := range payments {
		if p.PaymentWeek == week {
			sum += p.PaymentAmount
		}
	}
	return sum
}
