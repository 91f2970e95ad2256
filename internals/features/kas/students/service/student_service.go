package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"kaskelas_backend/internals/features/kas/students/model"
	"kaskelas_backend/internals/helpers/apperr"
)

// Store: persistensi roster. Implementasi gorm ada di store_gorm.go.
type Store interface {
	List(ctx context.Context) ([]model.StudentModel, error)
	Get(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) // nil,nil kalau tidak ada
	Create(ctx context.Context, s *model.StudentModel) error
	Save(ctx context.Context, s *model.StudentModel) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Service struct {
	store Store
	inv   Invalidator
}

func NewService(store Store, inv Invalidator) *Service {
	return &Service{store: store, inv: inv}
}

func (s *Service) changed(ctx context.Context) {
	if s.inv != nil {
		s.inv.Invalidate(ctx)
	}
}

// List: roster urut absen. status kosong = semua; q cocokkan nama (case-insensitive) atau absen.
func (s *Service) List(ctx context.Context, status model.StudentStatus, q string) ([]model.StudentModel, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]model.StudentModel, 0, len(all))
	for _, st := range all {
		if status != "" && st.StudentStatus != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(st.StudentName), q) && strconv.Itoa(st.StudentAbsen) != q {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

// Get: NotFound kalau tidak ada.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) {
	st, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperr.NotFound("Siswa tidak ditemukan")
	}
	return st, nil
}

func validate(st *model.StudentModel) error {
	if strings.TrimSpace(st.StudentName) == "" {
		return apperr.Validation("student_name", "nama siswa wajib diisi")
	}
	if st.StudentAbsen < 1 {
		return apperr.Validation("student_absen", "nomor absen minimal 1")
	}
	if !st.StudentStatus.Valid() {
		return apperr.Validation("student_status", "status siswa tidak dikenal: %s", st.StudentStatus)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, st *model.StudentModel) error {
	if err := validate(st); err != nil {
		return err
	}
	if err := s.store.Create(ctx, st); err != nil {
		return err
	}
	s.changed(ctx)
	return nil
}

// Update menerapkan fn ke data terkini lalu menyimpan (last write wins).
func (s *Service) Update(ctx context.Context, id uuid.UUID, apply func(*model.StudentModel)) (*model.StudentModel, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(st)
	if err := validate(st); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, st); err != nil {
		return nil, err
	}
	s.changed(ctx)
	return st, nil
}

// Delete menghapus siswa dari roster. Pembayaran lama tetap menyimpan
// student_id-nya dan akan tampil sebagai "Siswa tidak ditemukan".
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Siswa tidak ditemukan")
	}
	s.changed(ctx)
	return nil
}
