package services

import (
	"fmt"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"gorm.io/gorm"
)

type TUKService interface {
	Create(input dto.TUKRequest) (*domain.TUK, error)
	CreateWithAccount(input dto.TUKAkunRequest) (*domain.TUK, error)
	Import(input dto.TUKImportRequest) (int, error)
	Get(id uint) (*domain.TUK, error)
	List(limit, offset int) ([]domain.TUK, error)
	Update(id uint, input dto.TUKRequest) (*domain.TUK, error)
	Delete(id uint) error
}

type tukService struct {
	repo repository.TUKRepository
	auth helper.Auth
}

func NewTUKService(repo repository.TUKRepository, auth helper.Auth) TUKService {
	return &tukService{repo: repo, auth: auth}
}

func buildTUK(input dto.TUKRequest) (*domain.TUK, error) {
	nama := strings.TrimSpace(input.NamaTUK)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama_tuk is required", domain.ErrValidation)
	}

	jenis := strings.TrimSpace(strings.ToLower(input.JenisTUK))
	switch jenis {
	case "", "sewaktu", "tempat_kerja", "mandiri":
	default:
		return nil, fmt.Errorf("%w: unknown jenis_tuk %q", domain.ErrValidation, input.JenisTUK)
	}

	return &domain.TUK{
		NamaTUK:       nama,
		JenisTUK:      jenis,
		Alamat:        strings.TrimSpace(input.Alamat),
		Kota:          strings.TrimSpace(input.Kota),
		PenanggungJwb: strings.TrimSpace(input.PenanggungJwb),
		Email:         strings.TrimSpace(strings.ToLower(input.Email)),
		NoHP:          strings.TrimSpace(input.NoHP),
		Status:        "aktif",
	}, nil
}

func (s *tukService) Create(input dto.TUKRequest) (*domain.TUK, error) {
	t, err := buildTUK(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateWithAccount creates the venue and a TUK-role login in one
// transaction, the same all-or-nothing shape as asesi provisioning.
func (s *tukService) CreateWithAccount(input dto.TUKAkunRequest) (*domain.TUK, error) {
	t, err := buildTUK(input.TUKRequest)
	if err != nil {
		return nil, err
	}
	if t.Email == "" {
		return nil, fmt.Errorf("%w: email is required for a venue account", domain.ErrValidation)
	}
	if len(strings.TrimSpace(input.Password)) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	hash, err := s.auth.HashPassword(strings.TrimSpace(input.Password))
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        t.Email,
		PasswordHash: hash,
		NamaLengkap:  t.NamaTUK,
		Role:         domain.RoleTUK,
		Status:       "active",
	}

	err = s.repo.CreateWithAccount(t, user, func(tx *gorm.DB, u *domain.User) error {
		if err := tx.Create(u).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				return domain.ErrDuplicateIdentity
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tukService) Import(input dto.TUKImportRequest) (int, error) {
	if len(input.Data) == 0 {
		return 0, fmt.Errorf("%w: no rows to import", domain.ErrValidation)
	}

	rows := make([]domain.TUK, 0, len(input.Data))
	for i, req := range input.Data {
		t, err := buildTUK(req)
		if err != nil {
			return 0, fmt.Errorf("baris %d: %w", i+1, err)
		}
		rows = append(rows, *t)
	}

	if err := s.repo.CreateBatch(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *tukService) Get(id uint) (*domain.TUK, error) {
	return s.repo.FindByID(id)
}

func (s *tukService) List(limit, offset int) ([]domain.TUK, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.repo.List(limit, offset)
}

func (s *tukService) Update(id uint, input dto.TUKRequest) (*domain.TUK, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := buildTUK(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.Timestamps = existing.Timestamps
	updated.UserID = existing.UserID
	updated.Status = existing.Status

	if err := s.repo.Save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *tukService) Delete(id uint) error {
	return s.repo.Delete(id)
}
