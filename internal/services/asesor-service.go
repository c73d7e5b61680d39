package services

import (
	"fmt"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
)

type AsesorService interface {
	Create(input dto.AsesorRequest) (*domain.Asesor, error)
	Import(input dto.AsesorImportRequest) (int, error)
	Get(id uint) (*domain.Asesor, error)
	List(limit, offset int) ([]domain.Asesor, error)
	Update(id uint, input dto.AsesorRequest) (*domain.Asesor, error)
	Delete(id uint) error
}

type asesorService struct {
	repo repository.AsesorRepository
}

func NewAsesorService(repo repository.AsesorRepository) AsesorService {
	return &asesorService{repo: repo}
}

func buildAsesor(input dto.AsesorRequest) (*domain.Asesor, error) {
	nama := strings.TrimSpace(input.NamaLengkap)
	noReg := strings.TrimSpace(strings.ToUpper(input.NoRegistrasi))
	if nama == "" {
		return nil, fmt.Errorf("%w: nama_lengkap is required", domain.ErrValidation)
	}
	if noReg == "" {
		return nil, fmt.Errorf("%w: no_registrasi is required", domain.ErrValidation)
	}

	status := strings.TrimSpace(strings.ToLower(input.Status))
	if status == "" {
		status = "aktif"
	}

	return &domain.Asesor{
		NamaLengkap:  nama,
		NoRegistrasi: noReg,
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		NoHP:         strings.TrimSpace(input.NoHP),
		Kompetensi:   strings.TrimSpace(input.Kompetensi),
		Status:       status,
	}, nil
}

func (s *asesorService) Create(input dto.AsesorRequest) (*domain.Asesor, error) {
	a, err := buildAsesor(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Import takes rows already mapped to JSON by the spreadsheet importer on the
// client side. All-or-nothing.
func (s *asesorService) Import(input dto.AsesorImportRequest) (int, error) {
	if len(input.Data) == 0 {
		return 0, fmt.Errorf("%w: no rows to import", domain.ErrValidation)
	}

	rows := make([]domain.Asesor, 0, len(input.Data))
	for i, req := range input.Data {
		a, err := buildAsesor(req)
		if err != nil {
			return 0, fmt.Errorf("baris %d: %w", i+1, err)
		}
		rows = append(rows, *a)
	}

	if err := s.repo.CreateBatch(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *asesorService) Get(id uint) (*domain.Asesor, error) {
	return s.repo.FindByID(id)
}

func (s *asesorService) List(limit, offset int) ([]domain.Asesor, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.repo.List(limit, offset)
}

func (s *asesorService) Update(id uint, input dto.AsesorRequest) (*domain.Asesor, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := buildAsesor(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.Timestamps = existing.Timestamps

	if err := s.repo.Save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *asesorService) Delete(id uint) error {
	return s.repo.Delete(id)
}
