package services

import (
	"fmt"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
)

type InstrumenService interface {
	CreateIA01(input dto.IA01ObservasiRequest) (*domain.IA01Observasi, error)
	ListIA01ByUnit(unitID uint) ([]domain.IA01Observasi, error)
	DeleteIA01(id uint) error

	CreateIA03(input dto.IA03PertanyaanRequest) (*domain.IA03Pertanyaan, error)
	ListIA03ByUnit(unitID uint) ([]domain.IA03Pertanyaan, error)
	DeleteIA03(id uint) error
}

type instrumenService struct {
	repo  repository.InstrumenRepository
	skkni repository.SKKNIRepository
}

func NewInstrumenService(repo repository.InstrumenRepository, skkni repository.SKKNIRepository) InstrumenService {
	return &instrumenService{repo: repo, skkni: skkni}
}

func (s *instrumenService) CreateIA01(input dto.IA01ObservasiRequest) (*domain.IA01Observasi, error) {
	elemen := strings.TrimSpace(input.Elemen)
	kriteria := strings.TrimSpace(input.KriteriaUK)
	if input.UnitID == 0 {
		return nil, fmt.Errorf("%w: id_unit is required", domain.ErrValidation)
	}
	if elemen == "" || kriteria == "" {
		return nil, fmt.Errorf("%w: elemen and kriteria_unjuk_kerja are required", domain.ErrValidation)
	}

	if _, err := s.skkni.FindUnitByID(input.UnitID); err != nil {
		return nil, err
	}

	o := &domain.IA01Observasi{
		UnitID:     input.UnitID,
		Elemen:     elemen,
		KriteriaUK: kriteria,
		Benchmark:  strings.TrimSpace(input.Benchmark),
	}
	if err := s.repo.CreateIA01(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *instrumenService) ListIA01ByUnit(unitID uint) ([]domain.IA01Observasi, error) {
	if unitID == 0 {
		return nil, fmt.Errorf("%w: id_unit is required", domain.ErrValidation)
	}
	return s.repo.ListIA01ByUnit(unitID)
}

func (s *instrumenService) DeleteIA01(id uint) error {
	return s.repo.DeleteIA01(id)
}

func (s *instrumenService) CreateIA03(input dto.IA03PertanyaanRequest) (*domain.IA03Pertanyaan, error) {
	pertanyaan := strings.TrimSpace(input.Pertanyaan)
	if input.UnitID == 0 {
		return nil, fmt.Errorf("%w: id_unit is required", domain.ErrValidation)
	}
	if pertanyaan == "" {
		return nil, fmt.Errorf("%w: pertanyaan is required", domain.ErrValidation)
	}

	if _, err := s.skkni.FindUnitByID(input.UnitID); err != nil {
		return nil, err
	}

	p := &domain.IA03Pertanyaan{
		UnitID:        input.UnitID,
		Pertanyaan:    pertanyaan,
		JawabanSesuai: strings.TrimSpace(input.JawabanSesuai),
	}
	if err := s.repo.CreateIA03(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *instrumenService) ListIA03ByUnit(unitID uint) ([]domain.IA03Pertanyaan, error) {
	if unitID == 0 {
		return nil, fmt.Errorf("%w: id_unit is required", domain.ErrValidation)
	}
	return s.repo.ListIA03ByUnit(unitID)
}

func (s *instrumenService) DeleteIA03(id uint) error {
	return s.repo.DeleteIA03(id)
}
