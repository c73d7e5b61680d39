package services

import (
	"fmt"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
)

// BandingService handles appeals and complaints. Both carry small status
// machines validated the same way as registrations: the domain type decides
// whether a transition is legal, the repository guards the write with a
// conditional update.
type BandingService interface {
	SubmitBanding(input dto.BandingRequest) (*domain.Banding, error)
	ListBanding(limit, offset int) ([]domain.Banding, error)
	UpdateBanding(id uint, input dto.BandingUpdateRequest) (*domain.Banding, error)

	SubmitPengaduan(input dto.PengaduanRequest) (*domain.Pengaduan, error)
	ListPengaduan(limit, offset int) ([]domain.Pengaduan, error)
	UpdatePengaduan(id uint, input dto.PengaduanUpdateRequest) (*domain.Pengaduan, error)
}

type bandingService struct {
	banding   repository.BandingRepository
	pengaduan repository.PengaduanRepository
}

func NewBandingService(banding repository.BandingRepository, pengaduan repository.PengaduanRepository) BandingService {
	return &bandingService{banding: banding, pengaduan: pengaduan}
}

func (s *bandingService) SubmitBanding(input dto.BandingRequest) (*domain.Banding, error) {
	nama := strings.TrimSpace(input.NamaPemohon)
	alasan := strings.TrimSpace(input.AlasanBanding)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama_pemohon is required", domain.ErrValidation)
	}
	if alasan == "" {
		return nil, fmt.Errorf("%w: alasan_banding is required", domain.ErrValidation)
	}

	b := &domain.Banding{
		NamaPemohon:   nama,
		Email:         strings.TrimSpace(strings.ToLower(input.Email)),
		SkemaID:       input.SkemaID,
		AlasanBanding: alasan,
		Status:        domain.BandingDiajukan,
	}
	if err := s.banding.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bandingService) ListBanding(limit, offset int) ([]domain.Banding, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.banding.List(limit, offset)
}

func (s *bandingService) UpdateBanding(id uint, input dto.BandingUpdateRequest) (*domain.Banding, error) {
	next := domain.BandingStatus(strings.TrimSpace(strings.ToLower(input.Status)))
	switch next {
	case domain.BandingDiproses, domain.BandingDiterima, domain.BandingDitolak:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}

	b, err := s.banding.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStateTransition
	}

	if err := s.banding.UpdateStatus(id, b.Status, next, strings.TrimSpace(input.Tanggapan)); err != nil {
		return nil, err
	}
	return s.banding.FindByID(id)
}

func (s *bandingService) SubmitPengaduan(input dto.PengaduanRequest) (*domain.Pengaduan, error) {
	nama := strings.TrimSpace(input.NamaPelapor)
	isi := strings.TrimSpace(input.IsiPengaduan)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama_pelapor is required", domain.ErrValidation)
	}
	if isi == "" {
		return nil, fmt.Errorf("%w: isi_pengaduan is required", domain.ErrValidation)
	}

	p := &domain.Pengaduan{
		NamaPelapor:  nama,
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		Kategori:     strings.TrimSpace(input.Kategori),
		IsiPengaduan: isi,
		Status:       domain.PengaduanBaru,
	}
	if err := s.pengaduan.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *bandingService) ListPengaduan(limit, offset int) ([]domain.Pengaduan, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.pengaduan.List(limit, offset)
}

func (s *bandingService) UpdatePengaduan(id uint, input dto.PengaduanUpdateRequest) (*domain.Pengaduan, error) {
	next := domain.PengaduanStatus(strings.TrimSpace(strings.ToLower(input.Status)))
	switch next {
	case domain.PengaduanDiproses, domain.PengaduanSelesai:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}

	p, err := s.pengaduan.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !p.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStateTransition
	}

	if err := s.pengaduan.UpdateStatus(id, p.Status, next, strings.TrimSpace(input.Tanggapan)); err != nil {
		return nil, err
	}
	return s.pengaduan.FindByID(id)
}
