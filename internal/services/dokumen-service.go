package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/interfaces"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
)

const maxDokumenSize = 12 * 1024 * 1024 // 12MB

type DokumenService interface {
	Upload(ctx context.Context, nama, nomor, kategori string, file []byte) (*domain.DokumenMutu, error)
	Get(id uint) (*domain.DokumenMutu, error)
	List(limit, offset int) ([]domain.DokumenMutu, error)
	Delete(id uint) error
}

type dokumenService struct {
	repo     repository.DokumenRepository
	uploader interfaces.Uploader
}

func NewDokumenService(repo repository.DokumenRepository, uploader interfaces.Uploader) DokumenService {
	return &dokumenService{repo: repo, uploader: uploader}
}

func (s *dokumenService) Upload(ctx context.Context, nama, nomor, kategori string, file []byte) (*domain.DokumenMutu, error) {
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama_dokumen is required", domain.ErrValidation)
	}
	if len(file) == 0 {
		return nil, fmt.Errorf("%w: file is required", domain.ErrValidation)
	}
	if len(file) > maxDokumenSize {
		return nil, fmt.Errorf("%w: file size exceeds 12MB", domain.ErrValidation)
	}
	if s.uploader == nil {
		return nil, fmt.Errorf("uploader is not configured")
	}

	url, err := s.uploader.UploadBytes(ctx, "dokumen-mutu", uuid.NewString(), file)
	if err != nil {
		return nil, fmt.Errorf("upload dokumen failed: %w", err)
	}

	d := &domain.DokumenMutu{
		NamaDok:  nama,
		NomorDok: strings.TrimSpace(nomor),
		Kategori: strings.TrimSpace(kategori),
		FileURL:  url,
	}
	if err := s.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *dokumenService) Get(id uint) (*domain.DokumenMutu, error) {
	return s.repo.FindByID(id)
}

func (s *dokumenService) List(limit, offset int) ([]domain.DokumenMutu, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.repo.List(limit, offset)
}

func (s *dokumenService) Delete(id uint) error {
	return s.repo.Delete(id)
}
