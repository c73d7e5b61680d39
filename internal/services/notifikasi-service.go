package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"go.uber.org/zap"
)

type NotifikasiService interface {
	Create(input dto.NotifikasiRequest) (*domain.Notifikasi, error)
	List(limit, offset int) ([]domain.Notifikasi, error)
	MarkRead(id uint) error
	Delete(id uint) error

	// HandleMessage implements interfaces.ConsumerHandler: workflow events
	// published by this service come back through Kafka and land in the feed.
	HandleMessage(key, value string) error
}

type notifikasiService struct {
	repo repository.NotifikasiRepository
	log  *zap.Logger
}

func NewNotifikasiService(repo repository.NotifikasiRepository, log *zap.Logger) NotifikasiService {
	return &notifikasiService{repo: repo, log: log}
}

func (s *notifikasiService) Create(input dto.NotifikasiRequest) (*domain.Notifikasi, error) {
	judul := strings.TrimSpace(input.Judul)
	pesan := strings.TrimSpace(input.Pesan)
	if judul == "" || pesan == "" {
		return nil, fmt.Errorf("%w: judul and pesan are required", domain.ErrValidation)
	}

	tipe := strings.TrimSpace(strings.ToLower(input.Tipe))
	if tipe == "" {
		tipe = "info"
	}

	n := &domain.Notifikasi{
		Judul:  judul,
		Pesan:  pesan,
		Tipe:   tipe,
		Sumber: "admin",
	}
	if err := s.repo.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notifikasiService) List(limit, offset int) ([]domain.Notifikasi, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.repo.List(limit, offset)
}

func (s *notifikasiService) MarkRead(id uint) error {
	return s.repo.MarkRead(id)
}

func (s *notifikasiService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func (s *notifikasiService) HandleMessage(key, value string) error {
	switch key {
	case EventPendaftaranApproved:
		var ev dto.CredentialsEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return fmt.Errorf("decode %s event: %w", key, err)
		}
		// never persist the generated password
		return s.repo.Create(&domain.Notifikasi{
			Judul:  "Pendaftaran disetujui",
			Pesan:  fmt.Sprintf("Akun asesi untuk %s (%s) telah dibuat.", ev.NamaLengkap, ev.Email),
			Tipe:   "success",
			Sumber: "event",
		})
	case EventPendaftaranRejected:
		var ev dto.RejectionEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return fmt.Errorf("decode %s event: %w", key, err)
		}
		return s.repo.Create(&domain.Notifikasi{
			Judul:  "Pendaftaran ditolak",
			Pesan:  fmt.Sprintf("Pendaftaran atas nama %s ditolak.", ev.NamaLengkap),
			Tipe:   "warning",
			Sumber: "event",
		})
	default:
		s.log.Debug("ignoring unknown event", zap.String("key", key))
		return nil
	}
}
