package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/interfaces"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Event keys published on approve/reject. The in-process consumer turns them
// into admin notifications; the mail service delivers them to the candidate.
const (
	EventPendaftaranApproved = "pendaftaran.approved"
	EventPendaftaranRejected = "pendaftaran.rejected"
)

const nikLength = 16

// WarnNotificationFailed is attached to an otherwise-successful response when
// the outcome notice could not be handed off.
const WarnNotificationFailed = "status tersimpan, namun notifikasi ke pemohon gagal terkirim"

type PendaftaranService interface {
	Submit(input dto.PendaftaranRequest) (*domain.Pendaftaran, error)
	List(status string, limit, offset int) ([]domain.Pendaftaran, error)
	Get(id uint) (*domain.Pendaftaran, error)

	// Approve returns the provisioned account plus a warning string that is
	// non-empty when the approval committed but the notice hand-off failed.
	Approve(id uint) (*dto.ProvisionedAccount, string, error)
	Reject(id uint) (*domain.Pendaftaran, string, error)
}

type pendaftaranService struct {
	repo        repository.PendaftaranRepository
	provisioner AccountProvisioner
	producer    interfaces.ProducerHandler
	log         *zap.Logger
}

func NewPendaftaranService(
	repo repository.PendaftaranRepository,
	provisioner AccountProvisioner,
	producer interfaces.ProducerHandler,
	log *zap.Logger,
) PendaftaranService {
	return &pendaftaranService{
		repo:        repo,
		provisioner: provisioner,
		producer:    producer,
		log:         log,
	}
}

// Submit creates a new registration. Status always starts at pending no
// matter what the caller sends.
func (s *pendaftaranService) Submit(input dto.PendaftaranRequest) (*domain.Pendaftaran, error) {
	nik := strings.TrimSpace(input.NIK)
	nama := strings.TrimSpace(input.NamaLengkap)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	noHP := strings.TrimSpace(input.NoHP)

	switch {
	case nik == "":
		return nil, fmt.Errorf("%w: nik is required", domain.ErrValidation)
	case len(nik) != nikLength:
		return nil, fmt.Errorf("%w: nik must be %d digits", domain.ErrValidation, nikLength)
	case nama == "":
		return nil, fmt.Errorf("%w: nama_lengkap is required", domain.ErrValidation)
	case email == "":
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case noHP == "":
		return nil, fmt.Errorf("%w: no_hp is required", domain.ErrValidation)
	}

	p := &domain.Pendaftaran{
		NIK:                nik,
		NamaLengkap:        nama,
		Email:              email,
		NoHP:               noHP,
		ProgramStudi:       strings.TrimSpace(input.ProgramStudi),
		KompetensiKeahlian: strings.TrimSpace(input.KompetensiKeahlian),
		WilayahRJI:         strings.TrimSpace(input.WilayahRJI),
		Alamat:             strings.TrimSpace(input.Alamat),
		Provinsi:           strings.TrimSpace(input.Provinsi),
		Kota:               strings.TrimSpace(input.Kota),
		Kecamatan:          strings.TrimSpace(input.Kecamatan),
		Kelurahan:          strings.TrimSpace(input.Kelurahan),
		Status:             domain.RegistrationPending,
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pendaftaranService) List(status string, limit, offset int) ([]domain.Pendaftaran, error) {
	filter := domain.RegistrationStatus(strings.TrimSpace(strings.ToLower(status)))
	if filter != "" && !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.repo.List(filter, limit, offset)
}

func (s *pendaftaranService) Get(id uint) (*domain.Pendaftaran, error) {
	return s.repo.FindByID(id)
}

// Approve moves a pending registration to approved and provisions its
// account in one transaction. The conditional claim inside ClaimTransition
// makes a second concurrent approve lose with ErrInvalidStateTransition, and
// a provisioning failure (duplicate NIK or email) rolls the status back to
// pending with no partial account left behind.
func (s *pendaftaranService) Approve(id uint) (*dto.ProvisionedAccount, string, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, "", err
	}
	if p.Status != domain.RegistrationPending {
		return nil, "", domain.ErrInvalidStateTransition
	}

	var account *dto.ProvisionedAccount
	var plainPassword string

	err = s.repo.ClaimTransition(id, domain.RegistrationPending, domain.RegistrationApproved, func(tx *gorm.DB) error {
		acc, plain, perr := s.provisioner.ProvisionTx(tx, p)
		if perr != nil {
			return perr
		}
		account = acc
		plainPassword = plain
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			s.log.Warn("approval blocked by duplicate identity",
				zap.Uint("id_pendaftaran", id),
				zap.String("nik", p.NIK))
		}
		return nil, "", err
	}

	s.log.Info("pendaftaran approved",
		zap.Uint("id_pendaftaran", id),
		zap.Uint("user_id", account.UserID))

	warning := s.publish(EventPendaftaranApproved, dto.CredentialsEvent{
		PendaftaranID: id,
		Email:         account.Email,
		NamaLengkap:   account.NamaLengkap,
		Password:      plainPassword,
	})

	return account, warning, nil
}

func (s *pendaftaranService) Reject(id uint) (*domain.Pendaftaran, string, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, "", err
	}
	if p.Status != domain.RegistrationPending {
		return nil, "", domain.ErrInvalidStateTransition
	}

	if err := s.repo.ClaimTransition(id, domain.RegistrationPending, domain.RegistrationRejected, nil); err != nil {
		return nil, "", err
	}
	p.Status = domain.RegistrationRejected

	s.log.Info("pendaftaran rejected", zap.Uint("id_pendaftaran", id))

	warning := s.publish(EventPendaftaranRejected, dto.RejectionEvent{
		PendaftaranID: id,
		Email:         p.Email,
		NamaLengkap:   p.NamaLengkap,
	})

	return p, warning, nil
}

// publish hands the outcome event to the broker. A failure never aborts the
// transition that already committed; it only produces the warning.
func (s *pendaftaranService) publish(key string, payload any) string {
	if s.producer == nil {
		return ""
	}

	value, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("event marshal failed", zap.String("key", key), zap.Error(err))
		return WarnNotificationFailed
	}
	if err := s.producer.PublishMessage([]byte(key), value); err != nil {
		return WarnNotificationFailed
	}
	return ""
}
