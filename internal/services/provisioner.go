package services

import (
	"fmt"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"gorm.io/gorm"
)

const initialPasswordLength = 12

// AccountProvisioner creates one login identity plus one linked asesi
// profile from a registration snapshot, or neither. It runs inside the
// caller's transaction so a failure also rolls back the status flip that
// triggered it.
type AccountProvisioner interface {
	ProvisionTx(tx *gorm.DB, snapshot *domain.Pendaftaran) (*dto.ProvisionedAccount, string, error)
}

type accountProvisioner struct {
	users repository.UserRepository
	auth  helper.Auth
}

func NewAccountProvisioner(users repository.UserRepository, auth helper.Auth) AccountProvisioner {
	return &accountProvisioner{users: users, auth: auth}
}

// ProvisionTx returns the created account and the plain generated password.
// The password leaves this function only inside the credentials event.
func (p *accountProvisioner) ProvisionTx(tx *gorm.DB, snapshot *domain.Pendaftaran) (*dto.ProvisionedAccount, string, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return nil, "", err
	}

	plain, err := utils.RandomPassword(initialPasswordLength)
	if err != nil {
		return nil, "", err
	}
	hash, err := p.auth.HashPassword(plain)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        strings.TrimSpace(strings.ToLower(snapshot.Email)),
		PasswordHash: hash,
		NamaLengkap:  snapshot.NamaLengkap,
		Role:         domain.RoleAsesi,
		Status:       "active",
	}

	profile := &domain.AsesiProfile{
		PendaftaranID:      snapshot.ID,
		NIK:                snapshot.NIK,
		NamaLengkap:        snapshot.NamaLengkap,
		NoHP:               snapshot.NoHP,
		ProgramStudi:       snapshot.ProgramStudi,
		KompetensiKeahlian: snapshot.KompetensiKeahlian,
		WilayahRJI:         snapshot.WilayahRJI,
		Alamat:             snapshot.Alamat,
		Provinsi:           snapshot.Provinsi,
		Kota:               snapshot.Kota,
		Kecamatan:          snapshot.Kecamatan,
		Kelurahan:          snapshot.Kelurahan,
	}

	if err := p.users.ProvisionAsesi(tx, user, profile); err != nil {
		return nil, "", err
	}

	return &dto.ProvisionedAccount{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		AsesiID:     profile.ID,
		NamaLengkap: user.NamaLengkap,
	}, plain, nil
}

func validateSnapshot(p *domain.Pendaftaran) error {
	switch {
	case p == nil:
		return fmt.Errorf("%w: nil snapshot", domain.ErrValidation)
	case strings.TrimSpace(p.NIK) == "":
		return fmt.Errorf("%w: nik is required", domain.ErrValidation)
	case strings.TrimSpace(p.NamaLengkap) == "":
		return fmt.Errorf("%w: nama_lengkap is required", domain.ErrValidation)
	case strings.TrimSpace(p.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case strings.TrimSpace(p.NoHP) == "":
		return fmt.Errorf("%w: no_hp is required", domain.ErrValidation)
	}
	return nil
}
