package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	FindUserByEmail(email string) (*domain.User, error)
	FindUserById(userID uint) (*domain.User, error)
	SaveUser(user *domain.User) error

	// ProvisionAsesi creates the login identity and the linked asesi profile
	// inside the caller's transaction, all-or-nothing. Unique-index conflicts
	// on email or NIK surface as domain.ErrDuplicateIdentity.
	ProvisionAsesi(tx *gorm.DB, user *domain.User, profile *domain.AsesiProfile) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	if err := r.db.Create(user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return domain.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserById(userID uint) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Save(user).Error
}

func (r *userRepository) ProvisionAsesi(tx *gorm.DB, user *domain.User, profile *domain.AsesiProfile) error {
	if err := tx.Create(user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return domain.ErrDuplicateIdentity
		}
		return err
	}

	profile.UserID = user.ID
	if err := tx.Create(profile).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return domain.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}
