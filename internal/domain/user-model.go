package domain

const (
	RoleAdmin  = "ADMIN"
	RoleAsesor = "ASESOR"
	RoleAsesi  = "ASESI"
	RoleTUK    = "TUK"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	NamaLengkap  string `json:"nama_lengkap"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`
	Status       string `gorm:"type:varchar(20);not null;default:active" json:"status"`
	Timestamps
}
