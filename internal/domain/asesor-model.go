package domain

type Asesor struct {
	ID           uint   `gorm:"primaryKey;column:id_asesor" json:"id_asesor"`
	NamaLengkap  string `gorm:"type:varchar(255);not null" json:"nama_lengkap"`
	NoRegistrasi string `gorm:"type:varchar(50);uniqueIndex;not null" json:"no_registrasi"` // BNSP MET number
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	NoHP         string `gorm:"type:varchar(20)" json:"no_hp"`
	Kompetensi   string `gorm:"type:varchar(255)" json:"kompetensi"`
	Status       string `gorm:"type:varchar(20);not null;default:aktif" json:"status"`
	Timestamps
}

func (Asesor) TableName() string { return "asesor" }
