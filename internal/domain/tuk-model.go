package domain

// TUK (Tempat Uji Kompetensi) is an assessment venue.
type TUK struct {
	ID            uint   `gorm:"primaryKey;column:id_tuk" json:"id_tuk"`
	NamaTUK       string `gorm:"type:varchar(255);not null;column:nama_tuk" json:"nama_tuk"`
	JenisTUK      string `gorm:"type:varchar(50);column:jenis_tuk" json:"jenis_tuk"` // sewaktu | tempat_kerja | mandiri
	Alamat        string `gorm:"type:text" json:"alamat"`
	Kota          string `gorm:"type:varchar(100)" json:"kota"`
	PenanggungJwb string `gorm:"type:varchar(255);column:penanggung_jawab" json:"penanggung_jawab"`
	Email         string `gorm:"type:varchar(255)" json:"email"`
	NoHP          string `gorm:"type:varchar(20)" json:"no_hp"`
	Status        string `gorm:"type:varchar(20);not null;default:aktif" json:"status"`
	UserID        *uint  `gorm:"index" json:"user_id,omitempty"` // set once a venue login account exists
	Timestamps
}

func (TUK) TableName() string { return "tuk" }
