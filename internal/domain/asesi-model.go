package domain

// AsesiProfile is the candidate profile created alongside a User when a
// registration is approved. Fields are a snapshot of the Pendaftaran at the
// moment of approval, not a live reference.
//
// The unique index on NIK is what enforces "one active account per national
// ID": a second approval carrying the same NIK fails inside the provisioning
// transaction and rolls the whole approval back.
type AsesiProfile struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	UserID             uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	PendaftaranID      uint    `gorm:"not null;index" json:"pendaftaran_id"`
	NIK                string  `gorm:"type:varchar(16);uniqueIndex;not null" json:"nik"`
	NamaLengkap        string  `gorm:"type:varchar(255);not null" json:"nama_lengkap"`
	NoHP               string  `gorm:"type:varchar(20)" json:"no_hp"`
	ProgramStudi       string  `gorm:"type:varchar(100)" json:"program_studi"`
	KompetensiKeahlian string  `gorm:"type:varchar(100)" json:"kompetensi_keahlian"`
	WilayahRJI         string  `gorm:"type:varchar(100);column:wilayah_rji" json:"wilayah_rji"`
	Alamat             string  `gorm:"type:text" json:"alamat"`
	Provinsi           string  `gorm:"type:varchar(100)" json:"provinsi"`
	Kota               string  `gorm:"type:varchar(100)" json:"kota"`
	Kecamatan          string  `gorm:"type:varchar(100)" json:"kecamatan"`
	Kelurahan          string  `gorm:"type:varchar(100)" json:"kelurahan"`
	Timestamps
}
