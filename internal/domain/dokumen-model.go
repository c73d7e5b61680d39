package domain

// DokumenMutu is a quality document (SOP, panduan mutu, form template). The
// file itself lives in cloudinary; only the URL is stored.
type DokumenMutu struct {
	ID         uint   `gorm:"primaryKey;column:id_dokumen" json:"id_dokumen"`
	NamaDok    string `gorm:"type:varchar(255);not null;column:nama_dokumen" json:"nama_dokumen"`
	NomorDok   string `gorm:"type:varchar(100);column:nomor_dokumen" json:"nomor_dokumen"`
	Kategori   string `gorm:"type:varchar(100)" json:"kategori"`
	FileURL    string `gorm:"type:text" json:"file_url"`
	Timestamps
}

func (DokumenMutu) TableName() string { return "dokumen_mutu" }
