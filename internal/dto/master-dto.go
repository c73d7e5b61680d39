package dto

type AsesorRequest struct {
	NamaLengkap  string `json:"nama_lengkap"`
	NoRegistrasi string `json:"no_registrasi"`
	Email        string `json:"email"`
	NoHP         string `json:"no_hp"`
	Kompetensi   string `json:"kompetensi"`
	Status       string `json:"status"`
}

type AsesorImportRequest struct {
	Data []AsesorRequest `json:"data"`
}

type TUKRequest struct {
	NamaTUK       string `json:"nama_tuk"`
	JenisTUK      string `json:"jenis_tuk"`
	Alamat        string `json:"alamat"`
	Kota          string `json:"kota"`
	PenanggungJwb string `json:"penanggung_jawab"`
	Email         string `json:"email"`
	NoHP          string `json:"no_hp"`
}

type TUKImportRequest struct {
	Data []TUKRequest `json:"data"`
}

// TUKAkunRequest creates a venue together with its login account.
type TUKAkunRequest struct {
	TUKRequest
	Password string `json:"password"`
}

type SKKNIRequest struct {
	NomorSKKNI string `json:"nomor_skkni"`
	Judul      string `json:"judul"`
	Tahun      int    `json:"tahun"`
	Bidang     string `json:"bidang"`
}

type UnitKompetensiRequest struct {
	SKKNIID   uint   `json:"id_skkni"`
	KodeUnit  string `json:"kode_unit"`
	JudulUnit string `json:"judul_unit"`
}

type SkemaRequest struct {
	SKKNIID    uint   `json:"id_skkni"`
	KodeSkema  string `json:"kode_skema"`
	NamaSkema  string `json:"nama_skema"`
	Jenis      string `json:"jenis"`
	JumlahUnit int    `json:"jumlah_unit"`
}

type SkemaImportRequest struct {
	Data []SkemaRequest `json:"data"`
}

type JadwalUjiRequest struct {
	SkemaID    uint   `json:"id_skema"`
	TUKID      uint   `json:"id_tuk"`
	AsesorID   uint   `json:"id_asesor"`
	TanggalUji string `json:"tanggal_uji"` // YYYY-MM-DD
	Kuota      int    `json:"kuota"`
	Keterangan string `json:"keterangan"`
	Status     string `json:"status"`
}
