package dto

type PendaftaranRequest struct {
	NIK                string `json:"nik"`
	NamaLengkap        string `json:"nama_lengkap"`
	Email              string `json:"email"`
	NoHP               string `json:"no_hp"`
	ProgramStudi       string `json:"program_studi"`
	KompetensiKeahlian string `json:"kompetensi_keahlian"`
	WilayahRJI         string `json:"wilayah_rji"`
	Alamat             string `json:"alamat"`
	Provinsi           string `json:"provinsi"`
	Kota               string `json:"kota"`
	Kecamatan          string `json:"kecamatan"`
	Kelurahan          string `json:"kelurahan"`
}

// ProvisionedAccount is what approve returns: the login identity plus its
// linked asesi profile id. The generated password is only ever carried by the
// credentials event, never by the HTTP response.
type ProvisionedAccount struct {
	UserID      uint   `json:"user_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AsesiID     uint   `json:"asesi_id"`
	NamaLengkap string `json:"nama_lengkap"`
}

type CredentialsEvent struct {
	PendaftaranID uint   `json:"pendaftaran_id"`
	Email         string `json:"email"`
	NamaLengkap   string `json:"nama_lengkap"`
	Password      string `json:"password"`
}

type RejectionEvent struct {
	PendaftaranID uint   `json:"pendaftaran_id"`
	Email         string `json:"email"`
	NamaLengkap   string `json:"nama_lengkap"`
}
