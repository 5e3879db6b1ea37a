package models

import (
	"go.mongodb.org/mongo-driver/bson"

	"explore-simeulue-be/store"
)

// OpenStatus enum
type OpenStatus string

const (
	Open   OpenStatus = "open"
	Closed OpenStatus = "closed"
)

// Wisata represents a published, catalog-visible tourist destination
type Wisata struct {
	ID               string       `json:"id"`
	NamaWisata       string       `json:"nama_wisata"`
	Kategori         string       `json:"kategori"`
	Alamat           string       `json:"alamat"`
	WaktuOperasional string       `json:"waktu_operasional"`
	Karcis           string       `json:"karcis"`
	Rating           float64      `json:"rating"`
	Deskripsi        string       `json:"deskripsi"`
	Images           []string     `json:"images"`
	Lokasi           Lokasi       `json:"lokasi"`
	Status           ReviewStatus `json:"status"`
	IsOpen           OpenStatus   `json:"is_open"`
}

// WisataFromDoc parses a loose destination document with the same coercions
// and fail-closed reporting as PengajuanFromDoc. A missing is_open flag is
// treated as open.
func WisataFromDoc(doc store.Doc) (Wisata, error) {
	f := doc.Fields
	isOpen := OpenStatus(asString(f["is_open"]))
	if isOpen == "" {
		isOpen = Open
	}

	var parseErr error
	rating, ok := asFloat(f["rating"])
	if !ok {
		parseErr = &ValidationError{Field: "rating", Reason: "not coercible to a number"}
	}
	lokasi, ok := asLokasi(f["lokasi"])
	if !ok && parseErr == nil {
		parseErr = &ValidationError{Field: "lokasi", Reason: "malformed geolocation"}
	}

	return Wisata{
		ID:               doc.ID,
		NamaWisata:       asString(f["nama_wisata"]),
		Kategori:         asString(f["kategori"]),
		Alamat:           asString(f["alamat"]),
		WaktuOperasional: asString(f["waktu_operasional"]),
		Karcis:           asString(f["karcis"]),
		Rating:           rating,
		Deskripsi:        asString(f["deskripsi"]),
		Images:           asImages(f),
		Lokasi:           lokasi,
		Status:           ReviewStatus(asString(f["status"])),
		IsOpen:           isOpen,
	}, parseErr
}

// Fields flattens the destination into the document written to the store.
func (w *Wisata) Fields() bson.M {
	return bson.M{
		"nama_wisata":       w.NamaWisata,
		"kategori":          w.Kategori,
		"alamat":            w.Alamat,
		"waktu_operasional": w.WaktuOperasional,
		"karcis":            w.Karcis,
		"rating":            w.Rating,
		"deskripsi":         w.Deskripsi,
		"images":            w.Images,
		"lokasi": bson.M{
			"latitude":  w.Lokasi.Latitude,
			"longitude": w.Lokasi.Longitude,
		},
		"status":  string(w.Status),
		"is_open": string(w.IsOpen),
	}
}

// Validate applies the shared numeric-range invariants.
func (w *Wisata) Validate() error {
	p := Pengajuan{Rating: w.Rating, Lokasi: w.Lokasi}
	return p.Validate()
}
