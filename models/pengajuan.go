package models

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"explore-simeulue-be/store"
)

// ReviewStatus enum
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// Lokasi holds a destination's geolocation
type Lokasi struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Pengajuan represents a user-submitted destination proposal awaiting review
type Pengajuan struct {
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
}

// ValidationError reports a field that failed parsing or its range check
// before any store mutation happened.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PengajuanFromDoc parses a loose submission document. Firestore-era records
// are schemaless, so rating may arrive as a string, the image may be a single
// value or an array, and status may be missing entirely (treated as pending).
// The record is returned best-effort for display, together with a
// ValidationError when a present field could not be coerced; mutating
// operations must not proceed on such a record.
func PengajuanFromDoc(doc store.Doc) (Pengajuan, error) {
	f := doc.Fields
	status := ReviewStatus(asString(f["status"]))
	if status == "" {
		status = StatusPending
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

	return Pengajuan{
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
		Status:           status,
	}, parseErr
}

// Validate checks the numeric-range invariants shared by submissions and
// destinations. It must pass before any promotion or edit is written.
func (p *Pengajuan) Validate() error {
	if p.Rating < 0 || p.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	if p.Lokasi.Latitude < -90 || p.Lokasi.Latitude > 90 {
		return &ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if p.Lokasi.Longitude < -180 || p.Lokasi.Longitude > 180 {
		return &ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	return nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asFloat coerces a loose numeric field. An absent field is zero; a present
// but uncoercible value reports failure so callers can fail closed.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func asImages(f bson.M) []string {
	if single := asString(f["image"]); single != "" {
		return []string{single}
	}
	var urls []string
	switch raw := f["images"].(type) {
	case []string:
		urls = append(urls, raw...)
	case []interface{}:
		for _, v := range raw {
			if s := asString(v); s != "" {
				urls = append(urls, s)
			}
		}
	case bson.A:
		for _, v := range raw {
			if s := asString(v); s != "" {
				urls = append(urls, s)
			}
		}
	}
	return urls
}

func asLokasi(v interface{}) (Lokasi, bool) {
	switch raw := v.(type) {
	case nil:
		return Lokasi{}, true
	case bson.M:
		return lokasiFromMap(raw)
	case map[string]interface{}:
		return lokasiFromMap(raw)
	case bson.D:
		return lokasiFromMap(raw.Map())
	default:
		return Lokasi{}, false
	}
}

func lokasiFromMap(m map[string]interface{}) (Lokasi, bool) {
	lat, latOK := asFloat(m["latitude"])
	lon, lonOK := asFloat(m["longitude"])
	return Lokasi{Latitude: lat, Longitude: lon}, latOK && lonOK
}
