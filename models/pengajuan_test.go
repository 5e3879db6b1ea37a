package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"explore-simeulue-be/store"
)

func TestPengajuanFromDocCoercesLooseFields(t *testing.T) {
	doc := store.Doc{
		ID: "s1",
		Fields: bson.M{
			"nama_wisata": "Pantai Ganting",
			"kategori":    "alam",
			"rating":      "4.5",
			"image":       "https://cdn.example.com/ganting.jpg",
			"lokasi":      map[string]interface{}{"latitude": 2.3, "longitude": 96.1},
		},
	}

	p, err := PengajuanFromDoc(doc)
	assert.NoError(t, err)
	assert.Equal(t, "s1", p.ID)
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, StatusPending, p.Status, "missing status defaults to pending")
	assert.Equal(t, []string{"https://cdn.example.com/ganting.jpg"}, p.Images)
	assert.Equal(t, 2.3, p.Lokasi.Latitude)
	assert.Equal(t, 96.1, p.Lokasi.Longitude)
}

func TestPengajuanFromDocAcceptsNumericRatingAndImageArray(t *testing.T) {
	doc := store.Doc{
		ID: "s2",
		Fields: bson.M{
			"rating": int32(4),
			"images": bson.A{"a.jpg", "b.jpg"},
			"lokasi": bson.M{"latitude": int64(-2), "longitude": "96.1"},
			"status": "rejected",
		},
	}

	p, err := PengajuanFromDoc(doc)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	assert.Equal(t, -2.0, p.Lokasi.Latitude)
	assert.Equal(t, 96.1, p.Lokasi.Longitude)
	assert.Equal(t, StatusRejected, p.Status)
}

func TestPengajuanFromDocMalformedFieldsFailClosed(t *testing.T) {
	_, err := PengajuanFromDoc(store.Doc{
		ID:     "s3",
		Fields: bson.M{"rating": "not-a-number", "lokasi": bson.M{"latitude": 2.3, "longitude": 96.1}},
	})
	var validationErr *ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "rating", validationErr.Field)
	}

	_, err = PengajuanFromDoc(store.Doc{
		ID:     "s4",
		Fields: bson.M{"rating": "4.5", "lokasi": "somewhere"},
	})
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "lokasi", validationErr.Field)
	}

	_, err = PengajuanFromDoc(store.Doc{
		ID:     "s5",
		Fields: bson.M{"rating": "4.5", "lokasi": bson.M{"latitude": "north", "longitude": 96.1}},
	})
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "lokasi", validationErr.Field)
	}
}

func TestPengajuanFromDocAbsentNumericFieldsAreZero(t *testing.T) {
	p, err := PengajuanFromDoc(store.Doc{ID: "s6", Fields: bson.M{"nama_wisata": "Pantai Lasikin"}})
	assert.NoError(t, err, "absent fields are not a parse failure")
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.Lokasi.Latitude)
	assert.Zero(t, p.Lokasi.Longitude)
	assert.Empty(t, p.Images)
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name      string
		rating    float64
		lat, lon  float64
		wantField string
	}{
		{"valid", 4.5, 2.3, 96.1, ""},
		{"rating boundary", 5, 90, 180, ""},
		{"rating too high", 5.1, 0, 0, "rating"},
		{"rating negative", -0.1, 0, 0, "rating"},
		{"latitude too high", 3, 90.5, 0, "latitude"},
		{"latitude too low", 3, -91, 0, "latitude"},
		{"longitude too high", 3, 0, 180.5, "longitude"},
		{"longitude too low", 3, 0, -181, "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pengajuan{Rating: tt.rating, Lokasi: Lokasi{Latitude: tt.lat, Longitude: tt.lon}}
			err := p.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, tt.wantField, validationErr.Field)
			}
		})
	}
}

func TestWisataFieldsRoundTrip(t *testing.T) {
	w := Wisata{
		ID:         "w1",
		NamaWisata: "Pulau Mincau",
		Kategori:   "alam",
		Rating:     4.2,
		Images:     []string{"m.jpg"},
		Lokasi:     Lokasi{Latitude: 2.7, Longitude: 95.9},
		Status:     StatusApproved,
		IsOpen:     Open,
	}

	got, err := WisataFromDoc(store.Doc{ID: "w1", Fields: w.Fields()})
	assert.NoError(t, err)
	assert.Equal(t, w.NamaWisata, got.NamaWisata)
	assert.Equal(t, w.Rating, got.Rating)
	assert.Equal(t, w.Lokasi, got.Lokasi)
	assert.Equal(t, w.Status, got.Status)
	assert.Equal(t, w.IsOpen, got.IsOpen)
}
