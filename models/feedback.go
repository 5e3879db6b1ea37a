package models

import (
	"time"

	"explore-simeulue-be/store"
)

// Feedback is a visitor's comment on a destination. Feedback rows are
// removed in bulk when their parent wisata document is deleted.
type Feedback struct {
	ID       string    `json:"id"`
	IDWisata string    `json:"id_wisata"`
	Rating   float64   `json:"rating"`
	Feed     string    `json:"feed"`
	Tmt      time.Time `json:"tmt"`
}

func FeedbackFromDoc(doc store.Doc) Feedback {
	f := doc.Fields
	tmt, _ := f["tmt"].(time.Time)
	rating, _ := asFloat(f["rating"])

	return Feedback{
		ID:       doc.ID,
		IDWisata: asString(f["id_wisata"]),
		Rating:   rating,
		Feed:     asString(f["feed"]),
		Tmt:      tmt,
	}
}
