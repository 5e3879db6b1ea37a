package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"explore-simeulue-be/models"
	"explore-simeulue-be/store"
)

const feedbackCollection = "feedback"

// WisataService manages the published destination catalog: direct creation
// and edits from the dashboard, and deletion with a feedback cascade.
type WisataService struct {
	store  store.Store
	dialog Dialog
}

func NewWisataService(s store.Store, d Dialog) *WisataService {
	return &WisataService{store: s, dialog: d}
}

func (s *WisataService) List(ctx context.Context) ([]models.Wisata, error) {
	docs, err := s.store.List(ctx, wisataCollection)
	if err != nil {
		return nil, err
	}

	list := make([]models.Wisata, 0, len(docs))
	for _, doc := range docs {
		// Best-effort for display; edits re-validate before writing.
		w, _ := models.WisataFromDoc(doc)
		list = append(list, w)
	}
	return list, nil
}

func (s *WisataService) Get(ctx context.Context, id string) (models.Wisata, error) {
	fields, err := s.store.Get(ctx, wisataCollection, id)
	if err != nil {
		return models.Wisata{}, err
	}
	w, _ := models.WisataFromDoc(store.Doc{ID: id, Fields: fields})
	return w, nil
}

// Create validates and writes a destination entered directly through the
// dashboard form. New destinations always start open.
func (s *WisataService) Create(ctx context.Context, w models.Wisata) (string, error) {
	if err := w.Validate(); err != nil {
		return "", err
	}

	if w.ID == "" {
		w.ID = primitive.NewObjectID().Hex()
	}
	if w.Status == "" {
		w.Status = models.StatusApproved
	}
	w.IsOpen = models.Open

	if err := s.store.Create(ctx, wisataCollection, w.ID, w.Fields()); err != nil {
		s.notifyFailure("Gagal menambah wisata", err)
		return "", err
	}
	return w.ID, nil
}

// Update merges edited fields into an existing destination, including the
// is_open operational flag.
func (s *WisataService) Update(ctx context.Context, w models.Wisata) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if err := s.store.Update(ctx, wisataCollection, w.ID, w.Fields()); err != nil {
		s.notifyFailure("Gagal mengubah wisata", err)
		return err
	}
	return nil
}

// Delete removes a destination and all of its feedback in one batch so no
// orphaned feedback rows survive the destination.
func (s *WisataService) Delete(ctx context.Context, id string) error {
	if !s.dialog.Confirm("Hapus wisata?", "Wisata beserta umpan baliknya akan dihapus permanen!", SeverityWarning) {
		return ErrDeclined
	}

	if _, err := s.store.Get(ctx, wisataCollection, id); err != nil {
		s.notifyFailure("Gagal menghapus wisata", err)
		return err
	}

	feedback, err := s.store.Query(ctx, feedbackCollection, "id_wisata", id)
	if err != nil {
		s.notifyFailure("Gagal menghapus wisata", err)
		return err
	}

	ops := []store.Op{{Kind: store.OpDelete, Collection: wisataCollection, ID: id}}
	for _, doc := range feedback {
		ops = append(ops, store.Op{Kind: store.OpDelete, Collection: feedbackCollection, ID: doc.ID})
	}

	if err := s.store.Batch(ctx, ops); err != nil {
		s.notifyFailure("Gagal menghapus wisata", err)
		return err
	}

	s.dialog.Notify("Dihapus", "Wisata dan umpan baliknya telah dihapus.", SeveritySuccess)
	return nil
}

// SetOpen flips the operational flag without touching the rest of the record.
func (s *WisataService) SetOpen(ctx context.Context, id string, open bool) error {
	flag := models.Closed
	if open {
		flag = models.Open
	}
	return s.store.Update(ctx, wisataCollection, id, bson.M{"is_open": string(flag)})
}

func (s *WisataService) notifyFailure(title string, err error) {
	s.dialog.Notify(title, err.Error(), SeverityError)
}
