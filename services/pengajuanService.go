package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"explore-simeulue-be/models"
	"explore-simeulue-be/store"
)

const (
	pengajuanCollection = "pengajuan_wisata"
	wisataCollection    = "wisata"
)

// ErrDeclined means the admin declined the confirmation prompt. The
// operation is a no-op, not a failure.
var ErrDeclined = errors.New("confirmation declined")

// KategoriAll is the identity filter token.
const KategoriAll = "All"

// PengajuanService mediates the review of destination submissions: listing
// the pending queue, promoting approved entries into the wisata catalog,
// and keeping its cached view of the queue consistent with the outcome.
type PengajuanService struct {
	store  store.Store
	dialog Dialog

	mu   sync.Mutex
	list []models.Pengajuan
}

func NewPengajuanService(s store.Store, d Dialog) *PengajuanService {
	return &PengajuanService{store: s, dialog: d}
}

// List fetches every submission in arrival order. Records without a status
// field are reported as pending. The result is cached as the service's
// working view of the queue.
func (s *PengajuanService) List(ctx context.Context) ([]models.Pengajuan, error) {
	docs, err := s.store.List(ctx, pengajuanCollection)
	if err != nil {
		return nil, err
	}

	list := make([]models.Pengajuan, 0, len(docs))
	for _, doc := range docs {
		// Best-effort for display; the Approve path re-parses and
		// fails closed on uncoercible fields.
		p, _ := models.PengajuanFromDoc(doc)
		list = append(list, p)
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()

	return list, nil
}

// Cached returns the current working view without hitting the store.
func (s *PengajuanService) Cached() []models.Pengajuan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Pengajuan(nil), s.list...)
}

// Filter returns the subsequence of the cached list whose kategori contains
// the token, case-insensitively. KategoriAll returns the list unchanged.
func (s *PengajuanService) Filter(kategori string) []models.Pengajuan {
	list := s.Cached()
	if kategori == KategoriAll || kategori == "" {
		return list
	}

	token := strings.ToLower(kategori)
	filtered := make([]models.Pengajuan, 0, len(list))
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Kategori), token) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Approve promotes a submission into the wisata catalog. The destination is
// created first, under the same id, and only then is the submission removed;
// a failure after the create leaves the submission recoverable as pending,
// a failure before it leaves everything unchanged. Nothing is retried.
func (s *PengajuanService) Approve(ctx context.Context, id string) error {
	if !s.dialog.Confirm("Setujui pengajuan?", "Pengajuan akan dipublikasikan sebagai wisata.", SeverityWarning) {
		return ErrDeclined
	}

	fields, err := s.store.Get(ctx, pengajuanCollection, id)
	if err != nil {
		s.notifyFailure("Gagal menyetujui", err)
		return err
	}

	p, err := models.PengajuanFromDoc(store.Doc{ID: id, Fields: fields})
	if err != nil {
		s.dialog.Notify("Data tidak valid", err.Error(), SeverityError)
		return err
	}
	if err := p.Validate(); err != nil {
		s.dialog.Notify("Data tidak valid", err.Error(), SeverityError)
		return err
	}

	wisata := models.Wisata{
		ID:               p.ID,
		NamaWisata:       p.NamaWisata,
		Kategori:         p.Kategori,
		Alamat:           p.Alamat,
		WaktuOperasional: p.WaktuOperasional,
		Karcis:           p.Karcis,
		Rating:           p.Rating,
		Deskripsi:        p.Deskripsi,
		Images:           p.Images,
		Lokasi:           p.Lokasi,
		Status:           models.StatusApproved,
		IsOpen:           models.Open,
	}

	if err := s.store.Create(ctx, wisataCollection, id, wisata.Fields()); err != nil {
		s.notifyFailure("Gagal menyetujui", err)
		return err
	}

	if err := s.store.Delete(ctx, pengajuanCollection, id); err != nil {
		// The destination already exists; report the stale submission
		// instead of trying to reconcile it here.
		s.dialog.Notify("Pengajuan tidak terhapus",
			fmt.Sprintf("Wisata %s sudah dibuat tetapi pengajuan masih tersisa: %v", id, err),
			SeverityError)
		return err
	}

	s.removeFromList(id)
	s.dialog.Notify("Disetujui", "Pengajuan telah dipublikasikan sebagai wisata.", SeveritySuccess)
	return nil
}

// Reject marks a submission as rejected in place. The record stays in the
// collection for history but leaves the pending view.
func (s *PengajuanService) Reject(ctx context.Context, id string) error {
	if !s.dialog.Confirm("Tolak pengajuan?", "Pengajuan akan ditandai sebagai ditolak.", SeverityWarning) {
		return ErrDeclined
	}

	err := s.store.Update(ctx, pengajuanCollection, id, bson.M{
		"status": string(models.StatusRejected),
	})
	if err != nil {
		s.notifyFailure("Gagal menolak", err)
		return err
	}

	s.removeFromList(id)
	s.dialog.Notify("Ditolak", "Pengajuan telah ditandai sebagai ditolak.", SeveritySuccess)
	return nil
}

// Delete permanently removes a submission.
func (s *PengajuanService) Delete(ctx context.Context, id string) error {
	if !s.dialog.Confirm("Hapus pengajuan?", "Pengajuan akan dihapus permanen dan tidak dapat dikembalikan!", SeverityWarning) {
		return ErrDeclined
	}

	if err := s.store.Delete(ctx, pengajuanCollection, id); err != nil {
		s.notifyFailure("Gagal menghapus", err)
		return err
	}

	s.removeFromList(id)
	s.dialog.Notify("Dihapus", "Pengajuan telah dihapus.", SeveritySuccess)
	return nil
}

func (s *PengajuanService) removeFromList(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.list {
		if p.ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return
		}
	}
}

func (s *PengajuanService) notifyFailure(title string, err error) {
	severity := SeverityError
	if errors.Is(err, store.ErrNotFound) {
		severity = SeverityWarning
	}
	s.dialog.Notify(title, err.Error(), severity)
}
