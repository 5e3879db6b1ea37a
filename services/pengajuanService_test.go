package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"explore-simeulue-be/models"
	"explore-simeulue-be/store"
)

type fakeDialog struct {
	confirm bool
	notices []string
}

func (d *fakeDialog) Confirm(title, message, severity string) bool { return d.confirm }

func (d *fakeDialog) Notify(title, message, severity string) {
	d.notices = append(d.notices, severity+": "+title)
}

// flakyStore injects failures into single operations to exercise the
// create-before-delete ordering guarantee.
type flakyStore struct {
	store.Store
	failCreate bool
	failDelete bool
}

var errInjected = errors.New("store unavailable")

func (f *flakyStore) Create(ctx context.Context, collection, id string, fields bson.M) error {
	if f.failCreate {
		return errInjected
	}
	return f.Store.Create(ctx, collection, id, fields)
}

func (f *flakyStore) Delete(ctx context.Context, collection, id string) error {
	if f.failDelete {
		return errInjected
	}
	return f.Store.Delete(ctx, collection, id)
}

func seedPengajuan(t *testing.T, s store.Store, id string, fields bson.M) {
	t.Helper()
	require.NoError(t, s.Create(context.Background(), "pengajuan_wisata", id, fields))
}

func samplePengajuan() bson.M {
	return bson.M{
		"nama_wisata":       "Pantai Alus-Alus",
		"kategori":          "alam",
		"alamat":            "Teupah Selatan, Simeulue",
		"waktu_operasional": "08.00 - 18.00",
		"karcis":            "10000",
		"rating":            "4.5",
		"deskripsi":         "Pantai pasir putih",
		"images":            []string{"https://cdn.example.com/alus.jpg"},
		"lokasi":            bson.M{"latitude": 2.3, "longitude": 96.1},
		"status":            "pending",
	}
}

func TestListDefaultsMissingStatusToPending(t *testing.T) {
	mem := store.NewMemoryStore()
	fields := samplePengajuan()
	delete(fields, "status")
	seedPengajuan(t, mem, "s1", fields)

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.StatusPending, list[0].Status)
}

func TestListPreservesArrivalOrder(t *testing.T) {
	mem := store.NewMemoryStore()
	for _, id := range []string{"s1", "s2", "s3"} {
		seedPengajuan(t, mem, id, samplePengajuan())
	}

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "s1", list[0].ID)
	assert.Equal(t, "s2", list[1].ID)
	assert.Equal(t, "s3", list[2].ID)
}

func TestApproveMovesSubmissionIntoWisata(t *testing.T) {
	mem := store.NewMemoryStore()
	seedPengajuan(t, mem, "s1", samplePengajuan())

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Approve(context.Background(), "s1"))

	// Submission is gone.
	_, err = mem.Get(context.Background(), "pengajuan_wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Destination exists under the same id with normalized fields.
	fields, err := mem.Get(context.Background(), "wisata", "s1")
	require.NoError(t, err)

	wisata, err := models.WisataFromDoc(store.Doc{ID: "s1", Fields: fields})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, wisata.Status)
	assert.Equal(t, models.Open, wisata.IsOpen)
	assert.Equal(t, 4.5, wisata.Rating)
	assert.Equal(t, "alam", wisata.Kategori)
	assert.Equal(t, 2.3, wisata.Lokasi.Latitude)
	assert.Equal(t, 96.1, wisata.Lokasi.Longitude)

	// The approved entry left the working view.
	assert.Empty(t, svc.Cached())
}

func TestApproveRejectsOutOfRangeRating(t *testing.T) {
	mem := store.NewMemoryStore()
	fields := samplePengajuan()
	fields["rating"] = "7.2"
	seedPengajuan(t, mem, "s1", fields)

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	err := svc.Approve(context.Background(), "s1")

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "rating", validationErr.Field)

	// No mutation happened on either collection.
	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	got, err := mem.Get(context.Background(), "pengajuan_wisata", "s1")
	require.NoError(t, err)
	assert.Equal(t, "7.2", got["rating"])
}

func TestApproveRejectsOutOfRangeLatitude(t *testing.T) {
	mem := store.NewMemoryStore()
	fields := samplePengajuan()
	fields["lokasi"] = bson.M{"latitude": 200.0, "longitude": 0.0}
	seedPengajuan(t, mem, "s1", fields)

	dialog := &fakeDialog{confirm: true}
	svc := NewPengajuanService(mem, dialog)
	err := svc.Approve(context.Background(), "s1")

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "latitude", validationErr.Field)
	assert.NotEmpty(t, dialog.notices)

	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = mem.Get(context.Background(), "pengajuan_wisata", "s1")
	assert.NoError(t, err)
}

func TestApproveRejectsUncoercibleRating(t *testing.T) {
	mem := store.NewMemoryStore()
	fields := samplePengajuan()
	fields["rating"] = "not-a-number"
	seedPengajuan(t, mem, "s1", fields)

	dialog := &fakeDialog{confirm: true}
	svc := NewPengajuanService(mem, dialog)
	err := svc.Approve(context.Background(), "s1")

	// The garbage rating must not be silently published as zero.
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "rating", validationErr.Field)
	assert.NotEmpty(t, dialog.notices)

	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	got, err := mem.Get(context.Background(), "pengajuan_wisata", "s1")
	require.NoError(t, err)
	assert.Equal(t, "not-a-number", got["rating"])
}

func TestApproveRejectsUncoercibleLokasi(t *testing.T) {
	mem := store.NewMemoryStore()
	fields := samplePengajuan()
	fields["lokasi"] = "somewhere"
	seedPengajuan(t, mem, "s1", fields)

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	err := svc.Approve(context.Background(), "s1")

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "lokasi", validationErr.Field)

	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = mem.Get(context.Background(), "pengajuan_wisata", "s1")
	assert.NoError(t, err)
}

func TestApproveCreateFailureLeavesSubmissionPending(t *testing.T) {
	mem := store.NewMemoryStore()
	seedPengajuan(t, mem, "s1", samplePengajuan())

	flaky := &flakyStore{Store: mem, failCreate: true}
	svc := NewPengajuanService(flaky, &fakeDialog{confirm: true})

	err := svc.Approve(context.Background(), "s1")
	assert.ErrorIs(t, err, errInjected)

	// The delete step never ran: the submission is still there and no
	// destination was written.
	_, err = mem.Get(context.Background(), "pengajuan_wisata", "s1")
	assert.NoError(t, err)
	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApproveDeleteFailureKeepsDestination(t *testing.T) {
	mem := store.NewMemoryStore()
	seedPengajuan(t, mem, "s1", samplePengajuan())

	flaky := &flakyStore{Store: mem, failDelete: true}
	dialog := &fakeDialog{confirm: true}
	svc := NewPengajuanService(flaky, dialog)

	err := svc.Approve(context.Background(), "s1")
	assert.ErrorIs(t, err, errInjected)

	// Create ran before the failing delete: both documents exist and the
	// duplicate state is reported, not reconciled.
	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.NoError(t, err)
	_, err = mem.Get(context.Background(), "pengajuan_wisata", "s1")
	assert.NoError(t, err)
	assert.NotEmpty(t, dialog.notices)
}

func TestApproveMissingSubmission(t *testing.T) {
	svc := NewPengajuanService(store.NewMemoryStore(), &fakeDialog{confirm: true})
	err := svc.Approve(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRejectMarksSubmissionRejected(t *testing.T) {
	mem := store.NewMemoryStore()
	seedPengajuan(t, mem, "s1", samplePengajuan())

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Reject(context.Background(), "s1"))

	// Still persisted, now rejected, and no destination was created.
	fields, err := mem.Get(context.Background(), "pengajuan_wisata", "s1")
	require.NoError(t, err)
	assert.Equal(t, "rejected", fields["status"])

	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Empty(t, svc.Cached())
}

func TestDeleteRemovesSubmission(t *testing.T) {
	mem := store.NewMemoryStore()
	seedPengajuan(t, mem, "s1", samplePengajuan())

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "s1"))

	_, err = mem.Get(context.Background(), "pengajuan_wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, svc.Cached())
}

func TestDeclinedConfirmationIsANoOp(t *testing.T) {
	mem := store.NewMemoryStore()
	seedPengajuan(t, mem, "s1", samplePengajuan())

	svc := NewPengajuanService(mem, &fakeDialog{confirm: false})
	before, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Approve(context.Background(), "s1"), ErrDeclined)
	assert.ErrorIs(t, svc.Reject(context.Background(), "s1"), ErrDeclined)
	assert.ErrorIs(t, svc.Delete(context.Background(), "s1"), ErrDeclined)

	// Store state and working view are byte-for-byte unchanged.
	fields, err := mem.Get(context.Background(), "pengajuan_wisata", "s1")
	require.NoError(t, err)
	assert.Equal(t, samplePengajuan(), fields)

	_, err = mem.Get(context.Background(), "wisata", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, before, svc.Cached())
}

func TestFilterAllIsIdentity(t *testing.T) {
	mem := store.NewMemoryStore()
	categories := []string{"alam", "religi", "kuliner"}
	for i, kategori := range categories {
		fields := samplePengajuan()
		fields["kategori"] = kategori
		seedPengajuan(t, mem, string(rune('a'+i)), fields)
	}

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	list, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, list, svc.Filter(KategoriAll))
}

func TestFilterMatchesCategorySubstringCaseInsensitive(t *testing.T) {
	mem := store.NewMemoryStore()
	fields := samplePengajuan()
	fields["kategori"] = "Religi"
	seedPengajuan(t, mem, "s1", fields)
	seedPengajuan(t, mem, "s2", samplePengajuan())

	svc := NewPengajuanService(mem, &fakeDialog{confirm: true})
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	filtered := svc.Filter("religi")
	require.Len(t, filtered, 1)
	assert.Equal(t, "s1", filtered[0].ID)

	assert.Len(t, svc.Filter("ALAM"), 1)
	assert.Empty(t, svc.Filter("bahari"))
}
