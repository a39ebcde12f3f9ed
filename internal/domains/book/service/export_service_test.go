package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"topbookstore-backend/internal/domains/book/model"
	"topbookstore-backend/internal/infrastructure/storage"
)

func TestExportBooks_WritesWorkbook(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{
		ID: 1, Title: "Dế Mèn Phiêu Lưu Ký", ISBN13: "9786041000001",
		Price: 45_000, DiscountPercent: 10, NumberOfPages: 144, Inventory: 20,
		AuthorID: 1, PublisherID: 1, AuthorName: "Tô Hoài",
		PublicationDate: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	svc := newTestService(store)

	data, err := svc.ExportBooks(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Books", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Title", title)

	rowTitle, err := f.GetCellValue("Books", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Dế Mèn Phiêu Lưu Ký", rowTitle)

	discounted, err := f.GetCellValue("Books", "H2")
	require.NoError(t, err)
	assert.Equal(t, "40500", discounted)

	pubDate, err := f.GetCellValue("Books", "K2")
	require.NoError(t, err)
	assert.Equal(t, "2020-06-01", pubDate)
}

func TestExportBooks_AppliesFilter(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{ID: 1, Title: "Cheap", Price: 30_000, AuthorID: 1, PublisherID: 1})
	store.seed(&model.Book{ID: 2, Title: "Pricey", Price: 700_000, AuthorID: 1, PublisherID: 1})
	svc := newTestService(store)

	data, err := svc.ExportBooks(context.Background(), map[string]string{"price": "under50"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Books")
	require.NoError(t, err)
	// Header plus the single matching book.
	require.Len(t, rows, 2)
	assert.Equal(t, "Cheap", rows[1][1])
}

func newUploadTestService(store *fakeStore) BookService {
	return NewBookService(store, &fakeCategories{}, storage.NewImageProcessor(), nil, nil)
}

func TestUploadCover_InvalidID(t *testing.T) {
	svc := newUploadTestService(newFakeStore())

	_, err := svc.UploadCover(context.Background(), 0, []byte("anything"))

	assert.ErrorIs(t, err, model.ErrInvalidBookID)
}

func TestUploadCover_BookMissing(t *testing.T) {
	svc := newUploadTestService(newFakeStore())

	_, err := svc.UploadCover(context.Background(), 12, []byte("anything"))

	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestUploadCover_RejectsNonImageData(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{ID: 3, Title: "Has Cover", AuthorID: 1, PublisherID: 1})
	svc := newUploadTestService(store)

	_, err := svc.UploadCover(context.Background(), 3, []byte("definitely not an image"))

	assert.Error(t, err)
}
