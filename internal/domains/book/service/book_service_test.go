package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topbookstore-backend/internal/domains/book/model"
	"topbookstore-backend/internal/domains/book/repository"
)

// fakeStore implements BookRepository and BookTx in memory. Every
// successful WithinTx call counts as one commit.
type fakeStore struct {
	books      map[int64]*model.Book
	links      map[int64][]int64
	nextID     int64
	commits    int
	lastFilter model.Filter
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		books:  make(map[int64]*model.Book),
		links:  make(map[int64][]int64),
		nextID: 1,
	}
}

func (f *fakeStore) seed(b *model.Book) {
	stored := *b
	f.links[b.ID] = append([]int64(nil), b.CategoryIDs...)
	stored.CategoryIDs = nil
	f.books[b.ID] = &stored
	if b.ID >= f.nextID {
		f.nextID = b.ID + 1
	}
}

func (f *fakeStore) ListBooks(_ context.Context, filter model.Filter) ([]*model.Book, error) {
	f.lastFilter = filter
	pred := filter.Predicate()
	var out []*model.Book
	for id, b := range f.books {
		copied := *b
		copied.CategoryIDs = append([]int64(nil), f.links[id]...)
		if pred(&copied) {
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeStore) GetBookByID(_ context.Context, id int64, _ repository.Include) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	copied := *b
	copied.CategoryIDs = append([]int64(nil), f.links[id]...)
	return &copied, nil
}

func (f *fakeStore) ListBooksByCategory(ctx context.Context, categoryID int64) ([]*model.Book, error) {
	return f.ListBooks(ctx, model.Filter{CategoryID: categoryID})
}

func (f *fakeStore) DeleteBook(_ context.Context, id int64) error {
	if _, ok := f.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(f.books, id)
	delete(f.links, id)
	return nil
}

func (f *fakeStore) SetImageURL(_ context.Context, id int64, url string) error {
	b, ok := f.books[id]
	if !ok {
		return model.ErrBookNotFound
	}
	b.ImageURL = url
	return nil
}

func (f *fakeStore) WithinTx(_ context.Context, fn func(tx repository.BookTx) error) error {
	if err := fn(f); err != nil {
		return err
	}
	f.commits++
	return nil
}

func (f *fakeStore) CreateBook(_ context.Context, b *model.Book) error {
	b.ID = f.nextID
	f.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	stored.CategoryIDs = nil
	f.books[b.ID] = &stored
	return nil
}

func (f *fakeStore) UpdateBook(_ context.Context, b *model.Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return model.ErrBookNotFound
	}
	stored := *b
	stored.CategoryIDs = nil
	f.books[b.ID] = &stored
	return nil
}

func (f *fakeStore) AttachCategories(_ context.Context, bookID int64, categoryIDs []int64) error {
	for _, id := range categoryIDs {
		exists := false
		for _, have := range f.links[bookID] {
			if have == id {
				exists = true
				break
			}
		}
		if !exists {
			f.links[bookID] = append(f.links[bookID], id)
		}
	}
	return nil
}

// fakeCategories resolves against a fixed set of existing ids.
type fakeCategories struct {
	existing map[int64]bool
}

func (f *fakeCategories) FilterExisting(_ context.Context, ids []int64) ([]int64, error) {
	var out []int64
	for _, id := range ids {
		if f.existing[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func newTestService(store *fakeStore, existing ...int64) BookService {
	set := make(map[int64]bool, len(existing))
	for _, id := range existing {
		set[id] = true
	}
	return NewBookService(store, &fakeCategories{existing: set}, nil, nil, nil)
}

func TestUpsertBook_InsertAssignsIDAndCommitsOnce(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, 1, 2)

	book, err := svc.UpsertBook(context.Background(), model.BookDTO{
		Title:       "Clean Architecture",
		Price:       350_000,
		AuthorID:    1,
		PublisherID: 1,
		CategoryIDs: []int64{1, 2, 999},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), book.ID)
	assert.Equal(t, 1, store.commits)
	// The unknown category id is dropped, not an error.
	assert.Equal(t, []int64{1, 2}, store.links[book.ID])
	assert.Equal(t, []int64{1, 2}, book.CategoryIDs)
}

func TestUpsertBook_UpdateOverwritesAllScalars(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{
		ID: 5, Title: "Old Title", Description: "old", Inventory: 10,
		Price: 90_000, DiscountPercent: 15, NumberOfPages: 320,
		AuthorID: 1, PublisherID: 1,
	})
	svc := newTestService(store)

	book, err := svc.UpsertBook(context.Background(), model.BookDTO{
		ID: 5, Title: "New Title", Price: 120_000,
		AuthorID: 2, PublisherID: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, store.commits)

	stored := store.books[5]
	assert.Equal(t, "New Title", stored.Title)
	assert.Empty(t, stored.Description)
	assert.Equal(t, 0, stored.Inventory)
	assert.Equal(t, int64(120_000), stored.Price)
	assert.Equal(t, 0, stored.DiscountPercent)
	assert.Equal(t, 0, stored.NumberOfPages)
	assert.Equal(t, int64(2), stored.AuthorID)
	assert.Equal(t, int64(5), book.ID)
}

func TestUpsertBook_UpdateOnlyAddsCategories(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{
		ID: 7, Title: "Kept", AuthorID: 1, PublisherID: 1,
		CategoryIDs: []int64{1, 2},
	})
	svc := newTestService(store, 2, 3)

	// The DTO omits category 1 and adds 3; 1 must survive.
	book, err := svc.UpsertBook(context.Background(), model.BookDTO{
		ID: 7, Title: "Kept", AuthorID: 1, PublisherID: 1,
		CategoryIDs: []int64{2, 3},
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, store.links[7])
	assert.ElementsMatch(t, []int64{1, 2, 3}, book.CategoryIDs)
	assert.Equal(t, 1, store.commits)
}

func TestUpsertBook_UpdateMissingIDFails(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.UpsertBook(context.Background(), model.BookDTO{ID: 42, Title: "Ghost"})

	assert.ErrorIs(t, err, model.ErrBookNotFound)
	assert.Equal(t, 0, store.commits)
}

func TestUpsertBook_UpdateIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{
		ID: 3, Title: "Same", Price: 50_000, AuthorID: 1, PublisherID: 1,
		CategoryIDs: []int64{4},
	})
	svc := newTestService(store, 4)

	dto := model.BookDTO{
		ID: 3, Title: "Same", Price: 50_000, AuthorID: 1, PublisherID: 1,
		CategoryIDs: []int64{4},
	}

	first, err := svc.UpsertBook(context.Background(), dto)
	require.NoError(t, err)
	second, err := svc.UpsertBook(context.Background(), dto)
	require.NoError(t, err)

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Price, second.Price)
	assert.Equal(t, []int64{4}, store.links[3])
	assert.Equal(t, 2, store.commits)
}

func TestFilterBooks_PassesResolvedFilter(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{ID: 1, Title: "Cheap", Price: 30_000, AuthorID: 1, PublisherID: 1})
	store.seed(&model.Book{ID: 2, Title: "Pricey", Price: 700_000, AuthorID: 1, PublisherID: 1})
	svc := newTestService(store)

	books, err := svc.FilterBooks(context.Background(), map[string]string{"price": "under50"})

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Cheap", books[0].Title)
	assert.Equal(t, "under50", store.lastFilter.PriceTag)
}

func TestFilterBooks_MalformedParamsWidenResult(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{ID: 1, Title: "A", AuthorID: 1, PublisherID: 1})
	store.seed(&model.Book{ID: 2, Title: "B", AuthorID: 2, PublisherID: 1})
	svc := newTestService(store)

	books, err := svc.FilterBooks(context.Background(), map[string]string{
		"category": "not-a-number",
		"price":    "bogus",
	})

	require.NoError(t, err)
	assert.Len(t, books, 2)
	assert.False(t, store.lastFilter.Active())
}

func TestGetBookByID_Validation(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GetBookByID(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrInvalidBookID)

	_, err = svc.GetBookByID(context.Background(), 99)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestRemoveBook(t *testing.T) {
	store := newFakeStore()
	store.seed(&model.Book{ID: 1, Title: "Doomed", AuthorID: 1, PublisherID: 1})
	svc := newTestService(store)

	require.NoError(t, svc.RemoveBook(context.Background(), 1))
	assert.Empty(t, store.books)

	assert.ErrorIs(t, svc.RemoveBook(context.Background(), 1), model.ErrBookNotFound)
	assert.ErrorIs(t, svc.RemoveBook(context.Background(), -1), model.ErrInvalidBookID)
}
