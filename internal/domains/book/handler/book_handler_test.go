package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topbookstore-backend/internal/domains/book/model"
)

// fakeBookService records what the handler asked for.
type fakeBookService struct {
	books      []*model.Book
	book       *model.Book
	err        error
	lastParams map[string]string
	lastDTO    model.BookDTO
}

func (f *fakeBookService) UpsertBook(_ context.Context, dto model.BookDTO) (*model.Book, error) {
	f.lastDTO = dto
	if f.err != nil {
		return nil, f.err
	}
	b := dto.ToEntity()
	if b.ID == 0 {
		b.ID = 1
	}
	return b, nil
}

func (f *fakeBookService) FilterBooks(_ context.Context, params map[string]string) ([]*model.Book, error) {
	f.lastParams = params
	return f.books, f.err
}

func (f *fakeBookService) GetBookByID(_ context.Context, id int64) (*model.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.book, nil
}

func (f *fakeBookService) GetBooksByCategory(_ context.Context, _ int64) ([]*model.Book, error) {
	return f.books, f.err
}

func (f *fakeBookService) RemoveBook(_ context.Context, _ int64) error {
	return f.err
}

func (f *fakeBookService) UploadCover(_ context.Context, _ int64, _ []byte) (string, error) {
	return "", f.err
}

func (f *fakeBookService) ExportBooks(_ context.Context, _ map[string]string) ([]byte, error) {
	return []byte("xlsx"), f.err
}

// noopCache never hits, so handlers always fall through to the service.
type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noopCache) Delete(context.Context, ...string) error     { return nil }
func (noopCache) DeletePattern(context.Context, string) error { return nil }
func (noopCache) Ping(context.Context) error                  { return nil }

func setupRouter(svc *fakeBookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, noopCache{})

	router := gin.New()
	router.GET("/books", h.ListBooks)
	router.GET("/books/:id", h.GetBook)
	router.POST("/books", h.CreateBook)
	router.PUT("/books/:id", h.UpdateBook)
	router.DELETE("/books/:id", h.DeleteBook)
	return router
}

func TestListBooks_ForwardsRecognizedFilterKeys(t *testing.T) {
	svc := &fakeBookService{books: []*model.Book{{ID: 1, Title: "A"}}}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books?price=under50&category=3&sort=title", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"price": "under50", "category": "3"}, svc.lastParams)

	var body struct {
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Meta.Total)
}

func TestGetBook_InvalidID(t *testing.T) {
	router := setupRouter(&fakeBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBook_NotFound(t *testing.T) {
	router := setupRouter(&fakeBookService{err: model.ErrBookNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBook_ValidationFailure(t *testing.T) {
	router := setupRouter(&fakeBookService{})

	body, _ := json.Marshal(map[string]interface{}{
		"title": "", "author_id": 1, "publisher_id": 1,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBook_IgnoresClientSuppliedID(t *testing.T) {
	svc := &fakeBookService{}
	router := setupRouter(svc)

	body, _ := json.Marshal(model.BookRequest{
		ID: 77, Title: "New Book", AuthorID: 1, PublisherID: 1, Price: 10_000,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(0), svc.lastDTO.ID)
}

func TestUpdateBook_PathIDWins(t *testing.T) {
	svc := &fakeBookService{}
	router := setupRouter(svc)

	body, _ := json.Marshal(model.BookRequest{
		ID: 99, Title: "Renamed", AuthorID: 1, PublisherID: 1,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/books/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), svc.lastDTO.ID)
}

func TestDeleteBook_NotFound(t *testing.T) {
	router := setupRouter(&fakeBookService{err: model.ErrBookNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/books/4", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
