package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topbookstore-backend/internal/domains/author/model"
)

type fakeAuthorService struct {
	authors []*model.Author
	author  *model.Author
	err     error
	lastReq model.AuthorRequest
}

func (f *fakeAuthorService) GetAllAuthors(_ context.Context) ([]*model.Author, error) {
	return f.authors, f.err
}

func (f *fakeAuthorService) GetAuthorByID(_ context.Context, _ int64) (*model.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.author, nil
}

func (f *fakeAuthorService) CreateAuthor(_ context.Context, req model.AuthorRequest) (*model.Author, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &model.Author{ID: 1, Name: req.Name, Bio: req.Bio}, nil
}

func (f *fakeAuthorService) UpdateAuthor(_ context.Context, id int64, req model.AuthorRequest) (*model.Author, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &model.Author{ID: id, Name: req.Name, Bio: req.Bio}, nil
}

func (f *fakeAuthorService) DeleteAuthor(_ context.Context, _ int64) error {
	return f.err
}

func setupRouter(svc *fakeAuthorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	router.GET("/authors", h.ListAuthors)
	router.GET("/authors/:id", h.GetAuthor)
	router.POST("/authors", h.CreateAuthor)
	router.PUT("/authors/:id", h.UpdateAuthor)
	router.DELETE("/authors/:id", h.DeleteAuthor)
	return router
}

func TestListAuthors(t *testing.T) {
	svc := &fakeAuthorService{authors: []*model.Author{{ID: 1, Name: "Nguyễn Nhật Ánh"}}}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nguyễn Nhật Ánh")
}

func TestGetAuthor_InvalidID(t *testing.T) {
	router := setupRouter(&fakeAuthorService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAuthor_NotFound(t *testing.T) {
	router := setupRouter(&fakeAuthorService{err: model.ErrAuthorNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors/9", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAuthor(t *testing.T) {
	svc := &fakeAuthorService{}
	router := setupRouter(svc)

	body, _ := json.Marshal(model.AuthorRequest{Name: "Tô Hoài", Bio: "Dế Mèn"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/authors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Tô Hoài", svc.lastReq.Name)
}

func TestCreateAuthor_ValidationFailure(t *testing.T) {
	router := setupRouter(&fakeAuthorService{})

	body, _ := json.Marshal(model.AuthorRequest{Name: ""})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/authors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	router := setupRouter(&fakeAuthorService{err: model.ErrAuthorNotFound})

	body, _ := json.Marshal(model.AuthorRequest{Name: "Renamed"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/authors/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAuthor(t *testing.T) {
	router := setupRouter(&fakeAuthorService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/authors/3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
