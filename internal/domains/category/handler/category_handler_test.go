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

	"topbookstore-backend/internal/domains/category/model"
)

type fakeCategoryService struct {
	err error
}

func (f *fakeCategoryService) GetAllCategories(_ context.Context) ([]*model.Category, error) {
	return nil, f.err
}

func (f *fakeCategoryService) GetCategoryByID(_ context.Context, id int64) (*model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Category{ID: id}, nil
}

func (f *fakeCategoryService) CreateCategory(_ context.Context, req model.CategoryRequest) (*model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Category{ID: 1, Name: req.Name}, nil
}

func (f *fakeCategoryService) UpdateCategory(_ context.Context, id int64, req model.CategoryRequest) (*model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Category{ID: id, Name: req.Name}, nil
}

func (f *fakeCategoryService) DeleteCategory(_ context.Context, _ int64) error {
	return f.err
}

func (f *fakeCategoryService) FilterExisting(_ context.Context, ids []int64) ([]int64, error) {
	return ids, nil
}

func setupRouter(svc *fakeCategoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	router.POST("/categories", h.CreateCategory)
	router.PUT("/categories/:id", h.UpdateCategory)
	router.DELETE("/categories/:id", h.DeleteCategory)
	return router
}

func postCategory(router *gin.Engine, method, path, name string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(model.CategoryRequest{Name: name})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCategory_DuplicateConflicts(t *testing.T) {
	router := setupRouter(&fakeCategoryService{err: model.ErrCategoryExists})

	w := postCategory(router, http.MethodPost, "/categories", "Fiction")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestUpdateCategory_DuplicateConflicts(t *testing.T) {
	router := setupRouter(&fakeCategoryService{err: model.ErrCategoryExists})

	w := postCategory(router, http.MethodPut, "/categories/2", "Fiction")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCategory_Succeeds(t *testing.T) {
	router := setupRouter(&fakeCategoryService{})

	w := postCategory(router, http.MethodPost, "/categories", "Fiction")

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	router := setupRouter(&fakeCategoryService{err: model.ErrCategoryNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/categories/4", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
