package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"topbookstore-backend/internal/shared/response"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrAuthorNotFound    = errors.New("author not found")
	ErrPublisherNotFound = errors.New("publisher not found")
	ErrInvalidBookID     = errors.New("invalid book id")
)

var bookErrorMap = map[error]struct {
	Status  int
	Title   string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Title:   "Book not found",
		Message: "The specified book does not exist",
	},
	ErrAuthorNotFound: {
		Status:  http.StatusBadRequest,
		Title:   "Author not found",
		Message: "The specified author does not exist",
	},
	ErrPublisherNotFound: {
		Status:  http.StatusBadRequest,
		Title:   "Publisher not found",
		Message: "The specified publisher does not exist",
	},
	ErrInvalidBookID: {
		Status:  http.StatusBadRequest,
		Title:   "Invalid book id",
		Message: "Book id must be a positive integer",
	},
}

// HandleBookError writes the mapped error response and reports whether
// the request is finished. Unknown errors become a 500.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, config := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.Fail(c, config.Status, config.Title, config.Message)
			return true
		}
	}

	log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Unhandled book error")
	response.InternalServerError(c, "Internal server error")
	return true
}
