package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusCode(t *testing.T) {
	cases := map[error]int{
		ErrNotFound:                         http.StatusNotFound,
		ErrInvalidInput:                     http.StatusBadRequest,
		ErrNoChatSession:                    http.StatusBadRequest,
		ErrDuplicateEntry:                   http.StatusConflict,
		ErrExternal:                         http.StatusBadGateway,
		ErrInvalidCredentials:               http.StatusUnauthorized,
		fmt.Errorf("load: %w", ErrNotFound): http.StatusNotFound,
		errors.New("boom"):                  http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusCode(err), err.Error())
	}
}

func TestNew(t *testing.T) {
	err := New(ErrInvalidInput, "category name is required")

	assert.Equal(t, "category name is required", err.Error())
	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, Is(err, ErrInvalidInput))
}

func TestFromDB(t *testing.T) {
	assert.NoError(t, FromDB(nil, "find product"))

	err := FromDB(gorm.ErrRecordNotFound, "find product")
	assert.True(t, Is(err, ErrNotFound))
	assert.Equal(t, "find product: not found", err.Error())

	assert.True(t, Is(FromDB(gorm.ErrDuplicatedKey, "create user"), ErrDuplicateEntry))

	other := errors.New("disk full")
	assert.True(t, Is(FromDB(other, "save"), other))
}
