package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindAuthorization, KindOf(Authorization("nope")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindStorage, KindOf(errors.New("unclassified")))
}

func TestKindOfWrapped(t *testing.T) {
	inner := Validation("bad input")
	wrapped := fmt.Errorf("handling request: %w", inner)
	assert.Equal(t, KindValidation, KindOf(wrapped))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(Validation("x")))
	assert.Equal(t, http.StatusForbidden, StatusOf(Authorization("x")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("x")))
	assert.Equal(t, http.StatusConflict, StatusOf(New(KindConflict, "x")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Storage(errors.New("io"))))
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "error while processing request", err.Error())
}
