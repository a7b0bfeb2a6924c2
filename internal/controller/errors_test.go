package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lshigami/trivia-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: page 3", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: bad row", service.ErrUnprocessable), http.StatusUnprocessableEntity},
		{service.ErrBadRequest, http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
