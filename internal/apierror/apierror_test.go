package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{ErrNoFields, http.StatusBadRequest},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err))
	}
}

func TestWithMessage_KeepsChainAndReplacesText(t *testing.T) {
	err := WithMessage(ErrNotFound, "filial não encontrada")

	assert.Equal(t, "filial não encontrada", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, Status(err))
}
