package errors

import (
	"net/http"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestBuilderMarks(t *testing.T) {
	err := NewErrorf("invoice %s not found", "INV-1").
		WithHint("Invoice not found").
		Mark(ErrNotFound)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "invoice INV-1 not found", err.Error())
	assert.Equal(t, []string{"Invoice not found"}, errors.GetAllHints(err))
}

func TestBuilderKeepsMarksOfWrappedError(t *testing.T) {
	inner := NewError("bad json").Mark(ErrValidation)
	err := WithError(inner).WithMessage("load a.json").Error()

	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "load a.json")
}

func TestBuilderErrorLeavesUnclassified(t *testing.T) {
	err := NewError("render failed").
		WithMessage("invoice INV-9").
		WithHint("Could not render invoice").
		Error()

	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(err))
	assert.Equal(t, "invoice INV-9: render failed", err.Error())
	assert.Equal(t, []string{"Could not render invoice"}, errors.GetAllHints(err))
}

func TestReportableDetails(t *testing.T) {
	err := NewError("bad item").
		WithReportableDetails(map[string]any{"item": 2}).
		Mark(ErrValidation)

	var found bool
	for _, sd := range errors.GetAllSafeDetails(err) {
		for _, payload := range sd.SafeDetails {
			if strings.HasPrefix(payload, "__json__:") && strings.Contains(payload, `"item":2`) {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewError("x").Mark(ErrNotFound), http.StatusNotFound},
		{NewError("x").Mark(ErrValidation), http.StatusBadRequest},
		{NewError("x").Mark(ErrDatabase), http.StatusInternalServerError},
		{NewError("x").Mark(ErrHTTPClient), http.StatusBadGateway},
		{NewError("x").Mark(ErrSystem), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
	}
}
