package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doctrack-io/doctrackgo/internal/workflow"
)

func TestRespondWorkflowError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{workflow.ErrDocumentNotFound, http.StatusNotFound},
		{workflow.ErrInvalidDepartment, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", workflow.ErrInvalidDepartment, "Mailroom"), http.StatusBadRequest},
		{workflow.ErrMissingField, http.StatusBadRequest},
		{workflow.ErrNotAtDestination, http.StatusConflict},
		{workflow.ErrAlreadyFinalized, http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		respondWorkflowError(rec, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%v: expected JSON response, got %s", tc.err, ct)
		}
	}
}
