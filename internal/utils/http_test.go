package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"status": "idle"}, http.StatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, len(`{"status":"idle"}`), n)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"idle"}`, w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]any{"bad": make(chan int)}, http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
