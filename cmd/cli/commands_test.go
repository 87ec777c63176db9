package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/summary":
			w.Write([]byte(`{"season":"` + r.URL.Query().Get("season") + `"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"unknown season"}`))
		}
	}))
	defer srv.Close()

	oldHost := host
	host = srv.URL
	defer func() { host = oldHost }()

	var out bytes.Buffer
	require.NoError(t, remoteGet(&out, "/api/summary", map[string][]string{"season": {"2023/2024"}}))
	assert.Contains(t, out.String(), `"season":"2023/2024"`)

	err := remoteGet(&out, "/missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned 404")
	assert.Contains(t, err.Error(), "unknown season")
}
