package wilayah

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvinces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/provinces.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"32","name":"JAWA BARAT"},{"id":"33","name":"JAWA TENGAH"}]`))
	}))
	defer srv.Close()

	regions, err := New(srv.URL).Provinces(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "32", regions[0].ID)
	assert.Equal(t, "JAWA BARAT", regions[0].Name)
}

func TestRegenciesRequiresProvinceID(t *testing.T) {
	_, err := New("http://unused").Regencies(context.Background(), "")
	assert.Error(t, err)
}

func TestRegenciesPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/regencies/32.json", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"3204","name":"KABUPATEN BANDUNG"}]`))
	}))
	defer srv.Close()

	regions, err := New(srv.URL).Regencies(context.Background(), "32")
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "KABUPATEN BANDUNG", regions[0].Name)
}

func TestNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Provinces(context.Background())
	assert.ErrorContains(t, err, "502")
}

func TestMalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Provinces(context.Background())
	assert.ErrorContains(t, err, "decode")
}
