package assets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
)

// Smallest valid PNG header; mimetype only needs the magic bytes.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestClient_Upload_NewFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "drivers", r.FormValue("dir"))
		assert.Equal(t, "Max Verstappen", r.FormValue("entity"))
		assert.Equal(t, "portrait", r.FormValue("purpose"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()
		assert.Equal(t, "portrait.png", header.Filename)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/drivers/portrait.png"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, 0)
	url, err := client.Upload(context.Background(), UploadRequest{
		Dir:        "drivers",
		EntityName: "Max Verstappen",
		Purpose:    "portrait",
		Payload:    upload.NewFile("portrait.png", pngBytes),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/drivers/portrait.png", url)
}

func TestClient_Upload_ExistingURLShortCircuits(t *testing.T) {
	client := NewClient("http://unreachable.invalid", 0, 0)
	url, err := client.Upload(context.Background(), UploadRequest{
		Payload: upload.ExistingURL("https://cdn.example.com/keep.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/keep.png", url)
}

func TestClient_Upload_AbsentPayload(t *testing.T) {
	client := NewClient("http://unreachable.invalid", 0, 0)
	url, err := client.Upload(context.Background(), UploadRequest{Payload: upload.Absent()})
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestClient_Upload_RejectsNonImage(t *testing.T) {
	client := NewClient("http://unreachable.invalid", 0, 0)
	_, err := client.Upload(context.Background(), UploadRequest{
		Payload: upload.NewFile("notes.txt", []byte("plain text, not an image")),
	})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestClient_Upload_RejectsOversizedFile(t *testing.T) {
	client := NewClient("http://unreachable.invalid", 0, 4)
	_, err := client.Upload(context.Background(), UploadRequest{
		Payload: upload.NewFile("portrait.png", pngBytes),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}

func TestClient_Upload_ServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, 0)
	_, err := client.Upload(context.Background(), UploadRequest{
		Payload: upload.NewFile("portrait.png", pngBytes),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
