// Package assets uploads image files to the asset service and hands back
// their public URLs.
package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// UploadRequest names where the file lives on the asset service. Dir and
// EntityName segment the remote path; Purpose names the slot (portrait,
// logo, emblem).
type UploadRequest struct {
	Dir        string
	EntityName string
	Purpose    string
	Payload    upload.Payload
}

type Client struct {
	baseURL string
	http    *http.Client
	maxSize int64
}

func NewClient(baseURL string, timeout time.Duration, maxSize int64) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		maxSize: maxSize,
	}
}

// Upload resolves the payload to a public URL. An existing URL passes
// through untouched and an absent payload resolves to ""; only new files
// cost a round-trip.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (string, error) {
	switch req.Payload.Kind() {
	case upload.KindAbsent:
		return "", nil
	case upload.KindExistingURL:
		return req.Payload.URL(), nil
	}

	data := req.Payload.Data()
	if len(data) == 0 {
		return "", errors.New("empty file payload")
	}
	if c.maxSize > 0 && int64(len(data)) > c.maxSize {
		return "", errors.Errorf("file exceeds maximum size of %d bytes", c.maxSize)
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", errors.Wrapf(ErrUnsupportedType, "detected %s", mime.String())
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for field, value := range map[string]string{
		"dir":     req.Dir,
		"entity":  req.EntityName,
		"purpose": req.Purpose,
	} {
		if err := writer.WriteField(field, value); err != nil {
			return "", errors.Wrap(err, "writing multipart field")
		}
	}
	part, err := writer.CreateFormFile("file", req.Payload.Name())
	if err != nil {
		return "", errors.Wrap(err, "creating multipart file")
	}
	if _, err := part.Write(data); err != nil {
		return "", errors.Wrap(err, "writing multipart file")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "closing multipart writer")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &body)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "sending upload request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading upload response")
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errors.Errorf("asset service: unexpected status %d", resp.StatusCode)
	}

	var decoded struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", errors.Wrap(err, "decoding upload response")
	}
	if decoded.URL == "" {
		return "", errors.New("asset service returned an empty URL")
	}
	return decoded.URL, nil
}
