package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
)

// UploadImage uploads raw image bytes as a multipart form (field "image")
// and returns the hosted URL the server assigned. Size and media-type
// checks happen before this call; the client sends whatever it is given.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("client.UploadImage: create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("client.UploadImage: write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("client.UploadImage: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("client.UploadImage: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("client.UploadImage: do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("client.UploadImage: %w", decodeError(resp))
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("client.UploadImage: decode response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("client.UploadImage: response missing url")
	}
	return result.URL, nil
}
