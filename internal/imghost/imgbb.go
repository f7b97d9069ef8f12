// Package imghost uploads images to ImgBB and hands back the hosted URL.
// The marketplace never stores image bytes itself; meals and categories keep
// only the returned URL.
package imghost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const defaultUploadURL = "https://api.imgbb.com/1/upload"

var ErrMissingAPIKey = errors.New("imgbb api key not configured")

type Client struct {
	APIKey    string
	UploadURL string
	HTTP      *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		APIKey:    apiKey,
		UploadURL: defaultUploadURL,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload posts the image as multipart form data and returns the public URL.
func (c *Client) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.UploadURL+"?key="+c.APIKey, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload: %w", err)
	}
	defer res.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("image upload: decode response: %w", err)
	}
	if res.StatusCode != http.StatusOK || !out.Success {
		if out.Error.Message != "" {
			return "", fmt.Errorf("image upload: %s", out.Error.Message)
		}
		return "", fmt.Errorf("image upload failed: %s", res.Status)
	}
	return out.Data.DisplayURL, nil
}
