package apsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/noah-isme/aps-console/internal/models"
)

// File is a named payload for multipart upload.
type File struct {
	Name    string
	Content io.Reader
}

// UploadSalesPlan posts the sales plan spreadsheet as the single multipart part "file".
func (c *Client) UploadSalesPlan(ctx context.Context, file File) (*models.UploadResult, error) {
	const operation = "upload_sales_plan"
	if file.Content == nil {
		return nil, fmt.Errorf("%s: file content is nil", operation)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: create form file: %w", operation, err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, fmt.Errorf("%s: copy file: %w", operation, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%s: close multipart writer: %w", operation, err)
	}

	resp, err := c.do(ctx, request{
		operation:   operation,
		kind:        KindUpload,
		method:      http.MethodPost,
		path:        "/upload/sales-plan",
		body:        body,
		contentType: writer.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	var result models.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return &result, nil
}
