package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

// UploadFile sends the blob as multipart form data with a "filename" field
// and a "file" part.
func (c *BasicClient) UploadFile(ctx context.Context, req *UploadFileRequest) (json.RawMessage, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid request for UploadFile: %w", err)
	}

	body := transport.MultipartBody(
		[][2]string{{"filename", req.Filename}},
		transport.File{Field: "file", Filename: req.Filename, Content: req.File},
	)

	resp, err := c.core.Do(ctx, http.MethodPost, "/file/upload", nil, body)
	if err != nil {
		return nil, fmt.Errorf("error calling UploadFile: %w", err)
	}

	return resp, nil
}

func (c *BasicClient) UploadDirectory(ctx context.Context, req *UploadDirectoryRequest) (json.RawMessage, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid request for UploadDirectory: %w", err)
	}

	body := transport.FormBody(url.Values{"path": {req.Path}})

	resp, err := c.core.Do(ctx, http.MethodPost, "/upload/directory", nil, body)
	if err != nil {
		return nil, fmt.Errorf("error calling UploadDirectory: %w", err)
	}

	return resp, nil
}

// UploadMetadata posts metadata as JSON exactly as it marshals. A
// json.RawMessage keeps its key order and number digits.
func (c *BasicClient) UploadMetadata(ctx context.Context, metadata any) (json.RawMessage, error) {
	if isNilMetadata(metadata) {
		return nil, fmt.Errorf("invalid request for UploadMetadata: %w", ErrNilMetadata)
	}

	resp, err := c.core.Do(ctx, http.MethodPost, "/file/metadata", nil, transport.JSONBody(metadata))
	if err != nil {
		return nil, fmt.Errorf("error calling UploadMetadata: %w", err)
	}

	return resp, nil
}

func isNilMetadata(metadata any) bool {
	switch m := metadata.(type) {
	case nil:
		return true
	case json.RawMessage:
		trimmed := bytes.TrimSpace(m)
		return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
	}

	v := reflect.ValueOf(metadata)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
