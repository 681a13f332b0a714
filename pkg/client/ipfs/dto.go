package ipfs

import (
	"context"
	"errors"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNilRequest  = errors.New("request is nil")
	ErrNilMetadata = errors.New("metadata is nil")
)

type UploadFileRequest struct {
	Filename string    `json:"filename"`
	File     io.Reader `json:"-"`
}

type UploadDirectoryRequest struct {
	Path string `json:"path"`
}

func (r *UploadFileRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Filename, validation.Required),
		validation.Field(&r.File, validation.NotNil),
	)
}

func (r *UploadDirectoryRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Path, validation.Required),
	)
}
