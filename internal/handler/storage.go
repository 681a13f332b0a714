package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
)

// UploadFile expects a multipart form with a file part and an optional
// filename field overriding the part's own name.
func (h *ServiceHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		h.sendError(ctx, w, "UploadFile", badRequest(fmt.Errorf("parse multipart form: %w", err)))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.ErrorContext(ctx, "failed to remove multipart files", slog.Any("error", err))
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.sendError(ctx, w, "UploadFile", badRequest(fmt.Errorf("file part: %w", err)))
		return
	}
	defer file.Close()

	filename := r.FormValue("filename")
	if filename == "" {
		filename = header.Filename
	}

	resp, err := h.api.UploadFile(ctx, &ipfs.UploadFileRequest{Filename: filename, File: file})
	h.respond(w, r, "UploadFile", resp, err)
}

// UploadMetadata forwards the body untouched. Any JSON value is accepted; null
// is passed on as missing metadata.
func (h *ServiceHandler) UploadMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize))
	if err != nil {
		h.sendError(ctx, w, "UploadMetadata", badRequest(fmt.Errorf("read body: %w", err)))
		return
	}
	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		h.sendError(ctx, w, "UploadMetadata", badRequest(errors.New("decode body: metadata is not valid JSON")))
		return
	}

	var metadata any
	if !bytes.Equal(raw, []byte("null")) {
		metadata = json.RawMessage(raw)
	}

	resp, err := h.api.UploadMetadata(ctx, metadata)
	h.respond(w, r, "UploadMetadata", resp, err)
}
