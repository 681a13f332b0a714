package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/nft-api-sdk/pkg/logger"
)

func TestConfig_ValidateWithContext(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{name: "json info", cfg: logger.Config{Level: "info", Format: "json", ServiceName: "svc"}},
		{name: "text upper case", cfg: logger.Config{Level: "DEBUG", Format: "TEXT", ServiceName: "svc"}},
		{name: "unknown level", cfg: logger.Config{Level: "trace", Format: "json", ServiceName: "svc"}, wantErr: true},
		{name: "unknown format", cfg: logger.Config{Level: "info", Format: "xml", ServiceName: "svc"}, wantErr: true},
		{name: "missing service", cfg: logger.Config{Level: "info", Format: "json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateWithContext(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(context.Background(), &logger.Config{
		Level:       "warn",
		Format:      "json",
		ServiceName: "gateway",
	}, &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "gateway", entry["service"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(context.Background(), &logger.Config{
		Level:       "info",
		Format:      "text",
		ServiceName: "cli",
	}, &buf)
	require.NoError(t, err)

	log.Printf("listening on %s", ":8080")
	assert.Contains(t, buf.String(), `msg="listening on :8080"`)
	assert.Contains(t, buf.String(), "service=cli")
}

func TestNewWithWriter_InvalidConfig(t *testing.T) {
	_, err := logger.NewWithWriter(context.Background(), &logger.Config{Level: "loud", Format: "json", ServiceName: "x"}, &bytes.Buffer{})
	assert.Error(t, err)
}
