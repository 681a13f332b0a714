package ipfs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

type Client interface {
	UploadFile(ctx context.Context, req *UploadFileRequest) (json.RawMessage, error)
	UploadDirectory(ctx context.Context, req *UploadDirectoryRequest) (json.RawMessage, error)
	UploadMetadata(ctx context.Context, metadata any) (json.RawMessage, error)
}

type BasicClient struct {
	core *transport.Core
}

var _ Client = (*BasicClient)(nil)

// NewBasicClient builds a storage client carrying the same application id
// and bearer token as the blockchain client.
func NewBasicClient(httpClient *http.Client, cfg *Config, log *slog.Logger) *BasicClient {
	headers := http.Header{}
	headers.Set("x-application-vkn", cfg.AppID)
	headers.Set("Authorization", "Bearer "+cfg.Token)

	return &BasicClient{
		core: transport.NewCore(httpClient, transport.Config{
			BaseURL: cfg.URL,
			Headers: headers,
		}, log),
	}
}
