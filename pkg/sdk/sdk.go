// Package sdk exposes the NFT API and the IPFS storage API behind one type.
//
// Every method sends exactly one HTTP request and returns the remote body
// unchanged. Failures are returned as errors: *transport.APIError for non-2xx
// answers, validation.Errors for rejected input, and wrapped transport errors
// otherwise.
package sdk

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

// API is the public surface. Deployment fee lookup and directory upload are
// left out on purpose; they remain on the underlying clients.
type API interface {
	GetWalletNfts(ctx context.Context, req *vottun.GetWalletNftsRequest) (json.RawMessage, error)
	GetTokenInfo(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error)
	GetNftInfo(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error)
	GetTokenHistory(ctx context.Context, req *vottun.GetTokenHistoryRequest) (json.RawMessage, error)
	GetWebhook(ctx context.Context) (json.RawMessage, error)
	GetTokenOwner(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error)
	GetUserContracts(ctx context.Context) (json.RawMessage, error)
	GetAccountBalances(ctx context.Context) (json.RawMessage, error)
	GetAccountBalance(ctx context.Context, req *vottun.GetAccountBalanceRequest) (json.RawMessage, error)
	GetTransactionInfo(ctx context.Context, req *vottun.GetTransactionInfoRequest) (json.RawMessage, error)
	GetGasPrice(ctx context.Context, req *vottun.NetworkRequest) (json.RawMessage, error)
	GetTransactionFees(ctx context.Context, req *vottun.GetTransactionFeesRequest) (json.RawMessage, error)
	GetContractTypes(ctx context.Context) (json.RawMessage, error)
	GetNetworks(ctx context.Context) (json.RawMessage, error)
	GetCustomerOperations(ctx context.Context, req *vottun.GetCustomerOperationsRequest) (json.RawMessage, error)
	GetCustomerOperation(ctx context.Context, req *vottun.GetCustomerOperationRequest) (json.RawMessage, error)
	GetWallets(ctx context.Context) (json.RawMessage, error)
	GetWalletKeys(ctx context.Context) (json.RawMessage, error)
	SendTestWebhook(ctx context.Context) (json.RawMessage, error)

	CreateWebhook(ctx context.Context, req *vottun.WebhookRequest) (json.RawMessage, error)
	DeployERC721Contract(ctx context.Context, req *vottun.DeployERC721ContractRequest) (json.RawMessage, error)
	MintNft(ctx context.Context, req *vottun.MintNftRequest) (json.RawMessage, error)
	TransferNft(ctx context.Context, req *vottun.TransferNftRequest) (json.RawMessage, error)
	UpdateWebhook(ctx context.Context, req *vottun.WebhookRequest) (json.RawMessage, error)

	UploadFile(ctx context.Context, req *ipfs.UploadFileRequest) (json.RawMessage, error)
	UploadMetadata(ctx context.Context, metadata any) (json.RawMessage, error)

	DeployPoapContract(ctx context.Context, req *vottun.DeployPoapContractRequest) (json.RawMessage, error)
	MintBatchPoap(ctx context.Context, req *vottun.MintBatchRequest) (json.RawMessage, error)
	TransferPoap(ctx context.Context, req *vottun.TransferPoapRequest) (json.RawMessage, error)
	GetPoapURI(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error)
	GetPoapInfo(ctx context.Context, req *vottun.GetPoapInfoRequest) (json.RawMessage, error)
	GetPoapsByOwner(ctx context.Context, req *vottun.GetPoapsByOwnerRequest) (json.RawMessage, error)
	BalanceOfPoap(ctx context.Context, req *vottun.BalanceOfRequest) (json.RawMessage, error)

	DeployERC1155Contract(ctx context.Context, req *vottun.DeployERC1155ContractRequest) (json.RawMessage, error)
	MintBatchERC1155(ctx context.Context, req *vottun.MintBatchRequest) (json.RawMessage, error)
	TransferERC1155(ctx context.Context, req *vottun.TransferERC1155Request) (json.RawMessage, error)
	BalanceOfERC1155(ctx context.Context, req *vottun.BalanceOfRequest) (json.RawMessage, error)
}

type SDK struct {
	logger  *slog.Logger
	api     vottun.Client
	storage ipfs.Client
}

var _ API = (*SDK)(nil)

// New builds both clients from cfg. They share httpClient but not headers.
func New(httpClient *http.Client, cfg *Config, log *slog.Logger) *SDK {
	return NewWithClients(
		vottun.NewBasicClient(httpClient, cfg.vottunConfig(), log),
		ipfs.NewBasicClient(httpClient, cfg.ipfsConfig(), log),
		log,
	)
}

func NewWithClients(api vottun.Client, storage ipfs.Client, log *slog.Logger) *SDK {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &SDK{
		logger:  log,
		api:     api,
		storage: storage,
	}
}

func forward[Req any](
	ctx context.Context,
	s *SDK,
	op string,
	req Req,
	fn func(context.Context, Req) (json.RawMessage, error),
) (json.RawMessage, error) {
	s.logger.DebugContext(ctx, op, slog.Any("req", req))

	resp, err := fn(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "sdk "+op, slog.Any("error", err))
		return nil, err
	}

	return resp, nil
}

func forwardNoArgs(
	ctx context.Context,
	s *SDK,
	op string,
	fn func(context.Context) (json.RawMessage, error),
) (json.RawMessage, error) {
	s.logger.DebugContext(ctx, op)

	resp, err := fn(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "sdk "+op, slog.Any("error", err))
		return nil, err
	}

	return resp, nil
}
