package vottun

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

type Client interface {
	GetWallets(ctx context.Context) (json.RawMessage, error)
	GetWallet(ctx context.Context) (json.RawMessage, error)
	GetWalletNfts(ctx context.Context, req *GetWalletNftsRequest) (json.RawMessage, error)
	GetTokenInfo(ctx context.Context, req *TokenRequest) (json.RawMessage, error)
	GetNftInfo(ctx context.Context, req *TokenRequest) (json.RawMessage, error)
	GetTokenHistory(ctx context.Context, req *GetTokenHistoryRequest) (json.RawMessage, error)
	GetTokenOwner(ctx context.Context, req *TokenRequest) (json.RawMessage, error)
	GetUserContracts(ctx context.Context) (json.RawMessage, error)
	GetAccountBalances(ctx context.Context) (json.RawMessage, error)
	GetAccountBalance(ctx context.Context, req *GetAccountBalanceRequest) (json.RawMessage, error)
	GetTransactionInfo(ctx context.Context, req *GetTransactionInfoRequest) (json.RawMessage, error)
	GetGasPrice(ctx context.Context, req *NetworkRequest) (json.RawMessage, error)
	GetDeploymentFees(ctx context.Context, req *GetDeploymentFeesRequest) (json.RawMessage, error)
	GetTransactionFees(ctx context.Context, req *GetTransactionFeesRequest) (json.RawMessage, error)
	GetContractTypes(ctx context.Context) (json.RawMessage, error)
	GetNetworks(ctx context.Context) (json.RawMessage, error)
	GetCustomerOperations(ctx context.Context, req *GetCustomerOperationsRequest) (json.RawMessage, error)
	GetCustomerOperation(ctx context.Context, req *GetCustomerOperationRequest) (json.RawMessage, error)

	GetWebhook(ctx context.Context) (json.RawMessage, error)
	SendTestWebhook(ctx context.Context) (json.RawMessage, error)
	CreateWebhook(ctx context.Context, req *WebhookRequest) (json.RawMessage, error)
	UpdateWebhook(ctx context.Context, req *WebhookRequest) (json.RawMessage, error)

	DeployERC721Contract(ctx context.Context, req *DeployERC721ContractRequest) (json.RawMessage, error)
	MintNft(ctx context.Context, req *MintNftRequest) (json.RawMessage, error)
	TransferNft(ctx context.Context, req *TransferNftRequest) (json.RawMessage, error)

	DeployPoapContract(ctx context.Context, req *DeployPoapContractRequest) (json.RawMessage, error)
	MintBatchPoap(ctx context.Context, req *MintBatchRequest) (json.RawMessage, error)
	TransferPoap(ctx context.Context, req *TransferPoapRequest) (json.RawMessage, error)
	GetPoapURI(ctx context.Context, req *TokenRequest) (json.RawMessage, error)
	GetPoapInfo(ctx context.Context, req *GetPoapInfoRequest) (json.RawMessage, error)
	GetPoapsByOwner(ctx context.Context, req *GetPoapsByOwnerRequest) (json.RawMessage, error)
	BalanceOfPoap(ctx context.Context, req *BalanceOfRequest) (json.RawMessage, error)

	DeployERC1155Contract(ctx context.Context, req *DeployERC1155ContractRequest) (json.RawMessage, error)
	MintBatchERC1155(ctx context.Context, req *MintBatchRequest) (json.RawMessage, error)
	TransferERC1155(ctx context.Context, req *TransferERC1155Request) (json.RawMessage, error)
	BalanceOfERC1155(ctx context.Context, req *BalanceOfRequest) (json.RawMessage, error)
}

const (
	headerApplication   = "x-application-vkn"
	headerAuthorization = "Authorization"
)

type BasicClient struct {
	core *transport.Core
}

var _ Client = (*BasicClient)(nil)

// NewBasicClient builds a client whose every request carries the application
// id and bearer token from cfg.
func NewBasicClient(httpClient *http.Client, cfg *Config, log *slog.Logger) *BasicClient {
	headers := http.Header{}
	headers.Set(headerApplication, cfg.AppID)
	headers.Set(headerAuthorization, "Bearer "+cfg.Token)

	return &BasicClient{
		core: transport.NewCore(httpClient, transport.Config{
			BaseURL: cfg.URL,
			Headers: headers,
		}, log),
	}
}

type validatable interface {
	ValidateWithContext(ctx context.Context) error
}

func validate(ctx context.Context, op string, req validatable) error {
	if err := req.ValidateWithContext(ctx); err != nil {
		return fmt.Errorf("invalid request for %s: %w", op, err)
	}
	return nil
}

func (c *BasicClient) do(
	ctx context.Context,
	op, method, path string,
	query url.Values,
	body transport.Body,
) (json.RawMessage, error) {
	resp, err := c.core.Do(ctx, method, path, query, body)
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", op, err)
	}

	return resp, nil
}

func networkQuery(id int64) url.Values {
	return url.Values{"network": {formatInt(id)}}
}
