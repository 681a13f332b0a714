package handler_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
	"github.com/vladislavprovich/nft-api-sdk/pkg/sdk"
)

type mockAPI struct {
	mock.Mock
}

var _ sdk.API = (*mockAPI)(nil)

func rawResult(args mock.Arguments) (json.RawMessage, error) {
	resp, _ := args.Get(0).(json.RawMessage)
	return resp, args.Error(1)
}

func (m *mockAPI) GetWalletNfts(ctx context.Context, req *vottun.GetWalletNftsRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetTokenInfo(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetNftInfo(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetTokenHistory(ctx context.Context, req *vottun.GetTokenHistoryRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetWebhook(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockAPI) GetTokenOwner(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetUserContracts(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockAPI) GetAccountBalances(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockAPI) GetAccountBalance(ctx context.Context, req *vottun.GetAccountBalanceRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetTransactionInfo(ctx context.Context, req *vottun.GetTransactionInfoRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetGasPrice(ctx context.Context, req *vottun.NetworkRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetTransactionFees(ctx context.Context, req *vottun.GetTransactionFeesRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetContractTypes(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockAPI) GetNetworks(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockAPI) GetCustomerOperations(ctx context.Context, req *vottun.GetCustomerOperationsRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetCustomerOperation(ctx context.Context, req *vottun.GetCustomerOperationRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetWallets(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockAPI) GetWalletKeys(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockAPI) SendTestWebhook(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockAPI) CreateWebhook(ctx context.Context, req *vottun.WebhookRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) DeployERC721Contract(ctx context.Context, req *vottun.DeployERC721ContractRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) MintNft(ctx context.Context, req *vottun.MintNftRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) TransferNft(ctx context.Context, req *vottun.TransferNftRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) UpdateWebhook(ctx context.Context, req *vottun.WebhookRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) UploadFile(ctx context.Context, req *ipfs.UploadFileRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) UploadMetadata(ctx context.Context, metadata any) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, metadata))
}

func (m *mockAPI) DeployPoapContract(ctx context.Context, req *vottun.DeployPoapContractRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) MintBatchPoap(ctx context.Context, req *vottun.MintBatchRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) TransferPoap(ctx context.Context, req *vottun.TransferPoapRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetPoapURI(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetPoapInfo(ctx context.Context, req *vottun.GetPoapInfoRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) GetPoapsByOwner(ctx context.Context, req *vottun.GetPoapsByOwnerRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) BalanceOfPoap(ctx context.Context, req *vottun.BalanceOfRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) DeployERC1155Contract(ctx context.Context, req *vottun.DeployERC1155ContractRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) MintBatchERC1155(ctx context.Context, req *vottun.MintBatchRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) TransferERC1155(ctx context.Context, req *vottun.TransferERC1155Request) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockAPI) BalanceOfERC1155(ctx context.Context, req *vottun.BalanceOfRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}
