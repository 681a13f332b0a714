package sdk_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

type mockVottunClient struct {
	mock.Mock
}

var _ vottun.Client = (*mockVottunClient)(nil)

func rawResult(args mock.Arguments) (json.RawMessage, error) {
	resp, _ := args.Get(0).(json.RawMessage)
	return resp, args.Error(1)
}

func (m *mockVottunClient) GetWallets(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockVottunClient) GetWallet(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockVottunClient) GetWalletNfts(ctx context.Context, req *vottun.GetWalletNftsRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetTokenInfo(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetNftInfo(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetTokenHistory(ctx context.Context, req *vottun.GetTokenHistoryRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetTokenOwner(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetUserContracts(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockVottunClient) GetAccountBalances(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockVottunClient) GetAccountBalance(ctx context.Context, req *vottun.GetAccountBalanceRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetTransactionInfo(ctx context.Context, req *vottun.GetTransactionInfoRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetGasPrice(ctx context.Context, req *vottun.NetworkRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetDeploymentFees(ctx context.Context, req *vottun.GetDeploymentFeesRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetTransactionFees(ctx context.Context, req *vottun.GetTransactionFeesRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetContractTypes(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockVottunClient) GetNetworks(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockVottunClient) GetCustomerOperations(ctx context.Context, req *vottun.GetCustomerOperationsRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetCustomerOperation(ctx context.Context, req *vottun.GetCustomerOperationRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetWebhook(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockVottunClient) SendTestWebhook(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *mockVottunClient) CreateWebhook(ctx context.Context, req *vottun.WebhookRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) UpdateWebhook(ctx context.Context, req *vottun.WebhookRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) DeployERC721Contract(ctx context.Context, req *vottun.DeployERC721ContractRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) MintNft(ctx context.Context, req *vottun.MintNftRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) TransferNft(ctx context.Context, req *vottun.TransferNftRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) DeployPoapContract(ctx context.Context, req *vottun.DeployPoapContractRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) MintBatchPoap(ctx context.Context, req *vottun.MintBatchRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) TransferPoap(ctx context.Context, req *vottun.TransferPoapRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetPoapURI(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetPoapInfo(ctx context.Context, req *vottun.GetPoapInfoRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) GetPoapsByOwner(ctx context.Context, req *vottun.GetPoapsByOwnerRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) BalanceOfPoap(ctx context.Context, req *vottun.BalanceOfRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) DeployERC1155Contract(ctx context.Context, req *vottun.DeployERC1155ContractRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) MintBatchERC1155(ctx context.Context, req *vottun.MintBatchRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) TransferERC1155(ctx context.Context, req *vottun.TransferERC1155Request) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockVottunClient) BalanceOfERC1155(ctx context.Context, req *vottun.BalanceOfRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

type mockStorageClient struct {
	mock.Mock
}

var _ ipfs.Client = (*mockStorageClient)(nil)

func (m *mockStorageClient) UploadFile(ctx context.Context, req *ipfs.UploadFileRequest) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockStorageClient) UploadDirectory(
	ctx context.Context,
	req *ipfs.UploadDirectoryRequest,
) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, req))
}

func (m *mockStorageClient) UploadMetadata(ctx context.Context, metadata any) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, metadata))
}
