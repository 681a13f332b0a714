package sdk

import (
	"context"
	"encoding/json"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (s *SDK) GetWalletNfts(ctx context.Context, req *vottun.GetWalletNftsRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetWalletNfts", req, s.api.GetWalletNfts)
}

func (s *SDK) GetTokenInfo(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetTokenInfo", req, s.api.GetTokenInfo)
}

func (s *SDK) GetNftInfo(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetNftInfo", req, s.api.GetNftInfo)
}

func (s *SDK) GetTokenHistory(ctx context.Context, req *vottun.GetTokenHistoryRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetTokenHistory", req, s.api.GetTokenHistory)
}

func (s *SDK) GetWebhook(ctx context.Context) (json.RawMessage, error) {
	return forwardNoArgs(ctx, s, "GetWebhook", s.api.GetWebhook)
}

func (s *SDK) GetTokenOwner(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetTokenOwner", req, s.api.GetTokenOwner)
}

func (s *SDK) GetUserContracts(ctx context.Context) (json.RawMessage, error) {
	return forwardNoArgs(ctx, s, "GetUserContracts", s.api.GetUserContracts)
}

func (s *SDK) GetAccountBalances(ctx context.Context) (json.RawMessage, error) {
	return forwardNoArgs(ctx, s, "GetAccountBalances", s.api.GetAccountBalances)
}

func (s *SDK) GetAccountBalance(ctx context.Context, req *vottun.GetAccountBalanceRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetAccountBalance", req, s.api.GetAccountBalance)
}

func (s *SDK) GetTransactionInfo(
	ctx context.Context,
	req *vottun.GetTransactionInfoRequest,
) (json.RawMessage, error) {
	return forward(ctx, s, "GetTransactionInfo", req, s.api.GetTransactionInfo)
}

func (s *SDK) GetGasPrice(ctx context.Context, req *vottun.NetworkRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetGasPrice", req, s.api.GetGasPrice)
}

func (s *SDK) GetTransactionFees(
	ctx context.Context,
	req *vottun.GetTransactionFeesRequest,
) (json.RawMessage, error) {
	return forward(ctx, s, "GetTransactionFees", req, s.api.GetTransactionFees)
}

func (s *SDK) GetContractTypes(ctx context.Context) (json.RawMessage, error) {
	return forwardNoArgs(ctx, s, "GetContractTypes", s.api.GetContractTypes)
}

func (s *SDK) GetNetworks(ctx context.Context) (json.RawMessage, error) {
	return forwardNoArgs(ctx, s, "GetNetworks", s.api.GetNetworks)
}

func (s *SDK) GetCustomerOperations(
	ctx context.Context,
	req *vottun.GetCustomerOperationsRequest,
) (json.RawMessage, error) {
	return forward(ctx, s, "GetCustomerOperations", req, s.api.GetCustomerOperations)
}

func (s *SDK) GetCustomerOperation(
	ctx context.Context,
	req *vottun.GetCustomerOperationRequest,
) (json.RawMessage, error) {
	return forward(ctx, s, "GetCustomerOperation", req, s.api.GetCustomerOperation)
}

func (s *SDK) GetWallets(ctx context.Context) (json.RawMessage, error) {
	return forwardNoArgs(ctx, s, "GetWallets", s.api.GetWallets)
}

// GetWalletKeys is GetWallet on the underlying client.
func (s *SDK) GetWalletKeys(ctx context.Context) (json.RawMessage, error) {
	return forwardNoArgs(ctx, s, "GetWalletKeys", s.api.GetWallet)
}

func (s *SDK) SendTestWebhook(ctx context.Context) (json.RawMessage, error) {
	return forwardNoArgs(ctx, s, "SendTestWebhook", s.api.SendTestWebhook)
}

func (s *SDK) CreateWebhook(ctx context.Context, req *vottun.WebhookRequest) (json.RawMessage, error) {
	return forward(ctx, s, "CreateWebhook", req, s.api.CreateWebhook)
}

func (s *SDK) DeployERC721Contract(
	ctx context.Context,
	req *vottun.DeployERC721ContractRequest,
) (json.RawMessage, error) {
	return forward(ctx, s, "DeployERC721Contract", req, s.api.DeployERC721Contract)
}

func (s *SDK) MintNft(ctx context.Context, req *vottun.MintNftRequest) (json.RawMessage, error) {
	return forward(ctx, s, "MintNft", req, s.api.MintNft)
}

func (s *SDK) TransferNft(ctx context.Context, req *vottun.TransferNftRequest) (json.RawMessage, error) {
	return forward(ctx, s, "TransferNft", req, s.api.TransferNft)
}

func (s *SDK) UpdateWebhook(ctx context.Context, req *vottun.WebhookRequest) (json.RawMessage, error) {
	return forward(ctx, s, "UpdateWebhook", req, s.api.UpdateWebhook)
}

func (s *SDK) UploadFile(ctx context.Context, req *ipfs.UploadFileRequest) (json.RawMessage, error) {
	return forward(ctx, s, "UploadFile", req, s.storage.UploadFile)
}

func (s *SDK) UploadMetadata(ctx context.Context, metadata any) (json.RawMessage, error) {
	return forward(ctx, s, "UploadMetadata", metadata, s.storage.UploadMetadata)
}

func (s *SDK) DeployPoapContract(
	ctx context.Context,
	req *vottun.DeployPoapContractRequest,
) (json.RawMessage, error) {
	return forward(ctx, s, "DeployPoapContract", req, s.api.DeployPoapContract)
}

func (s *SDK) MintBatchPoap(ctx context.Context, req *vottun.MintBatchRequest) (json.RawMessage, error) {
	return forward(ctx, s, "MintBatchPoap", req, s.api.MintBatchPoap)
}

func (s *SDK) TransferPoap(ctx context.Context, req *vottun.TransferPoapRequest) (json.RawMessage, error) {
	return forward(ctx, s, "TransferPoap", req, s.api.TransferPoap)
}

func (s *SDK) GetPoapURI(ctx context.Context, req *vottun.TokenRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetPoapURI", req, s.api.GetPoapURI)
}

func (s *SDK) GetPoapInfo(ctx context.Context, req *vottun.GetPoapInfoRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetPoapInfo", req, s.api.GetPoapInfo)
}

func (s *SDK) GetPoapsByOwner(ctx context.Context, req *vottun.GetPoapsByOwnerRequest) (json.RawMessage, error) {
	return forward(ctx, s, "GetPoapsByOwner", req, s.api.GetPoapsByOwner)
}

func (s *SDK) BalanceOfPoap(ctx context.Context, req *vottun.BalanceOfRequest) (json.RawMessage, error) {
	return forward(ctx, s, "BalanceOfPoap", req, s.api.BalanceOfPoap)
}

func (s *SDK) DeployERC1155Contract(
	ctx context.Context,
	req *vottun.DeployERC1155ContractRequest,
) (json.RawMessage, error) {
	return forward(ctx, s, "DeployERC1155Contract", req, s.api.DeployERC1155Contract)
}

func (s *SDK) MintBatchERC1155(ctx context.Context, req *vottun.MintBatchRequest) (json.RawMessage, error) {
	return forward(ctx, s, "MintBatchERC1155", req, s.api.MintBatchERC1155)
}

func (s *SDK) TransferERC1155(ctx context.Context, req *vottun.TransferERC1155Request) (json.RawMessage, error) {
	return forward(ctx, s, "TransferERC1155", req, s.api.TransferERC1155)
}

func (s *SDK) BalanceOfERC1155(ctx context.Context, req *vottun.BalanceOfRequest) (json.RawMessage, error) {
	return forward(ctx, s, "BalanceOfERC1155", req, s.api.BalanceOfERC1155)
}
