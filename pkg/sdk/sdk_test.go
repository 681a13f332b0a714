package sdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
	"github.com/vladislavprovich/nft-api-sdk/pkg/sdk"
)

type forwardCase struct {
	name       string
	clientOp   string
	storage    bool
	req        any
	call       func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error)
	noArgument bool
}

func forwardCases() []forwardCase {
	tokenReq := &vottun.TokenRequest{ContractAddress: "0xabc", TokenID: "1", Network: 1}
	walletReq := &vottun.GetWalletNftsRequest{WalletAddress: "0xwallet"}
	historyReq := &vottun.GetTokenHistoryRequest{InternalTokenID: "t1"}
	balanceReq := &vottun.GetAccountBalanceRequest{WalletAddress: "0xwallet", NetworkID: 1}
	txReq := &vottun.GetTransactionInfoRequest{TxHash: "0xhash", Network: 1}
	netReq := &vottun.NetworkRequest{Network: 1}
	feesReq := &vottun.GetTransactionFeesRequest{ContractAddress: "0xabc", Method: "mint", Network: 1}
	opsReq := &vottun.GetCustomerOperationsRequest{Index: 1, Quantity: 2}
	opReq := &vottun.GetCustomerOperationRequest{OperationID: "op"}
	hookReq := &vottun.WebhookRequest{URL: "https://hook"}
	erc721Req := &vottun.DeployERC721ContractRequest{Name: "n"}
	mintReq := &vottun.MintNftRequest{RecipientAddress: "0xr"}
	transferReq := &vottun.TransferNftRequest{TokenID: "3"}
	poapDeployReq := &vottun.DeployPoapContractRequest{To: "0xto"}
	batchReq := &vottun.MintBatchRequest{IDs: vottun.Uint256s(1)}
	poapTransferReq := &vottun.TransferPoapRequest{IDs: vottun.Uint256s(1)}
	poapInfoReq := &vottun.GetPoapInfoRequest{OwnerAddress: "0xo"}
	poapsReq := &vottun.GetPoapsByOwnerRequest{OwnerAddress: "0xo"}
	balanceOfReq := &vottun.BalanceOfRequest{TokenID: "9"}
	erc1155DeployReq := &vottun.DeployERC1155ContractRequest{Name: "m"}
	erc1155TransferReq := &vottun.TransferERC1155Request{IDs: vottun.Uint256s(1)}
	fileReq := &ipfs.UploadFileRequest{Filename: "f.png", File: strings.NewReader("x")}
	metadata := map[string]any{"name": "meta"}

	return []forwardCase{
		{name: "GetWalletNfts", clientOp: "GetWalletNfts", req: walletReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetWalletNfts(ctx, walletReq) }},
		{name: "GetTokenInfo", clientOp: "GetTokenInfo", req: tokenReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetTokenInfo(ctx, tokenReq) }},
		{name: "GetNftInfo", clientOp: "GetNftInfo", req: tokenReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetNftInfo(ctx, tokenReq) }},
		{name: "GetTokenHistory", clientOp: "GetTokenHistory", req: historyReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetTokenHistory(ctx, historyReq) }},
		{name: "GetWebhook", clientOp: "GetWebhook", noArgument: true,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetWebhook(ctx) }},
		{name: "GetTokenOwner", clientOp: "GetTokenOwner", req: tokenReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetTokenOwner(ctx, tokenReq) }},
		{name: "GetUserContracts", clientOp: "GetUserContracts", noArgument: true,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetUserContracts(ctx) }},
		{name: "GetAccountBalances", clientOp: "GetAccountBalances", noArgument: true,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetAccountBalances(ctx) }},
		{name: "GetAccountBalance", clientOp: "GetAccountBalance", req: balanceReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetAccountBalance(ctx, balanceReq) }},
		{name: "GetTransactionInfo", clientOp: "GetTransactionInfo", req: txReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetTransactionInfo(ctx, txReq) }},
		{name: "GetGasPrice", clientOp: "GetGasPrice", req: netReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetGasPrice(ctx, netReq) }},
		{name: "GetTransactionFees", clientOp: "GetTransactionFees", req: feesReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetTransactionFees(ctx, feesReq) }},
		{name: "GetContractTypes", clientOp: "GetContractTypes", noArgument: true,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetContractTypes(ctx) }},
		{name: "GetNetworks", clientOp: "GetNetworks", noArgument: true,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetNetworks(ctx) }},
		{name: "GetCustomerOperations", clientOp: "GetCustomerOperations", req: opsReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetCustomerOperations(ctx, opsReq) }},
		{name: "GetCustomerOperation", clientOp: "GetCustomerOperation", req: opReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetCustomerOperation(ctx, opReq) }},
		{name: "GetWallets", clientOp: "GetWallets", noArgument: true,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetWallets(ctx) }},
		{name: "GetWalletKeys", clientOp: "GetWallet", noArgument: true,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetWalletKeys(ctx) }},
		{name: "SendTestWebhook", clientOp: "SendTestWebhook", noArgument: true,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.SendTestWebhook(ctx) }},
		{name: "CreateWebhook", clientOp: "CreateWebhook", req: hookReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.CreateWebhook(ctx, hookReq) }},
		{name: "UpdateWebhook", clientOp: "UpdateWebhook", req: hookReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.UpdateWebhook(ctx, hookReq) }},
		{name: "DeployERC721Contract", clientOp: "DeployERC721Contract", req: erc721Req,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) {
				return s.DeployERC721Contract(ctx, erc721Req)
			}},
		{name: "MintNft", clientOp: "MintNft", req: mintReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.MintNft(ctx, mintReq) }},
		{name: "TransferNft", clientOp: "TransferNft", req: transferReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.TransferNft(ctx, transferReq) }},
		{name: "UploadFile", clientOp: "UploadFile", storage: true, req: fileReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.UploadFile(ctx, fileReq) }},
		{name: "UploadMetadata", clientOp: "UploadMetadata", storage: true, req: metadata,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.UploadMetadata(ctx, metadata) }},
		{name: "DeployPoapContract", clientOp: "DeployPoapContract", req: poapDeployReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) {
				return s.DeployPoapContract(ctx, poapDeployReq)
			}},
		{name: "MintBatchPoap", clientOp: "MintBatchPoap", req: batchReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.MintBatchPoap(ctx, batchReq) }},
		{name: "TransferPoap", clientOp: "TransferPoap", req: poapTransferReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.TransferPoap(ctx, poapTransferReq) }},
		{name: "GetPoapURI", clientOp: "GetPoapURI", req: tokenReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetPoapURI(ctx, tokenReq) }},
		{name: "GetPoapInfo", clientOp: "GetPoapInfo", req: poapInfoReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetPoapInfo(ctx, poapInfoReq) }},
		{name: "GetPoapsByOwner", clientOp: "GetPoapsByOwner", req: poapsReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.GetPoapsByOwner(ctx, poapsReq) }},
		{name: "BalanceOfPoap", clientOp: "BalanceOfPoap", req: balanceOfReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.BalanceOfPoap(ctx, balanceOfReq) }},
		{name: "DeployERC1155Contract", clientOp: "DeployERC1155Contract", req: erc1155DeployReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) {
				return s.DeployERC1155Contract(ctx, erc1155DeployReq)
			}},
		{name: "MintBatchERC1155", clientOp: "MintBatchERC1155", req: batchReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.MintBatchERC1155(ctx, batchReq) }},
		{name: "TransferERC1155", clientOp: "TransferERC1155", req: erc1155TransferReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) {
				return s.TransferERC1155(ctx, erc1155TransferReq)
			}},
		{name: "BalanceOfERC1155", clientOp: "BalanceOfERC1155", req: balanceOfReq,
			call: func(ctx context.Context, s *sdk.SDK) (json.RawMessage, error) { return s.BalanceOfERC1155(ctx, balanceOfReq) }},
	}
}

func TestSDK_ForwardsToClients(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	for _, tt := range forwardCases() {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mockVottunClient)
			storage := new(mockStorageClient)
			payload := json.RawMessage(`{"op":"` + tt.clientOp + `"}`)

			target := &api.Mock
			if tt.storage {
				target = &storage.Mock
			}
			args := []any{ctx}
			if !tt.noArgument {
				args = append(args, tt.req)
			}
			target.On(tt.clientOp, args...).Return(payload, nil).Once()

			s := sdk.NewWithClients(api, storage, logger)
			resp, err := tt.call(ctx, s)

			require.NoError(t, err)
			assert.Equal(t, payload, resp)
			api.AssertExpectations(t)
			storage.AssertExpectations(t)
		})
	}
}

func TestSDK_PassesRequestPointerUnchanged(t *testing.T) {
	api := new(mockVottunClient)
	req := &vottun.MintNftRequest{RecipientAddress: "0xr", BlockchainNetwork: 80001}

	api.On("MintNft", mock.Anything, mock.MatchedBy(func(got *vottun.MintNftRequest) bool {
		return got == req
	})).Return(json.RawMessage(`{}`), nil)

	s := sdk.NewWithClients(api, new(mockStorageClient), nil)
	_, err := s.MintNft(context.Background(), req)
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestSDK_PropagatesErrors(t *testing.T) {
	clientErr := errors.New("client failure")

	api := new(mockVottunClient)
	api.On("GetNetworks", mock.Anything).Return(nil, clientErr)
	storage := new(mockStorageClient)
	storage.On("UploadMetadata", mock.Anything, mock.Anything).Return(nil, clientErr)

	s := sdk.NewWithClients(api, storage, nil)

	resp, err := s.GetNetworks(context.Background())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, clientErr)

	resp, err = s.UploadMetadata(context.Background(), map[string]any{"a": 1})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, clientErr)
}

func TestSDK_HiddenOperations(t *testing.T) {
	apiType := reflect.TypeOf((*sdk.API)(nil)).Elem()
	sdkType := reflect.TypeOf(&sdk.SDK{})

	for _, name := range []string{"GetDeploymentFees", "UploadDirectory", "GetWallet"} {
		_, onInterface := apiType.MethodByName(name)
		assert.False(t, onInterface, "%s must not be on sdk.API", name)
		_, onType := sdkType.MethodByName(name)
		assert.False(t, onType, "%s must not be on *sdk.SDK", name)
	}

	_, ok := reflect.TypeOf((*vottun.Client)(nil)).Elem().MethodByName("GetDeploymentFees")
	assert.True(t, ok)
	_, ok = reflect.TypeOf((*ipfs.Client)(nil)).Elem().MethodByName("UploadDirectory")
	assert.True(t, ok)
}

func TestSDK_New_AppliesConfigPerService(t *testing.T) {
	type seen struct {
		path, app, auth string
	}
	var apiCalls, storageCalls []seen

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls = append(apiCalls, seen{r.URL.Path, r.Header.Get("x-application-vkn"), r.Header.Get("Authorization")})
		_, _ = w.Write([]byte(`[ {"id": 1} ]`))
	}))
	defer apiServer.Close()

	storageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		storageCalls = append(storageCalls, seen{r.URL.Path, r.Header.Get("x-application-vkn"), r.Header.Get("Authorization")})
		_, _ = w.Write([]byte(`{"hash":"abc"}`))
	}))
	defer storageServer.Close()

	cfg := &sdk.Config{
		AppID:   "app-1",
		Token:   "tok-1",
		APIURL:  apiServer.URL + "/core/v1",
		IPFSURL: storageServer.URL + "/ipfs/v2",
	}
	s := sdk.New(http.DefaultClient, cfg, nil)
	ctx := context.Background()

	resp, err := s.GetNetworks(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[ {"id": 1} ]`, string(resp))

	_, err = s.GetContractTypes(ctx)
	require.NoError(t, err)

	_, err = s.UploadMetadata(ctx, map[string]string{"name": "x"})
	require.NoError(t, err)

	require.Len(t, apiCalls, 2)
	assert.Equal(t, seen{"/core/v1/networks", "app-1", "Bearer tok-1"}, apiCalls[0])
	assert.Equal(t, seen{"/core/v1/contract/types", "app-1", "Bearer tok-1"}, apiCalls[1])

	require.Len(t, storageCalls, 1)
	assert.Equal(t, seen{"/ipfs/v2/file/metadata", "app-1", "Bearer tok-1"}, storageCalls[0])
}

func TestSDK_InstancesDoNotShareHeaders(t *testing.T) {
	var auths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	first := sdk.New(nil, &sdk.Config{AppID: "a", Token: "first", APIURL: server.URL, IPFSURL: server.URL}, nil)
	second := sdk.New(nil, &sdk.Config{AppID: "b", Token: "second", APIURL: server.URL, IPFSURL: server.URL}, nil)

	_, err := first.GetWallets(context.Background())
	require.NoError(t, err)
	_, err = second.GetWallets(context.Background())
	require.NoError(t, err)
	_, err = first.GetWallets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer first", "Bearer second", "Bearer first"}, auths)
}

func TestConfig_ValidateWithContext(t *testing.T) {
	valid := sdk.Config{AppID: "a", Token: "t", APIURL: "https://api.example.com", IPFSURL: "https://ipfs.example.com"}
	require.NoError(t, valid.ValidateWithContext(context.Background()))

	missing := valid
	missing.Token = ""
	require.Error(t, missing.ValidateWithContext(context.Background()))

	badURL := valid
	badURL.APIURL = "not a url"
	require.Error(t, badURL.ValidateWithContext(context.Background()))
}
