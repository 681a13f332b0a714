package vottun

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

func (c *BasicClient) GetWallets(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetWallets", http.MethodGet, "/vottun/wallets", nil, nil)
}

// GetWallet returns the custodial wallet keys of the account.
func (c *BasicClient) GetWallet(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetWallet", http.MethodGet, "/vottun/wallet", nil, nil)
}

func (c *BasicClient) GetWalletNfts(ctx context.Context, req *GetWalletNftsRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetWalletNfts", req); err != nil {
		return nil, err
	}

	path := "/wallet/" + transport.PathEscape(req.WalletAddress) + "/nfts"
	return c.do(ctx, "GetWalletNfts", http.MethodGet, path, nil, nil)
}
