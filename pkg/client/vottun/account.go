package vottun

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

func (c *BasicClient) GetUserContracts(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetUserContracts", http.MethodGet, "/contracts", nil, nil)
}

func (c *BasicClient) GetAccountBalances(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetAccountBalances", http.MethodGet, "/balances", nil, nil)
}

// GetAccountBalance sends its parameters as a JSON body on a GET request,
// which is what the remote API reads them from.
func (c *BasicClient) GetAccountBalance(
	ctx context.Context,
	req *GetAccountBalanceRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "GetAccountBalance", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "GetAccountBalance", http.MethodGet, "/balance", nil, transport.JSONBody(req))
}

func (c *BasicClient) GetContractTypes(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetContractTypes", http.MethodGet, "/contract/types", nil, nil)
}

func (c *BasicClient) GetNetworks(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetNetworks", http.MethodGet, "/networks", nil, nil)
}
