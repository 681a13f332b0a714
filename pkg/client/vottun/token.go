package vottun

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

func (c *BasicClient) GetTokenInfo(ctx context.Context, req *TokenRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetTokenInfo", req); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/vottun/token/%s/info", req.TokenID)
	query := networkQuery(req.Network)
	query.Set("c", req.ContractAddress)

	return c.do(ctx, "GetTokenInfo", http.MethodGet, path, query, nil)
}

func (c *BasicClient) GetNftInfo(ctx context.Context, req *TokenRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetNftInfo", req); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/nft/contract/%s/token/%s",
		transport.PathEscape(req.ContractAddress),
		req.TokenID,
	)
	return c.do(ctx, "GetNftInfo", http.MethodGet, path, networkQuery(req.Network), nil)
}

// GetTokenHistory uses the API's internal token id, not the on-chain one.
func (c *BasicClient) GetTokenHistory(ctx context.Context, req *GetTokenHistoryRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetTokenHistory", req); err != nil {
		return nil, err
	}

	path := "/nft/" + transport.PathEscape(req.InternalTokenID) + "/history"
	return c.do(ctx, "GetTokenHistory", http.MethodGet, path, nil, nil)
}

func (c *BasicClient) GetTokenOwner(ctx context.Context, req *TokenRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetTokenOwner", req); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/vottun/contract/%s/token/%s",
		transport.PathEscape(req.ContractAddress),
		req.TokenID,
	)
	return c.do(ctx, "GetTokenOwner", http.MethodGet, path, networkQuery(req.Network), nil)
}

func (c *BasicClient) GetTransactionInfo(
	ctx context.Context,
	req *GetTransactionInfoRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "GetTransactionInfo", req); err != nil {
		return nil, err
	}

	path := "/vottun/transaction/" + transport.PathEscape(req.TxHash)
	return c.do(ctx, "GetTransactionInfo", http.MethodGet, path, networkQuery(req.Network), nil)
}
