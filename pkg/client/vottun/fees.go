package vottun

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

func (c *BasicClient) GetGasPrice(ctx context.Context, req *NetworkRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetGasPrice", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "GetGasPrice", http.MethodGet, "/vottun/gasprice", networkQuery(req.Network), nil)
}

func (c *BasicClient) GetDeploymentFees(
	ctx context.Context,
	req *GetDeploymentFeesRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "GetDeploymentFees", req); err != nil {
		return nil, err
	}

	path := "/fees/contract/" + transport.PathEscape(req.ContractAddress) + "/deploy"
	return c.do(ctx, "GetDeploymentFees", http.MethodGet, path, networkQuery(req.Network), nil)
}

func (c *BasicClient) GetTransactionFees(
	ctx context.Context,
	req *GetTransactionFeesRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "GetTransactionFees", req); err != nil {
		return nil, err
	}

	path := "/fees/contract/" + transport.PathEscape(req.ContractAddress) +
		"/" + transport.PathEscape(req.Method)
	return c.do(ctx, "GetTransactionFees", http.MethodGet, path, networkQuery(req.Network), nil)
}
