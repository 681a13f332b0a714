package vottun

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

func (c *BasicClient) DeployPoapContract(
	ctx context.Context,
	req *DeployPoapContractRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "DeployPoapContract", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "DeployPoapContract", http.MethodPost, "/poap/deploy", nil, transport.JSONBody(req))
}

func (c *BasicClient) MintBatchPoap(ctx context.Context, req *MintBatchRequest) (json.RawMessage, error) {
	if err := validate(ctx, "MintBatchPoap", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "MintBatchPoap", http.MethodPost, "/poap/mint", nil, transport.JSONBody(req))
}

func (c *BasicClient) TransferPoap(ctx context.Context, req *TransferPoapRequest) (json.RawMessage, error) {
	if err := validate(ctx, "TransferPoap", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "TransferPoap", http.MethodPost, "/poap/transfer", nil, transport.JSONBody(req))
}

func (c *BasicClient) GetPoapURI(ctx context.Context, req *TokenRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetPoapURI", req); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/poap/contract/%s/token/%s/uri",
		transport.PathEscape(req.ContractAddress),
		req.TokenID,
	)
	return c.do(ctx, "GetPoapURI", http.MethodGet, path, networkQuery(req.Network), nil)
}

func (c *BasicClient) GetPoapInfo(ctx context.Context, req *GetPoapInfoRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetPoapInfo", req); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/poap/owner/%s/contract/%s/token/%s/info",
		transport.PathEscape(req.OwnerAddress),
		transport.PathEscape(req.ContractAddress),
		req.TokenID,
	)
	return c.do(ctx, "GetPoapInfo", http.MethodGet, path, networkQuery(req.Network), nil)
}

func (c *BasicClient) GetPoapsByOwner(ctx context.Context, req *GetPoapsByOwnerRequest) (json.RawMessage, error) {
	if err := validate(ctx, "GetPoapsByOwner", req); err != nil {
		return nil, err
	}

	path := "/poaps/owner/" + transport.PathEscape(req.OwnerAddress)
	return c.do(ctx, "GetPoapsByOwner", http.MethodGet, path, nil, nil)
}

func (c *BasicClient) BalanceOfPoap(ctx context.Context, req *BalanceOfRequest) (json.RawMessage, error) {
	if err := validate(ctx, "BalanceOfPoap", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "BalanceOfPoap", http.MethodGet, "/poap/balanceof",
		networkQuery(req.Network), transport.JSONBody(req))
}
