package vottun

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

func (c *BasicClient) DeployERC1155Contract(
	ctx context.Context,
	req *DeployERC1155ContractRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "DeployERC1155Contract", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "DeployERC1155Contract", http.MethodPost, "/erc1155/deploy", nil, transport.JSONBody(req))
}

func (c *BasicClient) MintBatchERC1155(ctx context.Context, req *MintBatchRequest) (json.RawMessage, error) {
	if err := validate(ctx, "MintBatchERC1155", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "MintBatchERC1155", http.MethodPost, "/erc1155/mint", nil, transport.JSONBody(req))
}

func (c *BasicClient) TransferERC1155(ctx context.Context, req *TransferERC1155Request) (json.RawMessage, error) {
	if err := validate(ctx, "TransferERC1155", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "TransferERC1155", http.MethodPost, "/erc1155/transfer", nil, transport.JSONBody(req))
}

// BalanceOfERC1155 sends its body on a GET, like BalanceOfPoap.
func (c *BasicClient) BalanceOfERC1155(ctx context.Context, req *BalanceOfRequest) (json.RawMessage, error) {
	if err := validate(ctx, "BalanceOfERC1155", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "BalanceOfERC1155", http.MethodGet, "/erc1155/balanceof",
		networkQuery(req.Network), transport.JSONBody(req))
}
