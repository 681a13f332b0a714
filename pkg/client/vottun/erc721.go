package vottun

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

func (c *BasicClient) DeployERC721Contract(
	ctx context.Context,
	req *DeployERC721ContractRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "DeployERC721Contract", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "DeployERC721Contract", http.MethodPost, "/erc721/deploy", nil, transport.JSONBody(req))
}

func (c *BasicClient) MintNft(ctx context.Context, req *MintNftRequest) (json.RawMessage, error) {
	if err := validate(ctx, "MintNft", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "MintNft", http.MethodPost, "/vottun/mint", nil, transport.JSONBody(req))
}

func (c *BasicClient) TransferNft(ctx context.Context, req *TransferNftRequest) (json.RawMessage, error) {
	if err := validate(ctx, "TransferNft", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "TransferNft", http.MethodPost, "/vottun/transfer", nil, transport.JSONBody(req))
}
