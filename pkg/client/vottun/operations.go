package vottun

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

func (c *BasicClient) GetCustomerOperations(
	ctx context.Context,
	req *GetCustomerOperationsRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "GetCustomerOperations", req); err != nil {
		return nil, err
	}

	query := url.Values{
		"o": {strconv.Itoa(req.Index)},
		"n": {strconv.Itoa(req.Quantity)},
	}
	return c.do(ctx, "GetCustomerOperations", http.MethodGet, "/operations", query, nil)
}

func (c *BasicClient) GetCustomerOperation(
	ctx context.Context,
	req *GetCustomerOperationRequest,
) (json.RawMessage, error) {
	if err := validate(ctx, "GetCustomerOperation", req); err != nil {
		return nil, err
	}

	path := "/operation/" + transport.PathEscape(req.OperationID)
	return c.do(ctx, "GetCustomerOperation", http.MethodGet, path, nil, nil)
}
