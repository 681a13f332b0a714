package vottun

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
)

const webhookPath = "/config/webhook"

func (c *BasicClient) GetWebhook(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "GetWebhook", http.MethodGet, webhookPath, nil, nil)
}

func (c *BasicClient) SendTestWebhook(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "SendTestWebhook", http.MethodGet, webhookPath+"/test", nil, nil)
}

func (c *BasicClient) CreateWebhook(ctx context.Context, req *WebhookRequest) (json.RawMessage, error) {
	if err := validate(ctx, "CreateWebhook", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "CreateWebhook", http.MethodPost, webhookPath, nil, webhookForm(req))
}

func (c *BasicClient) UpdateWebhook(ctx context.Context, req *WebhookRequest) (json.RawMessage, error) {
	if err := validate(ctx, "UpdateWebhook", req); err != nil {
		return nil, err
	}

	return c.do(ctx, "UpdateWebhook", http.MethodPut, webhookPath, nil, webhookForm(req))
}

func webhookForm(req *WebhookRequest) transport.Body {
	return transport.FormBody(url.Values{"url": {req.URL}})
}
