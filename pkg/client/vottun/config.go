package vottun

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Config struct {
	AppID string `envconfig:"NFT_API_APP_ID"`
	Token string `envconfig:"NFT_API_TOKEN"`
	URL   string `envconfig:"NFT_API_URL"`
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.AppID, validation.Required),
		validation.Field(&c.Token, validation.Required),
		validation.Field(&c.URL, validation.Required, is.URL),
	)
}
