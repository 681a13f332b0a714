package sdk

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

// Config is everything the SDK needs; it is copied into each client at
// construction and never read again.
type Config struct {
	AppID   string `envconfig:"NFT_API_APP_ID"   toml:"app_id"`
	Token   string `envconfig:"NFT_API_TOKEN"    toml:"token"`
	APIURL  string `envconfig:"NFT_API_URL"      toml:"api_url"`
	IPFSURL string `envconfig:"NFT_IPFS_URL"     toml:"ipfs_url"`
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.AppID, validation.Required),
		validation.Field(&c.Token, validation.Required),
		validation.Field(&c.APIURL, validation.Required, is.URL),
		validation.Field(&c.IPFSURL, validation.Required, is.URL),
	)
}

func (c *Config) vottunConfig() *vottun.Config {
	return &vottun.Config{
		AppID: c.AppID,
		Token: c.Token,
		URL:   c.APIURL,
	}
}

func (c *Config) ipfsConfig() *ipfs.Config {
	return &ipfs.Config{
		AppID: c.AppID,
		Token: c.Token,
		URL:   c.IPFSURL,
	}
}
