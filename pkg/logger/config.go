package logger

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	Level       string `envconfig:"LOGGER_LEVEL"       default:"info"   toml:"level"`
	Format      string `envconfig:"LOGGER_FORMAT"      default:"json"   toml:"format"`
	ServiceName string `envconfig:"SERVICE_NAME"       default:"nftapi" toml:"service_name"`
	WithSource  bool   `envconfig:"LOGGER_WITH_SOURCE" default:"false"  toml:"with_source"`
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.Level, validation.Required, validation.By(knownLevel)),
		validation.Field(&c.Format, validation.Required, validation.By(knownFormat)),
		validation.Field(&c.ServiceName, validation.Required),
	)
}
