package handler

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Port              string        `envconfig:"HTTP_SERVER_PORT"              default:"8080"`
	Timeout           time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_ROUTER"    default:"30s"`
	WriteTimeout      time.Duration `envconfig:"HTTP_SERVER_WRITE_TIMEOUT"     default:"30s"`
	IdleTimeout       time.Duration `envconfig:"HTTP_SERVER_IDLE_TIMEOUT"      default:"60s"`
	MaxAge            int64         `envconfig:"HTTP_SERVER_MAX_AGE"           default:"300"`
	AllowCredentials  bool          `envconfig:"HTTP_SERVER_ALLOW_CREDENTIALS" default:"false"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_SERVER_CLIENT_TIMEOUT"    default:"20s"`
	APIVersion        string        `envconfig:"HTTP_SERVER_API_VERSION"       default:"v1"`
	MaxUploadSize     int64         `envconfig:"HTTP_SERVER_MAX_UPLOAD_SIZE"   default:"33554432"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.WriteTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.IdleTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.MaxAge, validation.Min(int64(0))),
		validation.Field(&c.HTTPClientTimeout, validation.Required),
		validation.Field(&c.APIVersion, validation.Required),
		validation.Field(&c.MaxUploadSize, validation.Required, validation.Min(int64(1))),
	)
}
