package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"

	"github.com/vladislavprovich/nft-api-sdk/pkg/logger"
	"github.com/vladislavprovich/nft-api-sdk/pkg/sdk"
)

const (
	DefaultAPIURL  = "https://api.vottun.tech/core/v1/evm"
	DefaultIPFSURL = "https://ipfsapi.vottun.tech/ipfs/v2"
)

// Config is the CLI configuration file. Credentials and URLs may also come
// from the environment; logging is set only by the file and --log-level.
type Config struct {
	sdk.Config

	Timeout duration      `toml:"timeout" envconfig:"NFT_API_TIMEOUT"`
	Logger  logger.Config `toml:"logger"  ignored:"true"`
}

// duration lets TOML files write timeouts as "15s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// Overrides are the values given on the command line. Empty fields are ignored.
type Overrides struct {
	AppID    string
	Token    string
	APIURL   string
	IPFSURL  string
	LogLevel string
}

func DefaultConfig() *Config {
	return &Config{
		Config: sdk.Config{
			APIURL:  DefaultAPIURL,
			IPFSURL: DefaultIPFSURL,
		},
		Timeout: duration{30 * time.Second},
		Logger: logger.Config{
			Level:       logger.LevelWarn,
			Format:      logger.FormatText,
			ServiceName: "nftapi",
		},
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "nftapi", "config.toml"), nil
}

// LoadConfig layers defaults, the TOML file at path, the environment and
// overrides, in that order. A missing file is an error only when required.
func LoadConfig(ctx context.Context, path string, required bool, overrides Overrides) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg.apply(overrides)

	if err := cfg.ValidateWithContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(o Overrides) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.AppID, o.AppID)
	set(&c.Token, o.Token)
	set(&c.APIURL, o.APIURL)
	set(&c.IPFSURL, o.IPFSURL)
	set(&c.Logger.Level, o.LogLevel)
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	if err := c.Config.ValidateWithContext(ctx); err != nil {
		return err
	}
	if c.Timeout.Duration <= 0 {
		return validation.Errors{"timeout": errors.New("must be a positive duration")}
	}
	if err := c.Logger.ValidateWithContext(ctx); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	return nil
}
