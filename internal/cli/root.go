// Package cli implements the nftapi command line client on top of pkg/sdk.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vladislavprovich/nft-api-sdk/pkg/logger"
	"github.com/vladislavprovich/nft-api-sdk/pkg/sdk"
)

type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	overrides  Overrides

	api sdk.API
}

// NewRootCommand builds the command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "nftapi",
		Short: "Command line client for the NFT and IPFS APIs",
		Long: `nftapi calls the NFT API and its IPFS storage service.

Configuration is read from ~/.config/nftapi/config.toml, then from the
environment (NFT_API_APP_ID, NFT_API_TOKEN, NFT_API_URL, NFT_IPFS_URL),
then from flags.

Examples:
  nftapi networks
  nftapi gas-price --network 80001
  nftapi token-info 0x5FbDB2315678afecb367f032d93F642f64180aa3 1 --network 80001
  nftapi upload-metadata token.yaml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.config/nftapi/config.toml)")
	flags.StringVar(&a.overrides.AppID, "app-id", "", "application id")
	flags.StringVar(&a.overrides.Token, "token", "", "API token")
	flags.StringVar(&a.overrides.APIURL, "api-url", "", "NFT API base URL")
	flags.StringVar(&a.overrides.IPFSURL, "ipfs-url", "", "IPFS API base URL")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		a.accountCommands()...,
	)
	root.AddCommand(
		a.tokenCommands()...,
	)
	root.AddCommand(
		a.webhookCommand(),
		a.mintCommand(),
		a.transferCommand(),
		a.uploadFileCommand(),
		a.uploadMetadataCommand(),
	)

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(errOut, "Error: %s\n", err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	path, required := a.configPath, true
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return err
		}
		required = false
	}

	cfg, err := LoadConfig(ctx, path, required, a.overrides)
	if err != nil {
		return err
	}

	log, err := logger.NewWithWriter(ctx, &cfg.Logger, a.errOut)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.Timeout.Duration}
	a.api = sdk.New(httpClient, &cfg.Config, log.Logger)
	return nil
}

type call func(ctx context.Context) (json.RawMessage, error)

// run executes fn and pretty prints the response.
func (a *app) run(cmd *cobra.Command, fn call) error {
	resp, err := fn(cmd.Context())
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *app) print(resp json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, resp, "", "  "); err != nil {
		buf.Reset()
		buf.Write(resp)
	}
	buf.WriteByte('\n')

	if _, err := a.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
