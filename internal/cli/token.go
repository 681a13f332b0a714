package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (a *app) tokenCommands() []*cobra.Command {
	return []*cobra.Command{
		a.tokenInfoCommand(),
		a.txCommand(),
	}
}

func (a *app) tokenInfoCommand() *cobra.Command {
	var network int64
	cmd := &cobra.Command{
		Use:   "token-info <contract> <tokenId>",
		Short: "Show token details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := vottun.ParseUint256(args[1])
			if err != nil {
				return fmt.Errorf("token id: %w", err)
			}
			req := &vottun.TokenRequest{ContractAddress: args[0], TokenID: tokenID, Network: network}
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.GetTokenInfo(ctx, req)
			})
		},
	}
	cmd.Flags().Int64Var(&network, "network", 0, "network id")
	return cmd
}

func (a *app) txCommand() *cobra.Command {
	var network int64
	cmd := &cobra.Command{
		Use:   "tx <hash>",
		Short: "Show a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &vottun.GetTransactionInfoRequest{TxHash: args[0], Network: network}
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.GetTransactionInfo(ctx, req)
			})
		},
	}
	cmd.Flags().Int64Var(&network, "network", 0, "network id")
	return cmd
}

func (a *app) mintCommand() *cobra.Command {
	req := &vottun.MintNftRequest{}
	var royalty int
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint an ERC721 token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("royalty") {
				req.RoyaltyPercentage = &royalty
			}
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.MintNft(ctx, req)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&req.RecipientAddress, "recipient", "", "recipient address")
	flags.StringVar(&req.ContractAddress, "contract", "", "contract address")
	flags.StringVar(&req.IPFSURI, "ipfs-uri", "", "metadata URI")
	flags.StringVar(&req.IPFSHash, "ipfs-hash", "", "metadata CID")
	flags.Int64Var(&req.BlockchainNetwork, "network", 0, "network id")
	flags.IntVar(&royalty, "royalty", 0, "royalty percentage")
	return cmd
}

func (a *app) transferCommand() *cobra.Command {
	req := &vottun.TransferNftRequest{}
	var (
		tokenID string
		price   float64
	)
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer an ERC721 token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tokenID != "" {
				id, err := vottun.ParseUint256(tokenID)
				if err != nil {
					return fmt.Errorf("token id: %w", err)
				}
				req.TokenID = id
			}
			if cmd.Flags().Changed("price") {
				req.Price = &price
			}
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.TransferNft(ctx, req)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&req.ContractAddress, "contract", "", "contract address")
	flags.StringVar(&req.From, "from", "", "current owner")
	flags.StringVar(&req.To, "to", "", "new owner")
	flags.StringVar(&tokenID, "token", "", "token id")
	flags.Float64Var(&price, "price", 0, "sale price")
	flags.Int64Var(&req.BlockchainNetwork, "network", 0, "network id")
	return cmd
}
