package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (a *app) simpleCommand(use, short string, fn func() call) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, fn())
		},
	}
}

func (a *app) accountCommands() []*cobra.Command {
	return []*cobra.Command{
		a.simpleCommand("networks", "List supported networks", func() call { return a.api.GetNetworks }),
		a.simpleCommand("contract-types", "List contract types", func() call { return a.api.GetContractTypes }),
		a.simpleCommand("wallets", "List custodied wallets", func() call { return a.api.GetWallets }),
		a.simpleCommand("wallet-keys", "Show the wallet key set", func() call { return a.api.GetWalletKeys }),
		a.simpleCommand("contracts", "List deployed contracts", func() call { return a.api.GetUserContracts }),
		a.simpleCommand("balances", "Show account balances", func() call { return a.api.GetAccountBalances }),
		a.balanceCommand(),
		a.gasPriceCommand(),
		a.operationsCommand(),
		a.operationCommand(),
	}
}

func (a *app) balanceCommand() *cobra.Command {
	req := &vottun.GetAccountBalanceRequest{}
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the native balance of a wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.GetAccountBalance(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.WalletAddress, "wallet", "", "wallet address")
	cmd.Flags().Int64Var(&req.NetworkID, "network", 0, "network id")
	return cmd
}

func (a *app) gasPriceCommand() *cobra.Command {
	req := &vottun.NetworkRequest{}
	cmd := &cobra.Command{
		Use:   "gas-price",
		Short: "Show the current gas price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.GetGasPrice(ctx, req)
			})
		},
	}
	cmd.Flags().Int64Var(&req.Network, "network", 0, "network id")
	return cmd
}

func (a *app) operationsCommand() *cobra.Command {
	req := &vottun.GetCustomerOperationsRequest{}
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List recent operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.GetCustomerOperations(ctx, req)
			})
		},
	}
	cmd.Flags().IntVar(&req.Index, "index", 0, "page index")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 10, "page size")
	return cmd
}

func (a *app) operationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operation <id>",
		Short: "Show one operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.GetCustomerOperation(ctx, &vottun.GetCustomerOperationRequest{OperationID: args[0]})
			})
		},
	}
}
