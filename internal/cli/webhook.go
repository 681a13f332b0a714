package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (a *app) webhookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage the webhook",
	}

	cmd.AddCommand(
		a.simpleCommand("get", "Show the configured webhook", func() call { return a.api.GetWebhook }),
		a.simpleCommand("test", "Send a test event", func() call { return a.api.SendTestWebhook }),
		&cobra.Command{
			Use:   "set <url>",
			Short: "Register the webhook URL",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
					return a.api.CreateWebhook(ctx, &vottun.WebhookRequest{URL: args[0]})
				})
			},
		},
		&cobra.Command{
			Use:   "update <url>",
			Short: "Replace the webhook URL",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
					return a.api.UpdateWebhook(ctx, &vottun.WebhookRequest{URL: args[0]})
				})
			},
		},
	)
	return cmd
}
