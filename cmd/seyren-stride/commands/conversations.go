package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConversationsCommand creates the conversations command.
func NewConversationsCommand(provider ContainerProvider) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "List the Stride conversations of the configured site",
		Long: `Lists the conversations visible to the configured client, which is
useful to find the ids to put in a subscription target.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			container, err := provider()
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			if err := container.Config.ValidateCredentials(); err != nil {
				return fmt.Errorf("invalid stride credentials: %w", err)
			}
			if container.Config.Stride.CloudID == "" {
				return fmt.Errorf("stride.cloud_id is required to list conversations")
			}

			ctx := cmd.Context()
			token, err := container.Credentials.FetchAccessToken(ctx)
			if err != nil {
				return fmt.Errorf("failed to obtain access token: %w", err)
			}

			conversations, err := container.Resolver.ListConversations(ctx, container.Config.Stride.CloudID, token)
			if err != nil {
				return fmt.Errorf("failed to list conversations: %w", err)
			}

			container.Logger.Debug("Listed conversations", "count", len(conversations))

			return NewOutputFormatter(outputFormat, cmd.OutOrStdout()).Print(conversations)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, flagOutput, "o", OutputFormatYAML, "Output format (yaml, json)")

	return cmd
}
