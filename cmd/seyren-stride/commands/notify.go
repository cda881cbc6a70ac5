package commands

import (
	"fmt"

	"seyren-stride/domain/entities"
	"github.com/spf13/cobra"
)

// NewNotifyCommand creates the notify command.
func NewNotifyCommand(provider ContainerProvider) *cobra.Command {
	var (
		outputFormat string
		checkID      string
		checkName    string
		state        string
		target       string
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a check notification to Stride conversations",
		Long: `Sends the notification Seyren would send for a check entering the given
state. The target is a comma separated list of conversation ids, or names
when conversation resolution is enabled.`,
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

			check := entities.Check{
				ID:    checkID,
				Name:  checkName,
				State: entities.ParseAlertType(state),
			}
			subscription := entities.Subscription{
				CheckID: checkID,
				Target:  target,
				Type:    entities.SubscriptionTypeStride,
			}

			container.Logger.Info("Sending notification",
				"check", check.ID,
				"state", check.State,
				"target", target)

			result, dispatchErr := container.StrideNotifier.Dispatch(cmd.Context(), check, subscription, nil)

			if err := NewOutputFormatter(outputFormat, cmd.OutOrStdout()).Print(result); err != nil {
				return fmt.Errorf("failed to print result: %w", err)
			}

			return dispatchErr
		},
	}

	cmd.Flags().StringVarP(&outputFormat, flagOutput, "o", OutputFormatYAML, "Output format (yaml, json)")
	cmd.Flags().StringVar(&checkID, flagCheckID, "", "Check id")
	cmd.Flags().StringVar(&checkName, flagCheckName, "", "Check name")
	cmd.Flags().StringVar(&state, flagState, string(entities.AlertTypeError), "Check state (OK, WARN, ERROR)")
	cmd.Flags().StringVarP(&target, flagTarget, "t", "", "Comma separated conversations")
	_ = cmd.MarkFlagRequired(flagCheckID)
	_ = cmd.MarkFlagRequired(flagTarget)

	return cmd
}
