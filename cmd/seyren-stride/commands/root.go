package commands

import (
	"sync"

	"seyren-stride/infrastructure/config"
	"github.com/spf13/cobra"
)

// ContainerProvider lazily builds the dependency container once the
// configuration flags are parsed.
type ContainerProvider func() (*config.Container, error)

// NewRootCommand creates the root command with every subcommand attached.
// The returned cleanup closes the container if one was built.
func NewRootCommand() (*cobra.Command, func() error) {
	var (
		configPath string
		container  *config.Container
		initErr    error
		once       sync.Once
	)

	provider := func() (*config.Container, error) {
		once.Do(func() {
			var cfg *config.Config
			cfg, initErr = config.LoadConfig(configPath)
			if initErr != nil {
				return
			}
			container, initErr = config.NewContainer(cfg)
		})
		return container, initErr
	}

	rootCmd := &cobra.Command{
		Use:   "seyren-stride",
		Short: "Stride notification channel for Seyren checks",
		Long: `Posts Seyren check state changes to Stride conversations and exposes
the channel over HTTP for the platform's notification routing.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	rootCmd.AddCommand(
		NewNotifyCommand(provider),
		NewConversationsCommand(provider),
		NewServeCommand(provider),
		NewVersionCommand(),
	)

	cleanup := func() error {
		if container == nil {
			return nil
		}
		return container.Close()
	}

	return rootCmd, cleanup
}
