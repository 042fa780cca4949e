package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// publish <name>: register the epoch publics with the relay under <name>.
func publishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <name>",
		Short: "Publish the epoch public points to the relay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if appCtx.Relay == nil {
				return fmt.Errorf("no relay configured. use --relay")
			}
			if err := appCtx.Epochs.Load(passphrase); err != nil {
				return err
			}
			pub, ok := appCtx.Epochs.Public()
			if !ok {
				return fmt.Errorf("no epoch loaded")
			}
			if err := appCtx.Relay.Publish(args[0], pub); err != nil {
				return err
			}
			fmt.Println("published")
			return nil
		},
	}
}
