package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// send <peer> <message>: encrypt and send a message to <peer>.
func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <peer> <message>",
		Short: "Encrypt and send a message to a peer's published epoch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Relay == nil {
				return fmt.Errorf("no relay configured. use --relay")
			}
			if err := appCtx.Messages.Send(name, args[0], []byte(args[1])); err != nil {
				return err
			}
			fmt.Println("sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your relay name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
