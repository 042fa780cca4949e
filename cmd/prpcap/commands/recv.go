package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// recv: fetch pending envelopes and decrypt them under the current epoch.
func recvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recv",
		Short: "Fetch and decrypt pending messages",
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
			msgs, rejected, err := appCtx.Messages.Receive(name)
			if err != nil {
				return err
			}
			for _, m := range msgs {
				fmt.Printf("[%s] %s\n", m.From, m.Plaintext)
			}
			if rejected > 0 {
				fmt.Printf("(%d envelopes failed authentication and were dropped)\n", rejected)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your relay name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
