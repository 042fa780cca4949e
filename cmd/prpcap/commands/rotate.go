package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rotate: replace the epoch and destroy the old secrets. Messages sealed
// for the old epoch become undecryptable.
func rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Replace the epoch key pair and erase the old secrets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if err := appCtx.Epochs.Load(passphrase); err != nil {
				return err
			}
			fp, err := appCtx.Epochs.Rotate(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Epoch rotated.\nNew fingerprint: %s\n", fp)
			return nil
		},
	}
}
