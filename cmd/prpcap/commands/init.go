package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate an epoch key pair and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			fp, err := appCtx.Epochs.Init(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Epoch created.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}
