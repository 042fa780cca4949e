package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"prpcap/internal/protocol/prpcap"
)

// cap: derive the next capability from the local epoch, e.g. to hand out
// as a one-time address. The index counter guarantees per-epoch
// uniqueness.
func capCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cap",
		Short: "Derive the next one-time capability from the local epoch",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if err := appCtx.Epochs.Load(passphrase); err != nil {
				return err
			}
			pub, ok := appCtx.Epochs.Public()
			if !ok {
				return fmt.Errorf("no epoch loaded")
			}
			index, err := appCtx.Epochs.NextIndex()
			if err != nil {
				return err
			}
			capability, err := prpcap.Capability(pub.A, pub.B, index)
			if err != nil {
				return err
			}
			fmt.Printf("index: %d\ncapability: %s\n", capability.Index, hex.EncodeToString(capability.V[:]))
			return nil
		},
	}
}
