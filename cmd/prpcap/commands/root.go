package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"prpcap/internal/app"
)

var (
	home       string
	passphrase string
	relayURL   string
	name       string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "prpcap",
		Short: "Capability-based 0-RTT messaging CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".prpcap")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			appCtx = app.New(app.Config{Home: home, RelayURL: relayURL})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.prpcap)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting epoch secrets")
	root.PersistentFlags().StringVar(&relayURL, "relay", "", "relay base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(initCmd(), rotateCmd(), fingerprintCmd(), capCmd(), publishCmd(), sendCmd(), recvCmd())
	return root.Execute()
}
