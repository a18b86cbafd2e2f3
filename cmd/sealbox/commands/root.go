package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sealbox/internal/app"
)

var (
	home       string
	passphrase string
	keyName    string
	verbose    bool
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "sealbox",
		Short:         "Hybrid encryption toolkit (RSA-4096 + AES-256-GCM)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".sealbox")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			log := zap.NewNop()
			if verbose {
				var err error
				log, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
			}

			var err error
			appCtx, err = app.NewWire(app.Config{Home: home, Log: log})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "key directory (default ~/.sealbox)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the private key")
	root.PersistentFlags().StringVar(&keyName, "key", "identity", "key pair name within the key directory")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		keygenCmd(),
		encryptCmd(),
		decryptCmd(),
		hashCmd(),
		idCmd(),
		benchmarkCmd(),
		metricsCmd(),
	)
	return root.Execute()
}
