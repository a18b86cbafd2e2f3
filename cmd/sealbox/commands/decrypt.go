package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sealbox/internal/domain"
)

// decrypt [envelope.json]: open an envelope and print the plaintext.
func decryptCmd() *cobra.Command {
	var binary bool
	cmd := &cobra.Command{
		Use:   "decrypt [envelope.json]",
		Short: "Open an envelope with the matching private key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return err
			}

			var env domain.Envelope
			if err := json.Unmarshal(data, &env); err != nil {
				return fmt.Errorf("parse envelope: %w", err)
			}

			priv, err := appCtx.Keys.LoadPrivate(keyName, passphrase)
			if err != nil {
				return err
			}

			if binary {
				plaintext, err := appCtx.Engine.Decrypt(&env, priv)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(plaintext)
				return err
			}

			text, err := appCtx.Engine.DecryptText(&env, priv)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&binary, "binary", false, "write raw plaintext bytes without requiring UTF-8")
	return cmd
}
