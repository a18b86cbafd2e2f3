package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/crypto"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA-4096 key pair and store it as PEM files",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := appCtx.Engine.GenerateKeyPair()
			if err != nil {
				return err
			}
			if err := appCtx.Keys.SavePublic(keyName, kp.Public); err != nil {
				return err
			}
			if err := appCtx.Keys.SavePrivate(keyName, kp.Private, passphrase); err != nil {
				return err
			}
			fmt.Printf("Key pair %q created in %s\n", keyName, home)
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(kp.Public))
			if passphrase == "" {
				fmt.Println("Warning: private key stored unencrypted; use -p to seal it")
			}
			return nil
		},
	}
}
