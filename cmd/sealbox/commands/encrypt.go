package commands

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sealbox/internal/keyfile"
)

// encrypt [message]: seal a message for a recipient and print the
// envelope JSON.
func encryptCmd() *cobra.Command {
	var (
		pubPath string
		inPath  string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "encrypt [message]",
		Short: "Seal a message for a recipient public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := readInput(args, inPath)
			if err != nil {
				return err
			}

			pub, err := loadPublic(pubPath)
			if err != nil {
				return err
			}

			env, err := appCtx.Engine.Encrypt(plaintext, pub)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return err
			}
			if outPath != "" {
				return os.WriteFile(outPath, append(out, '\n'), 0o644)
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&pubPath, "pub", "", "recipient public key PEM (default: the named key's public half)")
	cmd.Flags().StringVar(&inPath, "in", "", "read plaintext from file instead of the argument")
	cmd.Flags().StringVar(&outPath, "out", "", "write the envelope to file instead of stdout")
	return cmd
}

// readInput resolves plaintext from the positional argument, a file, or
// stdin, in that order.
func readInput(args []string, inPath string) ([]byte, error) {
	switch {
	case inPath != "":
		return os.ReadFile(inPath)
	case len(args) == 1:
		return []byte(args[0]), nil
	default:
		return io.ReadAll(os.Stdin)
	}
}

// loadPublic reads a recipient key from an explicit PEM path, falling
// back to the named pair in the key directory.
func loadPublic(path string) (*rsa.PublicKey, error) {
	if path == "" {
		return appCtx.Keys.LoadPublic(keyName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return keyfile.DecodePublic(data)
}
