package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/crypto"
)

// hash [data]: print the BLAKE3 content fingerprint.
func hashCmd() *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "hash [data]",
		Short: "Print the BLAKE3 content fingerprint of data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args, inPath)
			if err != nil {
				return err
			}
			fmt.Println(crypto.HashContent(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "read data from file instead of the argument")
	return cmd
}

func idCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id",
		Short: "Print a fresh secure random identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := crypto.SecureID()
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
}
