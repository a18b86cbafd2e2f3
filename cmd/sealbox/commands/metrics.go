package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/report"
)

func metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print a JSON status report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := report.Build(appCtx.Started, appCtx.Engine.Snapshot(), appCtx.Queue.Snapshot())
			out, err := st.JSON()
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
