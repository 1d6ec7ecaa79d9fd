package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newPrecompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precompile",
		Short: "Compile and load every template under the template root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")

			result, err := c.app.Precompile(cmd.Context(), jobs)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, key := range result.Report.Order {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", key, result.Report.Status[key])
			}
			for _, info := range result.Units {
				if info.Inner {
					_, _ = fmt.Fprintf(w, "%s\t%s\n", info.VersionedName, info.Stage)
				}
			}
			_ = w.Flush()
			return err
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of templates prepared in parallel (0 means one per CPU)")
	return cmd
}
