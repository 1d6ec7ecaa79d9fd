package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/quill/internal/app"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a template file or inline template text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray("arg")
			positional, _ := cmd.Flags().GetStringArray("pos")
			outPath, _ := cmd.Flags().GetString("out")

			if len(pairs) > 0 && len(positional) > 0 {
				return zerr.With(domain.ErrInvalidArgument, "reason", "--arg and --pos cannot be combined")
			}
			named, err := parseNamed(pairs)
			if err != nil {
				return err
			}

			out, err := c.app.Render(cmd.Context(), app.RenderOptions{
				Template:   args[0],
				Named:      named,
				Positional: parsePositional(positional),
			})
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			if err := os.WriteFile(outPath, []byte(out), domain.FilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to write output"), "path", outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayP("arg", "a", nil, "Bind an argument by name (name=value)")
	cmd.Flags().StringArrayP("pos", "p", nil, "Bind the next argument by position")
	cmd.Flags().StringP("out", "o", "", "Write the output to a file instead of stdout")
	return cmd
}
