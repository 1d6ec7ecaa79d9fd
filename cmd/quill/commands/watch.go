package commands

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.trai.ch/quill/internal/adapters/tui"
	"go.trai.ch/quill/internal/app"
	"go.trai.ch/quill/internal/engine/scheduler"
	"golang.org/x/sync/errgroup"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Precompile templates and reload them when they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			dashboard, _ := cmd.Flags().GetBool("tui")

			if dashboard {
				return c.watchDashboard(cmd, jobs)
			}

			out := cmd.OutOrStdout()
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Jobs: jobs,
				OnReload: func(report scheduler.Report, err error) {
					if err != nil {
						return
					}
					_, _ = fmt.Fprintf(out, "reloaded %s\n", strings.Join(report.Order, ", "))
				},
			})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of templates prepared in parallel (0 means one per CPU)")
	cmd.Flags().Bool("tui", false, "Show a live dashboard of template status")
	return cmd
}

// watchDashboard runs the watch loop behind a bubbletea dashboard. Quitting the dashboard ends the watch.
func (c *CLI) watchDashboard(cmd *cobra.Command, jobs int) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	program := tea.NewProgram(
		tui.NewModel(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	report := func(r scheduler.Report, err error) {
		program.Send(tui.MsgReport{Order: r.Order, Status: r.Status, Err: err})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer program.Quit()
		return c.app.Watch(gctx, app.WatchOptions{
			Jobs: jobs,
			OnPrecompile: func(result app.PrecompileResult, err error) {
				report(result.Report, err)
			},
			OnWatching: func(home string) {
				program.Send(tui.MsgWatching{Home: home})
			},
			OnReload: report,
		})
	})
	return g.Wait()
}
