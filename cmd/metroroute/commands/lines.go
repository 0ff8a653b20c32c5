package commands

import "github.com/spf13/cobra"

func newLinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List every line and its stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, id := range n.Lines() {
				p.line(id, n.LineStations(id))
			}
			return nil
		},
	}
}
