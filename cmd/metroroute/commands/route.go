package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metroroute/metro"
	"github.com/katalvlaran/metroroute/route"
)

// Route modes accepted by --mode.
const (
	modeFewest  = "fewest"
	modeFastest = "fastest"
	modeBoth    = "both"
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		mode    string
		uniform bool
	)

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find routes between two station keys",
		Example: `  metroroute route M1 K4
  metroroute route T1 T4 --mode fastest --uniform`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != modeFewest && mode != modeFastest && mode != modeBoth {
				return fmt.Errorf("%w (got %q)", errBadMode, mode)
			}
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			for _, key := range args {
				if !n.HasStation(key) {
					return errUnknownStation(key)
				}
			}

			p := newPrinter(cmd.OutOrStdout())
			a.plan(p, n, args[0], args[1], mode, uniform)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", modeBoth, "which search to run: fewest, fastest or both")
	cmd.Flags().BoolVar(&uniform, "uniform", false, "use a zero heuristic (Dijkstra) for the fastest route")

	return cmd
}

// plan runs the requested searches from start to goal and prints them.
func (a *app) plan(p *printer, n *metro.Network, start, goal, mode string, uniform bool) {
	opts := []route.Option{route.WithOnExpand(func(st metro.Station) {
		a.logger.Debug("expand", "key", st.Key, "name", st.Name, "line", st.Line)
	})}
	if uniform {
		opts = append(opts, route.WithHeuristic(route.Uniform))
	}

	if mode == modeFewest || mode == modeBoth {
		path, ok := route.FewestHops(n, start, goal, opts...)
		a.logger.Debug("fewest hops done", "from", start, "to", goal, "found", ok)
		p.fewest(path, ok)
	}
	if mode == modeFastest || mode == modeBoth {
		r, ok := route.FastestRoute(n, start, goal, opts...)
		a.logger.Debug("fastest route done", "from", start, "to", goal, "found", ok, "minutes", r.Time)
		p.fastest(r, ok)
	}
}
