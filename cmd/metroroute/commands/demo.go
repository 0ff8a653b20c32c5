package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// demoTrips are the sample journeys shipped with the bundled network.
var demoTrips = []struct{ from, to string }{
	{"M1", "K4"}, // AŞTİ → OSB
	{"T1", "T4"}, // Batıkent → Keçiören
	{"T4", "M1"}, // Keçiören → AŞTİ
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample journeys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for i, trip := range demoTrips {
				from, ok := n.Station(trip.from)
				if !ok {
					return errUnknownStation(trip.from)
				}
				to, ok := n.Station(trip.to)
				if !ok {
					return errUnknownStation(trip.to)
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				p.title(fmt.Sprintf("%d. %s → %s", i+1, from.Name, to.Name))
				a.plan(p, n, from.Key, to.Key, modeBoth, false)
			}
			return nil
		},
	}
}
