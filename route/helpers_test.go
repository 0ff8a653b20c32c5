package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/metro"
)

// Line ids of the Ankara fixture.
const (
	LineRed    = "Kırmızı Hat"
	LineBlue   = "Mavi Hat"
	LineOrange = "Turuncu Hat"
)

// buildAnkara builds the three-line fixture:
//
//	K1–K2–K3–K4   (4, 6, 8)
//	M1–M2–M3–M4   (5, 3, 4)
//	T1–T2–T3–T4   (7, 9, 5)
//	K1–M2 (2), K3–T2 (3), M4–T3 (2)
func buildAnkara(t *testing.T) *metro.Network {
	t.Helper()
	n := metro.NewNetwork()
	stations := []struct{ key, name, line string }{
		{"K1", "Kızılay", LineRed},
		{"K2", "Ulus", LineRed},
		{"K3", "Demetevler", LineRed},
		{"K4", "OSB", LineRed},
		{"M1", "AŞTİ", LineBlue},
		{"M2", "Kızılay", LineBlue},
		{"M3", "Sıhhiye", LineBlue},
		{"M4", "Gar", LineBlue},
		{"T1", "Batıkent", LineOrange},
		{"T2", "Demetevler", LineOrange},
		{"T3", "Gar", LineOrange},
		{"T4", "Keçiören", LineOrange},
	}
	for _, s := range stations {
		require.NoError(t, n.AddStation(s.key, s.name, s.line))
	}
	connections := []struct {
		a, b string
		time int64
	}{
		{"K1", "K2", 4}, {"K2", "K3", 6}, {"K3", "K4", 8},
		{"M1", "M2", 5}, {"M2", "M3", 3}, {"M3", "M4", 4},
		{"T1", "T2", 7}, {"T2", "T3", 9}, {"T3", "T4", 5},
		{"K1", "M2", 2}, {"K3", "T2", 3}, {"M4", "T3", 2},
	}
	for _, c := range connections {
		require.NoError(t, n.AddConnection(c.a, c.b, c.time))
	}

	return n
}

// pathTime sums the cheapest link time between consecutive keys.
func pathTime(t *testing.T, n *metro.Network, keys []string) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(keys); i++ {
		links, err := n.Links(keys[i-1])
		require.NoError(t, err)
		best := int64(-1)
		for _, l := range links {
			if l.To == keys[i] && (best < 0 || l.Time < best) {
				best = l.Time
			}
		}
		require.GreaterOrEqual(t, best, int64(0), "%s and %s are not adjacent", keys[i-1], keys[i])
		total += best
	}

	return total
}
