package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/metro"
	"github.com/katalvlaran/metroroute/route"
)

func TestFewestHops_UnknownOrNil(t *testing.T) {
	n := buildAnkara(t)

	_, ok := route.FewestHops(nil, "K1", "K2")
	assert.False(t, ok, "nil network")
	_, ok = route.FewestHops(n, "X1", "K2")
	assert.False(t, ok, "unknown start")
	_, ok = route.FewestHops(n, "K1", "X2")
	assert.False(t, ok, "unknown goal")
}

func TestFewestHops_SameStation(t *testing.T) {
	n := buildAnkara(t)
	path, ok := route.FewestHops(n, "K3", "K3")
	require.True(t, ok)
	assert.Equal(t, []string{"K3"}, path.Keys())
	assert.Zero(t, path.Hops())
}

// TestFewestHops_AnkaraScenarios covers the three demo journeys.
func TestFewestHops_AnkaraScenarios(t *testing.T) {
	n := buildAnkara(t)
	tests := []struct {
		name        string
		start, goal string
		want        []string
	}{
		{"AŞTİ to OSB", "M1", "K4", []string{"M1", "M2", "K1", "K2", "K3", "K4"}},
		{"Batıkent to Keçiören", "T1", "T4", []string{"T1", "T2", "T3", "T4"}},
		{"Keçiören to AŞTİ", "T4", "M1", []string{"T4", "T3", "M4", "M3", "M2", "M1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := route.FewestHops(n, tc.start, tc.goal)
			require.True(t, ok)
			assert.Equal(t, tc.want, path.Keys())
		})
	}
}

// TestFewestHops_IgnoresWeights takes the slow direct link: one hop beats two.
func TestFewestHops_IgnoresWeights(t *testing.T) {
	n := metro.NewNetwork()
	for _, k := range []string{"A1", "A2", "A3"} {
		require.NoError(t, n.AddStation(k, k, "A"))
	}
	require.NoError(t, n.AddConnection("A1", "A2", 1))
	require.NoError(t, n.AddConnection("A2", "A3", 1))
	require.NoError(t, n.AddConnection("A1", "A3", 100))

	path, ok := route.FewestHops(n, "A1", "A3")
	require.True(t, ok)
	assert.Equal(t, []string{"A1", "A3"}, path.Keys())
}

func TestFewestHops_Disconnected(t *testing.T) {
	n := buildAnkara(t)
	require.NoError(t, n.AddStation("Y1", "Island", "Yeşil Hat"))
	require.NoError(t, n.AddStation("Y2", "Reef", "Yeşil Hat"))
	require.NoError(t, n.AddConnection("Y1", "Y2", 3))

	path, ok := route.FewestHops(n, "K1", "Y2")
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFewestHops_OnExpand(t *testing.T) {
	n := buildAnkara(t)
	var seen []string
	_, ok := route.FewestHops(n, "T1", "T3", route.WithOnExpand(func(st metro.Station) {
		seen = append(seen, st.Key)
	}))
	require.True(t, ok)
	// T1, then T2, then T3 dequeued before K3 (T3 was linked to T2 first)
	assert.Equal(t, []string{"T1", "T2", "T3"}, seen)
}

func TestPath_Helpers(t *testing.T) {
	n := buildAnkara(t)
	path, ok := route.FewestHops(n, "M1", "K2")
	require.True(t, ok)
	assert.Equal(t, 3, path.Hops())
	assert.Equal(t, 1, path.Transfers())
	assert.Equal(t, "AŞTİ -> Kızılay -> Kızılay -> Ulus", path.String())
	assert.Zero(t, route.Path(nil).Hops())
}
