package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/metro"
)

// run executes the command tree with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRoute_Both(t *testing.T) {
	out, _, err := run(t, "route", "M1", "K4")
	require.NoError(t, err)
	assert.Contains(t, out, "Fewest hops: (5 hops, 1 transfer) AŞTİ -> Kızılay -> Kızılay -> Ulus -> Demetevler -> OSB")
	assert.Contains(t, out, "Fastest: 25 min AŞTİ -> Kızılay -> Kızılay -> Ulus -> Demetevler -> OSB")
}

func TestRoute_FastestUniform(t *testing.T) {
	out, _, err := run(t, "route", "T4", "M1", "--mode", "fastest", "--uniform")
	require.NoError(t, err)
	assert.NotContains(t, out, "Fewest hops")
	assert.Contains(t, out, "Fastest: 19 min Keçiören -> Gar -> Gar -> Sıhhiye -> Kızılay -> AŞTİ")
}

func TestRoute_Errors(t *testing.T) {
	_, _, err := run(t, "route", "M1", "Z9")
	assert.ErrorIs(t, err, metro.ErrStationNotFound)

	_, _, err = run(t, "route", "M1", "K4", "--mode", "slowest")
	assert.ErrorIs(t, err, errBadMode)

	_, _, err = run(t, "route", "M1")
	assert.Error(t, err)
}

func TestRoute_CustomNetworkNoRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "islands.yaml")
	doc := []byte(`name: Islands
lines:
  - id: A
    stations: [{key: A1, name: North}]
  - id: B
    stations: [{key: B1, name: South}]
`)
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	out, _, err := run(t, "--network", path, "route", "A1", "B1")
	require.NoError(t, err)
	assert.Contains(t, out, "Fewest hops: no route")
	assert.Contains(t, out, "Fastest: no route")
}

func TestRoute_VerboseLogsExpansions(t *testing.T) {
	_, errOut, err := run(t, "-v", "route", "K1", "K2", "--mode", "fewest")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=DEBUG msg=expand key=K1")
	assert.Contains(t, errOut, "fewest hops done")
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "1. AŞTİ → OSB")
	assert.Contains(t, out, "2. Batıkent → Keçiören")
	assert.Contains(t, out, "Fastest: 21 min Batıkent -> Demetevler -> Gar -> Keçiören")
	assert.Contains(t, out, "3. Keçiören → AŞTİ")
	assert.Contains(t, out, "Fastest: 19 min")
}

func TestLines(t *testing.T) {
	out, _, err := run(t, "lines")
	require.NoError(t, err)
	assert.Contains(t, out, "Kırmızı Hat: K1 Kızılay, K2 Ulus, K3 Demetevler, K4 OSB")
	assert.Contains(t, out, "Turuncu Hat: T1 Batıkent, T2 Demetevler, T3 Gar, T4 Keçiören")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	netPath := filepath.Join(dir, "pair.yaml")
	require.NoError(t, os.WriteFile(netPath, []byte(`lines:
  - id: P
    stations: [{key: P1, name: Start}, {key: P2, name: End}]
connections:
  - {from: P1, to: P2, time: 7}
`), 0o600))
	cfgPath := filepath.Join(dir, "metroroute.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("network: "+netPath+"\n"), 0o600))

	out, _, err := run(t, "--config", cfgPath, "route", "P1", "P2", "--mode", "fastest")
	require.NoError(t, err)
	assert.Contains(t, out, "Fastest: 7 min Start -> End")

	_, _, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "lines")
	assert.Error(t, err)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 transfer", plural(1, "transfer"))
	assert.Equal(t, "0 transfers", plural(0, "transfer"))
	assert.Equal(t, "2 transfers", plural(2, "transfer"))
}
