package netfile

import (
	"bytes"
	_ "embed"

	"github.com/katalvlaran/metroroute/metro"
)

//go:embed data/ankara.yaml
var ankaraYAML []byte

// Ankara returns the bundled demo definition: the red (K), blue (M) and
// orange (T) lines with transfers at Kızılay, Demetevler and Gar.
func Ankara() *Definition {
	def, err := Decode(bytes.NewReader(ankaraYAML))
	if err != nil {
		panic("netfile: embedded ankara.yaml: " + err.Error())
	}

	return def
}

// AnkaraNetwork builds the bundled demo network.
func AnkaraNetwork() *metro.Network {
	n, err := Ankara().Build()
	if err != nil {
		panic("netfile: embedded ankara.yaml: " + err.Error())
	}

	return n
}
