// Command metroroute prints fewest-hop and fastest routes over a metro network.
package main

import "github.com/katalvlaran/metroroute/cmd/metroroute/commands"

func main() {
	commands.Execute()
}
