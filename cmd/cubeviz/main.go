// cubeviz - an interactive 3x3x3 cube for the terminal.
package main

import (
	"github.com/SeamusWaldron/cubeviz/internal/cli"
)

func main() {
	cli.Execute()
}
