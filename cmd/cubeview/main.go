// cubeview - interactive 3D Rubik's cube for the terminal.
package main

import (
	"github.com/cubeworks/cubeview/internal/cli"
)

func main() {
	cli.Execute()
}
