// Command cubesolve is the CLI entry point for the cube solver.
package main

import "github.com/cubesolve/cubesolve/internal/cli"

func main() {
	cli.Execute()
}
