// Package cli implements the cubesolve command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolve",
	Short: "3x3x3 Rubik's Cube IDA* solver",
	Long: `cubesolve finds optimal or near-optimal move sequences that solve a
scrambled 3x3x3 Rubik's Cube, using iterative-deepening A* guided by
pattern-database heuristics.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Solve history database path (default: ~/.cubesolve/history.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from the flag, or "" to request the
// default path.
func getDBPath() string {
	return dbPath
}
