// zapgrid is a terminal puzzle game about rotating tiles until current
// flows across the board.
//
// Usage:
//
//	zapgrid list              - List available play modes
//	zapgrid play <mode>       - Play a mode directly
//	zapgrid menu              - Start the interactive mode picker
//	zapgrid serve             - Start SSH server for remote play
//	zapgrid scores <mode>     - Show high scores for a mode
//	zapgrid matches           - Show recent online match results
//	zapgrid simulate          - Run a headless deterministic match
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.zapgrid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its play modes
	_ "github.com/zapgrid/zapgrid/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zapgrid",
	Short: "ZapGrid - Connect both edges of the grid in your terminal",
	Long: `ZapGrid is a terminal puzzle game. Tiles carry connectors on four
sides; rotate them until a path links the left and right edges, then
watch the zap burn through and score every connected pin.

Available commands:
  list     - Show all play modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  matches  - View recent online match results
  simulate - Headless deterministic run

Examples:
  zapgrid play zapgrid
  zapgrid play zapgrid_vsbot --difficulty hard
  zapgrid menu
  zapgrid serve --ssh :2222
  zapgrid scores zapgrid`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.zapgrid/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(simulateCmd)
}
