// snake is a real-time Snake game for the terminal.
//
// Usage:
//
//	snake             - Play a game
//	snake play        - Same as above
//	snake controls    - Show key bindings
//
// Global flags:
//
//	--log <path>    - Write a debug log to the given file
//	--seed <value>  - Set RNG seed for reproducible gameplay (hidden)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLog  string
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal game: steer the snake to the food, grow longer,
and avoid the walls and your own tail. Every few pieces of food the
snake speeds up.

Available commands:
  play      - Play a game (default)
  controls  - Show key bindings

Examples:
  snake
  snake play --log /tmp/snake.log
  snake controls`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	//nolint:errcheck // Flag is registered above
	rootCmd.PersistentFlags().MarkHidden("seed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(controlsCmd)
}
