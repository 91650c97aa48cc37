package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dispatchrun/yielder/internal/sequences"
)

func newFibCommand(config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "fib",
		Short: "Print the Fibonacci numbers",
		Long: `Print the Fibonacci numbers. The sequence is infinite, use --limit
to bound it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSequence(cmd, config, sequences.Fibonacci)
		},
	}
}

func newRangeCommand(config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "range START STOP [STEP]",
		Short: "Print integers from START up to STOP, excluded",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds := []int{0, 0, 1}
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid range bound %q: %w", arg, err)
				}
				bounds[i] = n
			}
			producer, err := sequences.Range(bounds[0], bounds[1], bounds[2])
			if err != nil {
				return err
			}
			return printSequence(cmd, config, producer)
		},
	}
}

func newLinesCommand(config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "lines [FILE]",
		Short: "Print the lines of FILE, or of the standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				r = f
			}
			return printSequence(cmd, config, sequences.Lines(r))
		},
	}
}
