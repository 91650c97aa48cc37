// Package cli implements the yieldseq command line.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dispatchrun/yielder"
	"github.com/dispatchrun/yielder/enumerator"
)

// NewRootCommand returns the yieldseq command and its subcommands.
func NewRootCommand() *cobra.Command {
	config := viper.New()

	root := &cobra.Command{
		Use:   "yieldseq",
		Short: "Print sequences described by yielder producers",
		Long: `yieldseq prints the values of a sequence, one per line, pulling them
lazily from a producer running behind a yielder bridge.

Flags can also be set from the environment, e.g. YIELDSEQ_LIMIT=5.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !config.GetBool("verbose") {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			enumerator.SetLogger(logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.IntP("limit", "n", 0, "maximum number of values to print (0 prints all of them)")
	flags.StringP("format", "f", "text", "output format: text or json (integers beyond 2^53 are written as JSON strings)")
	flags.BoolP("verbose", "v", false, "log enumerator events to stderr")
	_ = config.BindPFlags(flags)

	config.SetEnvPrefix("YIELDSEQ")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	root.AddCommand(
		newFibCommand(config),
		newRangeCommand(config),
		newLinesCommand(config),
	)
	return root
}

// Execute runs the yieldseq command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// printSequence pulls values out of producer and writes them to the command
// output, honouring the limit and format settings.
func printSequence(cmd *cobra.Command, config *viper.Viper, producer yielder.Producer) error {
	limit := config.GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("invalid limit: %d", limit)
	}

	w, err := newWriter(cmd.OutOrStdout(), config.GetString("format"))
	if err != nil {
		return err
	}

	// Flush buffered log entries once the enumerator is stopped; syncing a
	// console may fail with EINVAL, which is not worth reporting.
	defer func() { _ = enumerator.Logger().Sync() }()

	e := enumerator.New(producer)
	defer e.Stop()

	for n := 0; limit == 0 || n < limit; n++ {
		if !e.Next() {
			break
		}
		if err := w.Write(e.Value()); err != nil {
			return err
		}
	}
	return e.Err()
}
