package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_word2num/internal/adapters/batch"
	"github.com/baditaflorin/go_word2num/internal/adapters/logger"
)

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var (
		workers   int
		batchSize int
		stats     bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert one phrase per line",
		Long: `Convert every line of file, or of stdin when no file is given.
One result is written per input line, in input order. Lines that are not
numbers produce "-" in plain output and a null value in JSON output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.newConverter(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			cfg := batch.DefaultConfig()
			cfg.Workers = workers
			cfg.BatchSize = batchSize
			if opts.jsonOut {
				cfg.Encoder = batch.JSONEncoder
			}
			processor, err := batch.NewProcessor(w, logger.NewNopLogger(), cfg)
			if err != nil {
				return err
			}

			st, err := processor.ProcessStream(cmd.Context(), in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if stats {
				fmt.Fprintf(cmd.ErrOrStderr(), "lines=%d parsed=%d workers=%d duration=%s\n",
					st.Lines, st.Parsed, processor.Workers(), st.Duration)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", batch.DefaultWorkers, "worker goroutines (0 = number of CPUs)")
	cmd.Flags().IntVar(&batchSize, "batch-size", batch.DefaultBatchSize, "lines per worker job")
	cmd.Flags().BoolVar(&stats, "stats", false, "print a summary to stderr")
	return cmd
}
