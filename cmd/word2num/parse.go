package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"

	"github.com/baditaflorin/go_word2num/internal/adapters/batch"
)

var errNotANumber = errors.New("not a number phrase")

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [phrase...]",
		Short: "Convert one phrase",
		Long: `Convert the phrase formed by joining all arguments with spaces.
The command fails when the phrase is not a number.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.newConverter(cmd)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			value, ok := w.Parse(text)
			res := batch.Result{Line: 1, Text: text, Value: value, OK: ok}

			var encode batch.Encoder = batch.PlainEncoder
			if opts.jsonOut {
				encode = batch.JSONEncoder
			}
			buf := bytebufferpool.Get()
			defer bytebufferpool.Put(buf)
			if err := encode(buf, res); err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(buf.B); err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("%q: %w", text, errNotANumber)
			}
			return nil
		},
	}
}
