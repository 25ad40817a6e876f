package main

import (
	"strings"

	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"

	word2num "github.com/baditaflorin/go_word2num"
	"github.com/baditaflorin/go_word2num/internal/adapters/logger"
)

type rootOptions struct {
	language  string
	threshold int
	jsonOut   bool
	verbose   bool
	cacheSize int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "word2num",
		Short: "Convert number phrases to numbers",
		Long: `Convert number phrases such as "twenty-three point five" or
"dos mil novecientos" to numbers. Misspelled words are matched fuzzily.

Examples:
  word2num parse two thousand nine hundred and fifty six
  word2num parse --lang es tres cuartos
  word2num batch --json phrases.txt
  cat phrases.txt | word2num batch --threshold 70`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.language, "lang", "l", "en", "language code ("+joinCodes()+")")
	flags.IntVarP(&opts.threshold, "threshold", "t", word2num.DefaultFuzzyThreshold, "fuzzy threshold, 100 disables fuzzy matching")
	flags.BoolVar(&opts.jsonOut, "json", false, "write JSON output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log parse steps to stderr")
	flags.IntVar(&opts.cacheSize, "cache", 0, "size of the word match cache (0 = disabled)")

	cmd.AddCommand(newParseCmd(opts), newBatchCmd(opts))
	return cmd
}

func joinCodes() string {
	return strings.Join(word2num.SupportedLanguages(), ", ")
}

// newConverter builds a converter from the persistent flags.
func (o *rootOptions) newConverter(cmd *cobra.Command) (*word2num.Word2Num, error) {
	converterOpts := []word2num.Option{
		word2num.WithFuzzyThreshold(o.threshold),
		word2num.WithMatchCache(o.cacheSize),
	}
	if o.verbose {
		cfg := logger.DefaultConfig()
		cfg.Output = cmd.ErrOrStderr()
		cfg.AsyncWrite = false
		log, err := l.NewStandardFactory().CreateLogger(cfg)
		if err != nil {
			return nil, err
		}
		converterOpts = append(converterOpts, word2num.WithLogger(log))
	} else {
		converterOpts = append(converterOpts, word2num.WithDiscardLogger())
	}
	return word2num.New(o.language, converterOpts...)
}
