package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log zerolog.Logger

func initConfig() {

	viper.SetConfigName("seqgz")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/seqgz")

	viper.SetDefault("compress.level", -1)
	viper.SetDefault("compress.workers", 1)
	viper.SetDefault("cat.cache_blocks", 32)

	// a missing config file just means defaults
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Msg("unable to read config file")
		}
	}
}

func main() {

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var verbose bool

	root := &cobra.Command{
		Use:   "seqgz",
		Short: "blocked-gzip (BGZF) compression tooling for genomics files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cobra.OnInitialize(initConfig)

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())
	root.AddCommand(newIndexCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newCatCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// splitRange parses a "start:end" logical-stream byte range.
func splitRange(s string) (start, end uint64, ok bool) {

	a, b, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}

	var err error
	if start, err = strconv.ParseUint(a, 10, 64); err != nil {
		return 0, 0, false
	}
	if end, err = strconv.ParseUint(b, 10, 64); err != nil {
		return 0, 0, false
	}

	return start, end, start <= end
}
