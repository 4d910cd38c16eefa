package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/winarcooo/pendulum/log"
	"github.com/winarcooo/pendulum/parsing"
)

func main() {
	var dayFirst bool
	var yearFirst bool
	var strict bool
	var exact bool
	var nowStr string

	rootCmd := &cobra.Command{
		Use:   "pendulum [text]",
		Short: "Parse a string into a date, time or datetime",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			opts := []parsing.Option{
				parsing.WithDayFirst(dayFirst),
				parsing.WithYearFirst(yearFirst),
				parsing.WithStrict(strict),
				parsing.WithExact(exact),
			}
			if nowStr != "" {
				now, err := time.Parse(time.RFC3339, nowStr)
				if err != nil {
					log.Error().Err(err).Msg("Couldn't parse --now")
					os.Exit(1)
				}
				opts = append(opts, parsing.WithNow(now))
			}

			parsed, err := parsing.Parse(args[0], opts...)
			if err != nil {
				log.Error().Err(err).Msg("Parse failed")
				os.Exit(1)
			}

			out, err := json.Marshal(parsed)
			if err != nil {
				log.Error().Err(err).Msg("Couldn't marshal result")
				os.Exit(1)
			}
			fmt.Println(string(out))
		},
	}
	rootCmd.Flags().BoolVar(&dayFirst, "day-first", false, "treat the first group of an ambiguous date as the day")
	rootCmd.Flags().BoolVar(&yearFirst, "year-first", true, "treat the first group of an ambiguous date as the year")
	rootCmd.Flags().BoolVar(&strict, "strict", true, "fail instead of falling back to fuzzy parsing")
	rootCmd.Flags().BoolVar(&exact, "exact", false, "return the raw date or time instead of a full datetime")
	rootCmd.Flags().StringVar(&nowStr, "now", "", "reference instant as RFC 3339, for backfilling missing components")

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
