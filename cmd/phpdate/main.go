package main

import (
	"os"
	"time"

	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/phpdate"
)

var (
	timezone string
	locale   string
	instant  string
)

var rootCmd = &cobra.Command{
	Use:   "phpdate [flags] TEMPLATE",
	Short: "Format an instant with PHP date() specifiers",
	Long: `Format an instant with PHP date() specifiers.

Examples:
  phpdate 'l, jS F Y H:i:s P'
  phpdate -z Europe/Berlin -l de-DE 'l j F Y'
  phpdate -t 2024-03-10T12:00:00Z 'Y-m-d H:i:s P T'
  phpdate -t 1700000000000 U`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := time.Now()
		if instant != "" {
			var err error
			t, err = phpdate.ParseInstant(instant)
			if err != nil {
				return err
			}
		}

		out, err := phpdate.Format(t, args[0],
			phpdate.WithTimezone(timezone),
			phpdate.WithLocale(locale),
		)
		if err != nil {
			return err
		}

		cmd.Println(out)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&timezone, "timezone", "z", phpdate.DefaultTimezone, "IANA timezone identifier")
	rootCmd.Flags().StringVarP(&locale, "locale", "l", phpdate.DefaultLocale, "BCP 47 locale tag")
	rootCmd.Flags().StringVarP(&instant, "instant", "t", "", "instant to format (epoch milliseconds or ISO 8601); defaults to now")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("formatting failed")
		os.Exit(1)
	}
}
