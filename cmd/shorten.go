package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tly/tly"
)

var (
	shortenLongURL     string
	shortenDomain      string
	shortenDescription string
	shortenExpireAt    string
	shortenPublicStats bool
	shortenMetaJSON    string
)

// shortenCmd represents the shorten command
var shortenCmd = &cobra.Command{
	Use:     "shorten",
	Short:   "Create a short link",
	PreRunE: initializeApp,
	RunE:    runShorten,
}

func init() {
	rootCmd.AddCommand(shortenCmd)

	shortenCmd.Flags().StringVar(&shortenLongURL, "long-url", "", "destination URL (required)")
	shortenCmd.Flags().StringVar(&shortenDomain, "domain", "", "custom short domain")
	shortenCmd.Flags().StringVar(&shortenDescription, "description", "", "link description")
	shortenCmd.Flags().StringVar(&shortenExpireAt, "expire-at-datetime", "", "expiry date or timestamp")
	shortenCmd.Flags().BoolVar(&shortenPublicStats, "public-stats", false, "make click statistics public")
	shortenCmd.Flags().StringVar(&shortenMetaJSON, "meta-json", "", "arbitrary JSON metadata")
	shortenCmd.MarkFlagRequired("long-url")
}

func runShorten(cmd *cobra.Command, args []string) error {
	defer client.Close()

	opts := &tly.ShortenOptions{
		Domain:      shortenDomain,
		Description: shortenDescription,
		ExpireAt:    tly.TimestampString(shortenExpireAt),
	}
	// The flag only ever turns public stats on; leaving it off omits the
	// field so the server default applies.
	if shortenPublicStats {
		opts.PublicStats = tly.Bool(true)
	}
	if shortenMetaJSON != "" {
		var meta any
		if err := json.Unmarshal([]byte(shortenMetaJSON), &meta); err != nil {
			return usageError{fmt.Errorf("invalid JSON in --meta-json: %w", err)}
		}
		opts.Meta = meta
	}

	result, err := client.CreateShortLink(cmd.Context(), shortenLongURL, opts)
	if err != nil {
		return err
	}
	return printResult(result)
}
