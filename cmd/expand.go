package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/tly/tly"
)

var (
	expandShortURL string
	expandPassword string
)

// expandCmd represents the expand command
var expandCmd = &cobra.Command{
	Use:     "expand",
	Short:   "Expand a short link to its destination",
	PreRunE: initializeApp,
	RunE:    runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)

	expandCmd.Flags().StringVar(&expandShortURL, "short-url", "", "short link to expand (required)")
	expandCmd.Flags().StringVar(&expandPassword, "password", "", "password for protected links")
	expandCmd.MarkFlagRequired("short-url")
}

func runExpand(cmd *cobra.Command, args []string) error {
	defer client.Close()

	// An explicitly empty --password is still sent to the API.
	opts := &tly.ExpandOptions{}
	if cmd.Flags().Changed("password") {
		opts.Password = tly.String(expandPassword)
	}

	result, err := client.ExpandShortLink(cmd.Context(), expandShortURL, opts)
	if err != nil {
		return err
	}
	return printResult(result)
}
