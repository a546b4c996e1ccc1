package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tly/tly"
)

var (
	qrShortURL string
	qrOutput   string
	qrFormat   string
	qrOutFile  string
)

// qrCmd represents the qr command
var qrCmd = &cobra.Command{
	Use:     "qr",
	Short:   "Fetch the QR code for a short link",
	Long: `Fetch the QR code for a short link. The default output is the raw
image, written to --out or to stdout; with --output base64 the API answers
with JSON carrying a data URI instead.`,
	PreRunE: initializeApp,
	RunE:    runQR,
}

func init() {
	rootCmd.AddCommand(qrCmd)

	qrCmd.Flags().StringVar(&qrShortURL, "short-url", "", "short link (required)")
	qrCmd.Flags().StringVar(&qrOutput, "output", tly.QROutputImage, "output mode (image or base64)")
	qrCmd.Flags().StringVar(&qrFormat, "format", tly.QRFormatPNG, "image format (png or eps)")
	qrCmd.Flags().StringVar(&qrOutFile, "out", "", "file path for the binary image")
	qrCmd.MarkFlagRequired("short-url")
}

func runQR(cmd *cobra.Command, args []string) error {
	defer client.Close()

	switch qrOutput {
	case tly.QROutputImage, tly.QROutputBase64:
	default:
		return usageError{fmt.Errorf("invalid --output %q (must be image or base64)", qrOutput)}
	}
	switch qrFormat {
	case tly.QRFormatPNG, tly.QRFormatEPS:
	default:
		return usageError{fmt.Errorf("invalid --format %q (must be png or eps)", qrFormat)}
	}

	result, err := client.QRCode(cmd.Context(), qrShortURL, qrOutput, qrFormat)
	if err != nil {
		return err
	}

	if result.Kind == tly.ResultBinary && qrOutFile != "" {
		if err := os.WriteFile(qrOutFile, result.Bytes, 0o644); err != nil {
			return fmt.Errorf("failed to write QR image: %w", err)
		}
		fmt.Println(qrOutFile)
		return nil
	}
	return printResult(result)
}
