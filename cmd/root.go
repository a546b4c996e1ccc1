package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tly/config"
	"github.com/s0up4200/tly/tly"
)

var (
	cfgFile  string
	token    string
	baseURL  string
	timeout  time.Duration
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
	client *tly.Client

	appVersion = "dev"
	buildTime  = "unknown"

	// preRunReached flips once cobra hands control to a command's hooks.
	// Cobra validates arguments and required flags first, so an error with
	// this still false came from the caller's input.
	preRunReached bool
)

// Process exit codes: API and unexpected errors map to 1, bad input to 2.
const (
	exitError = 1
	exitUsage = 2
)

// usageError marks bad caller input so Execute maps it to exit code 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tly",
	Short: "Command-line client for the T.LY URL shortener API",
	Long: `tly talks to the T.LY URL shortener API: create, expand, list and
manage short links, tags, pixels, UTM presets and QR codes.

The API token resolves from --token, the TLY_API_TOKEN environment
variable, or the config file, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		preRunReached = true
	},
}

// Execute runs the root command and maps errors to process exit codes.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(reportError(err))
	}
}

// execute runs the root command. Errors raised before any command hook
// ran are cobra rejecting the invocation itself (unknown subcommand, bad
// positional args, unset required flag) and count as usage errors.
func execute() error {
	preRunReached = false
	err := rootCmd.Execute()
	if err != nil && !preRunReached {
		err = usageError{err}
	}
	return err
}

// reportError prints err to stderr and picks the exit code. API errors
// additionally echo the raw response body for diagnostics.
func reportError(err error) int {
	var apiErr *tly.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(os.Stderr, apiErr)
		if apiErr.Body != "" {
			fmt.Fprintln(os.Stderr, apiErr.Body)
		}
		return exitError
	}

	fmt.Fprintln(os.Stderr, err)

	var usage usageError
	if errors.As(err, &usage) {
		return exitUsage
	}
	return exitError
}

// SetVersion records build information injected by the linker.
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.tly.yaml)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "API token (falls back to TLY_API_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base address (falls back to TLY_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	// Flag parse failures are caller input problems, exit code 2.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
}

// initializeApp loads configuration, applies flag overrides and builds the
// API client. Attached as PreRunE to every command that talks to the
// network; no request is issued here.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return usageError{err}
	}

	// CLI flags win over environment and config file values.
	if cmd.Flags().Changed("token") {
		cfg.Tly.Token = token
	}
	if cmd.Flags().Changed("base-url") {
		cfg.Tly.BaseURL = baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Tly.Timeout = timeout
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	logger = setupLogger(cfg.Logging)

	if cfg.Tly.Token == "" {
		return usageError{errors.New("missing API token: provide --token or set TLY_API_TOKEN")}
	}

	client, err = tly.NewClient(cfg.Tly.Token, logger,
		tly.WithBaseURL(cfg.Tly.BaseURL),
		tly.WithTimeout(cfg.Tly.Timeout),
		tly.WithUserAgent("tly-cli/"+appVersion),
	)
	if err != nil {
		return usageError{err}
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only on a real terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// printResult renders a client result to stdout: JSON pretty-printed,
// binary written raw, text as-is, empty as {}.
func printResult(result tly.Result) error {
	switch result.Kind {
	case tly.ResultBinary:
		_, err := os.Stdout.Write(result.Bytes)
		return err
	case tly.ResultJSON:
		return printJSON(result.Value)
	case tly.ResultText:
		fmt.Println(result.Text)
		return nil
	}
	return printJSON(map[string]any{})
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}
