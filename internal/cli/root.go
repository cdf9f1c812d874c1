// Package cli implements the ytscribe command-line interface.
package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/famomatic/ytscribe/client"
	"github.com/famomatic/ytscribe/internal/store"
)

// Configuration keys. Each maps to a flag and a YTSCRIBE_* environment
// variable.
const (
	keyDBPath          = "db.path"
	keyLanguages       = "transcript.languages"
	keyRetryAttempts   = "transcript.attempts"
	keyRetryDelay      = "transcript.retry_delay"
	keySaveConcurrency = "save.concurrency"
	keyRateLimit       = "network.rate_limit"
	keyTimeout         = "network.timeout"
	keyProxy           = "network.proxy"
	keyLogLevel        = "log.level"
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to the video cache database (default ~/.ytscribe/videos.db)")
	pf.StringSlice("languages", []string{"en"}, "Caption language preference order")
	pf.Int("attempts", 3, "Transcript fetch attempts")
	pf.Duration("retry-delay", 500*time.Millisecond, "Delay between transcript attempts")
	pf.Int("concurrency", 1, "Parallel fetches for bulk save")
	pf.Float64("rate-limit", 4, "Outgoing requests per second")
	pf.Duration("timeout", 30*time.Second, "Per-request timeout")
	pf.String("proxy", "", "Proxy URL for all requests")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")

	must(viper.BindPFlag(keyDBPath, pf.Lookup("db")))
	must(viper.BindPFlag(keyLanguages, pf.Lookup("languages")))
	must(viper.BindPFlag(keyRetryAttempts, pf.Lookup("attempts")))
	must(viper.BindPFlag(keyRetryDelay, pf.Lookup("retry-delay")))
	must(viper.BindPFlag(keySaveConcurrency, pf.Lookup("concurrency")))
	must(viper.BindPFlag(keyRateLimit, pf.Lookup("rate-limit")))
	must(viper.BindPFlag(keyTimeout, pf.Lookup("timeout")))
	must(viper.BindPFlag(keyProxy, pf.Lookup("proxy")))
	must(viper.BindPFlag(keyLogLevel, pf.Lookup("log-level")))

	cobra.OnInitialize(setup)
}

var rootCmd = &cobra.Command{
	Use:           "ytscribe",
	Short:         "Fetch video metadata and transcripts from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func setup() {
	viper.SetEnvPrefix("ytscribe")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	lvl, err := logrus.ParseLevel(viper.GetString(keyLogLevel))
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// logrusLogger adapts the global logrus logger to client.Logger.
type logrusLogger struct{}

func (logrusLogger) Infof(format string, args ...any) { logrus.Infof(format, args...) }
func (logrusLogger) Warnf(format string, args ...any) { logrus.Warnf(format, args...) }

func clientConfig() client.Config {
	return client.Config{
		ProxyURL:             viper.GetString(keyProxy),
		RequestTimeout:       viper.GetDuration(keyTimeout),
		Languages:            viper.GetStringSlice(keyLanguages),
		TranscriptAttempts:   viper.GetInt(keyRetryAttempts),
		TranscriptRetryDelay: viper.GetDuration(keyRetryDelay),
		SaveConcurrency:      viper.GetInt(keySaveConcurrency),
		RateLimit:            rate.Limit(viper.GetFloat64(keyRateLimit)),
		Logger:               logrusLogger{},
	}
}

// newClient builds a client without a cache store.
func newClient() *client.Client {
	return client.New(clientConfig())
}

// newCachedClient builds a client backed by the sqlite cache. The
// returned closer must be deferred.
func newCachedClient() (*client.Client, func() error, error) {
	path := viper.GetString(keyDBPath)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(home, ".ytscribe", "videos.db")
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	cfg := clientConfig()
	cfg.Store = s
	return client.New(cfg), s.Close, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
