package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// options are the askbot settings; flags win over ELEVATEHUB_* variables
type options struct {
	URL     string
	User    string
	Token   string
	Store   string
	Timeout time.Duration
	NoColor bool
}

func parseFlags(args []string) (*options, error) {
	flags := pflag.NewFlagSet("askbot", pflag.ContinueOnError)
	opts := &options{}
	flags.StringVar(&opts.URL, "url", envOr("ELEVATEHUB_URL", "http://localhost:8000"), "Chatbot API URL (or ELEVATEHUB_URL)")
	flags.StringVar(&opts.User, "user", envOr("ELEVATEHUB_USER", "current-user"), "User ID sent with each message (or ELEVATEHUB_USER)")
	flags.StringVar(&opts.Token, "token", os.Getenv("ELEVATEHUB_TOKEN"), "Bearer token (or ELEVATEHUB_TOKEN)")
	flags.StringVar(&opts.Store, "store", envOr("ELEVATEHUB_STORE", defaultStorePath()), "Local settings database (or ELEVATEHUB_STORE)")
	flags.DurationVar(&opts.Timeout, "timeout", 30*time.Second, "Request timeout")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "askbot.db"
	}
	return filepath.Join(dir, "elevatehub", "askbot.db")
}
