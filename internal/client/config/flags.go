package config

import (
	"flag"
	"os"
	"time"

	"github.com/crack-social/crack-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file (default from Config)
//	-p int      payment confirmation delay in seconds (default from Config)
//
// Note: the function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	paymentConfirmDelay := fs.Int("p", int(cfg.PaymentConfirmDelay.Seconds()), "payment confirmation delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PaymentConfirmDelay = time.Duration(*paymentConfirmDelay) * time.Second
}
