package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Config holds the parsed CLI flags.
type Config struct {
	Complexity string
	Length     int
	Flags      crypto.Flags
	Count      int
}

// ParseFlags registers and parses command-line flags on fs so tests can
// call it without touching the global flag state.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	defaults := crypto.DefaultFlags()

	fs.StringVar(&cfg.Complexity, "complexity", string(crypto.Medium), "Tier: easy, medium, hard, very_strong or custom")
	fs.IntVar(&cfg.Length, "length", 0, "Password length (0 uses the tier default)")
	fs.BoolVar(&cfg.Flags.Uppercase, "uppercase", defaults.Uppercase, "Include uppercase letters (custom tier)")
	fs.BoolVar(&cfg.Flags.Numbers, "numbers", defaults.Numbers, "Include digits (custom tier)")
	fs.BoolVar(&cfg.Flags.Special, "special", defaults.Special, "Include special characters (custom tier)")
	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates the passwords described by cfg.
func Run(gen *crypto.Generator, cfg Config) ([]string, error) {
	complexity, err := crypto.ParseComplexity(cfg.Complexity)
	if err != nil {
		return nil, err
	}
	if cfg.Length < 0 {
		return nil, crypto.ErrInvalidLength
	}

	req := crypto.GenerationRequest{Complexity: complexity, Length: cfg.Length}
	if complexity == crypto.Custom {
		req.Flags = &cfg.Flags
	}
	return gen.BatchGenerate(req, cfg.Count)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg, err := ParseFlags(fs, args)
	if err != nil {
		return 2
	}

	passwords, err := Run(crypto.NewGenerator(), cfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		return 1
	}

	for _, pw := range passwords {
		fmt.Fprintln(stdout, pw)
	}
	return 0
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
