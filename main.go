// dtcipher - double columnar transposition cipher
//
// Scheme:
// - Keys and text are normalized: whitespace and ASCII punctuation removed,
//   full Unicode uppercase applied (ß → SS).
// - Each key defines a column order: the alphabetical order of its letters,
//   repeated letters left to right.
// - Encoding writes the text round-robin into len(key) columns and reads the
//   columns out in key order; this runs once with key1 and once with key2.
// - Ciphertext is printed in blocks of 5 letters.
//
// Decoding runs the two passes backwards (key2, then key1) and returns the
// normalized plaintext; original casing and punctuation are not recoverable.
//
// Notes:
// - Keys come from --key1/--key2 or --prompt (hidden input on a TTY).
// - Text comes from the arguments, or stdin when no arguments are given.
// - Defaults may be set in a TOML file (--config or $DTCIPHER_CONFIG).

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"dtcipher/internal"

	"golang.org/x/term"
)

var version = "dev"

func usage() {
	prog := filepath.Base(os.Args[0])

	fmt.Println(internal.Banner(version))
	fmt.Println()

	fmt.Println(internal.Style("Usage:", internal.Bold, internal.Blue))
	fmt.Printf("  %s %s\n", prog, internal.Style("--key1 K1 --key2 K2 [options] [text ...]", internal.Cyan))
	fmt.Printf("  %s %s\n", prog, internal.Style("--key1 K1 --key2 K2 -d [options] [ciphertext ...]", internal.Cyan))
	fmt.Println()

	fmt.Println(internal.Style("Flags:", internal.Bold, internal.Blue))
	fmt.Println(internal.Style("  --key1  --key2  --prompt  --mask  -d|--decode  --block  --qr  --verify  --strict  --config  --self-test  --no-color  --verbose  --version", internal.Cyan))
	fmt.Println()

	fmt.Println(internal.Style("Examples:", internal.Bold, internal.Blue))
	fmt.Printf("  %s --key1 Apfel --key2 Kirsche Beispielklartext\n", prog)
	fmt.Printf("  %s --key1 Apfel --key2 Kirsche -d 'SLEEK XILRB IEATT P'\n", prog)
	fmt.Printf("  echo 'Hallo Welt!' | %s --key1 Hans --key2 Dampf\n", prog)
	fmt.Println(internal.Style("Text is uppercased; spaces and punctuation are dropped.", internal.Gray))
}

func main() {
	key1 := flag.String("key1", "", "First transposition key")
	key2 := flag.String("key2", "", "Second transposition key")
	prompt := flag.Bool("prompt", false, "Securely prompt for missing keys (no echo)")
	mask := flag.Bool("mask", true, "With --prompt, show * while typing (use --mask=false to disable)")
	decode := flag.Bool("decode", false, "Decode ciphertext instead of encoding")
	flag.BoolVar(decode, "d", false, "Shorthand for --decode")
	block := flag.Int("block", internal.BlockSize, "Ciphertext block width; 0 disables grouping")
	qrOut := flag.Bool("qr", false, "Also print the ciphertext as a terminal QR code")
	verify := flag.Bool("verify", false, "Decode after encoding and fail on round-trip mismatch")
	strict := flag.Bool("strict", false, "Refuse weak keys instead of warning")
	configPath := flag.String("config", "", "TOML config file (default $"+internal.ConfigEnv+")")
	selfTest := flag.Bool("self-test", false, "Run built-in randomized round-trip test harness")
	noColor := flag.Bool("no-color", false, "Disable colored output (TTY-safe)")
	verbose := flag.Bool("verbose", false, "Log debug details to stderr")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	// Config file, then explicit flags on top
	path := *configPath
	if path == "" {
		path = os.Getenv(internal.ConfigEnv)
	}
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "block":
			cfg.BlockSize = *block
		case "qr":
			cfg.QR = *qrOut
		case "verify":
			cfg.Verify = *verify
		case "strict":
			cfg.Strict = *strict
		}
	})
	if *noColor {
		cfg.Color = internal.ColorNever
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	level, _ := internal.ParseLevel(cfg.LogLevel)
	logger := internal.NewLogger(os.Stderr, level)
	slog.SetDefault(logger)
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}

	internal.SetColorEnabled(internal.ResolveColor(cfg.Color, term.IsTerminal(int(syscall.Stdout))))

	if *selfTest {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		fmt.Println(internal.Style("== Self-test: random texts and keys ==", internal.Bold))
		if failed := internal.RunSelfTest(os.Stdout, r, 8, 64); failed > 0 {
			os.Exit(1)
		}
		return
	}

	// Resolve keys
	k1, k2 := *key1, *key2
	if *prompt {
		if k1 == "" {
			if k1, err = internal.PromptForKey("key1", *mask, !*decode); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(2)
			}
		}
		if k2 == "" {
			if k2, err = internal.PromptForKey("key2", *mask, !*decode); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(2)
			}
		}
	}

	text, ok, err := readText(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if !ok {
		usage()
		os.Exit(0)
	}

	policy := internal.DefaultKeyPolicy()
	policy.Strict = cfg.Strict
	advisories, err := internal.EnforceKeys(k1, k2, policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	for _, a := range advisories {
		logger.Warn("weak key", "key", a.Key, "reason", a.Message)
	}

	opts := internal.Options{BlockSize: cfg.BlockSize, Logger: logger}
	var out string
	switch {
	case *decode:
		out, err = internal.DecodeWith(opts, k1, k2, text)
	case cfg.Verify:
		out, err = internal.EncodeVerified(opts, k1, k2, text)
	default:
		out, err = internal.EncodeWith(opts, k1, k2, text)
	}
	if err != nil {
		// Never echo keys or text back in error output
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	fmt.Println(out)

	if cfg.QR && out != "" {
		code, err := internal.RenderQR(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		fmt.Print(code)
	}
}

// readText joins the positional arguments, or reads stdin when there are
// none and stdin is not a terminal. ok is false when no input was supplied.
func readText(args []string) (text string, ok bool, err error) {
	if len(args) > 0 {
		return strings.Join(args, " "), true, nil
	}
	if term.IsTerminal(int(syscall.Stdin)) {
		return "", false, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", false, fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(b), true, nil
}
