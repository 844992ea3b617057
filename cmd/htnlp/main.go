// Command htnlp cleans Haitian Creole text for speech synthesis.
//
// Usage:
//
//	htnlp [flags] [text ...]
//
// With text arguments, the joined arguments are cleaned and printed. Without
// them, each line of -input (or stdin) is cleaned and printed.
//
//	htnlp -number 2023            # de mil ven-twa
//	htnlp -expand "Li gen 3 chat" # Li gen twa chat
//	htnlp -cleaner basic < in.txt
//	htnlp -phonemes "Bonjou"      # requires espeak-ng
//	htnlp -serve -config htnlp.yaml
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/kreyol-ai/ht-lang-nlp/internal/config"
	"github.com/kreyol-ai/ht-lang-nlp/internal/logger"
	"github.com/kreyol-ai/ht-lang-nlp/internal/server"
	"github.com/kreyol-ai/ht-lang-nlp/normalize"
	"github.com/kreyol-ai/ht-lang-nlp/numtext"
	"github.com/kreyol-ai/ht-lang-nlp/phonemize"
)

const (
	scannerBufSize  = 1 << 20 // 1 MB
	shutdownTimeout = 5 * time.Second
)

type options struct {
	configPath string
	cleaner    string
	number     string
	input      string
	expand     bool
	phonemes   bool
	serve      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt options
	fs := flag.NewFlagSet("htnlp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&opt.cleaner, "cleaner", "", "cleaner name: "+strings.Join(normalize.Names(), ", "))
	fs.StringVar(&opt.number, "number", "", "print the Haitian Creole words for an integer and exit")
	fs.StringVar(&opt.input, "input", "", "read lines from this file instead of stdin")
	fs.BoolVar(&opt.expand, "expand", false, "only spell out digit runs, leave other text unchanged")
	fs.BoolVar(&opt.phonemes, "phonemes", false, "phonemize cleaned text with espeak-ng")
	fs.BoolVar(&opt.serve, "serve", false, "run the HTTP API")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(opt.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "htnlp: %v\n", err)
		return 1
	}
	if opt.cleaner != "" {
		if _, err := normalize.Lookup(opt.cleaner); err != nil {
			fmt.Fprintf(stderr, "htnlp: %v\n", err)
			return 1
		}
		cfg.Cleaner = opt.cleaner
	}

	logger.Init(logger.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "htnlp",
		Writer:  stderr,
	})
	log := logger.Named("cli")

	espeak := phonemize.NewEspeak(phonemize.Options{
		Binary:  cfg.Phonemizer.Binary,
		Voice:   cfg.Phonemizer.Voice,
		Timeout: cfg.Phonemizer.Timeout,
	})

	switch {
	case opt.number != "":
		return printNumber(opt.number, stdout, stderr)
	case opt.serve:
		if err := serve(cfg, espeak); err != nil {
			log.Error().Err(err).Msg("server stopped")
			return 1
		}
		return 0
	}

	process, err := processor(cfg.Cleaner, opt, espeak)
	if err != nil {
		fmt.Fprintf(stderr, "htnlp: %v\n", err)
		return 1
	}

	if fs.NArg() > 0 {
		out, err := process(strings.Join(fs.Args(), " "))
		if err != nil {
			log.Error().Err(err).Msg("processing failed")
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0
	}

	in := stdin
	if opt.input != "" {
		f, err := os.Open(opt.input)
		if err != nil {
			fmt.Fprintf(stderr, "htnlp: open input: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	n, err := processLines(in, stdout, process)
	if err != nil {
		log.Error().Err(err).Int("lines", n).Msg("processing failed")
		return 1
	}
	log.Debug().Int("lines", n).Str("cleaner", cfg.Cleaner).Msg("done")
	return 0
}

func printNumber(s string, stdout, stderr io.Writer) int {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		fmt.Fprintf(stderr, "htnlp: -number: %v\n", err)
		return 1
	}
	words, err := numtext.Convert(n)
	if err != nil {
		fmt.Fprintf(stderr, "htnlp: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, words)
	return 0
}

// processor returns the per-text transformation selected by the flags.
func processor(cleaner string, opt options, ph normalize.Phonemizer) (func(string) (string, error), error) {
	switch {
	case opt.expand:
		return func(s string) (string, error) { return numtext.ExpandNumbers(s), nil }, nil
	case opt.phonemes:
		return func(s string) (string, error) {
			return normalize.Phonemes(context.Background(), ph, s)
		}, nil
	}
	c, err := normalize.Lookup(cleaner)
	if err != nil {
		return nil, err
	}
	return func(s string) (string, error) { return c(s), nil }, nil
}

// processLines applies process to every line of r and writes the results
// to w, one per line. It returns the number of lines written.
func processLines(r io.Reader, w io.Writer, process func(string) (string, error)) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	bw := bufio.NewWriter(w)

	n := 0
	for scanner.Scan() {
		out, err := process(scanner.Text())
		if err != nil {
			_ = bw.Flush()
			return n, fmt.Errorf("line %d: %w", n+1, err)
		}
		if _, err := fmt.Fprintln(bw, out); err != nil {
			return n, err
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		_ = bw.Flush()
		return n, fmt.Errorf("read input: %w", err)
	}
	return n, bw.Flush()
}

func serve(cfg *config.Config, ph normalize.Phonemizer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, ph, logger.Named("server"))
	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}
