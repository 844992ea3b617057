// Command smoketest runs every cleaner and the number expander over a
// directory of .txt files and reports invariant violations.
//
//	go run ./cmd/smoketest <directory>
//
// Checked per line:
//
//   - transliteration output is pure ASCII;
//   - basic and transliteration are idempotent;
//   - expanded text keeps no digit run that fits the numeral range;
//   - haitian_creole output contains no ASCII uppercase letters.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kreyol-ai/ht-lang-nlp/internal/logger"
	"github.com/kreyol-ai/ht-lang-nlp/normalize"
	"github.com/kreyol-ai/ht-lang-nlp/numtext"
)

const (
	maxWorkers     = 4
	expectedArgs   = 2
	scannerBufSize = 1 << 20 // 1 MB
	bytesToMBShift = 20
	maxRangeDigits = 15
)

// Stats aggregates results across files.
type Stats struct {
	mu              sync.Mutex
	filesScanned    int
	totalBytes      int64
	lines           int
	digitRuns       int
	longRuns        int
	nonASCII        int
	notIdempotent   int
	leftoverDigits  int
	uppercase       int
	throughputs     []float64
	cleanerDuration map[string]time.Duration
}

type fileState struct {
	path            string
	totalBytes      int64
	lines           int
	digitRuns       int
	longRuns        int
	nonASCII        int
	notIdempotent   int
	leftoverDigits  int
	uppercase       int
	cleanerDuration map[string]time.Duration
	logged          map[string]bool
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}
	log := logger.Named("smoketest")

	var filePaths []string
	err := filepath.WalkDir(os.Args[1], func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("walking directory")
	}

	log.Info().Int("files", len(filePaths)).Msg("found files to process")
	start := time.Now()

	stats := &Stats{cleanerDuration: make(map[string]time.Duration)}
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			processFile(path, stats, log)
		})
	}
	wg.Wait()

	log.Info().Dur("elapsed", time.Since(start).Round(time.Millisecond)).Msg("completed")
	printStats(stats)
}

func processFile(path string, stats *Stats, log *logger.Logger) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("open")
		return
	}
	defer func() { _ = f.Close() }()

	state := &fileState{
		path:            path,
		cleanerDuration: make(map[string]time.Duration),
		logged:          make(map[string]bool),
	}
	fileStart := time.Now()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for scanner.Scan() {
		state.processLine(scanner.Text(), log)
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Str("path", path).Msg("read")
	}

	elapsed := time.Since(fileStart)
	log.Debug().
		Str("file", filepath.Base(path)).
		Dur("elapsed", elapsed.Round(time.Millisecond)).
		Int64("mb", state.totalBytes>>bytesToMBShift).
		Msg("done")

	mergeFileState(state, elapsed, stats)
}

func (fs *fileState) processLine(line string, log *logger.Logger) {
	fs.totalBytes += int64(len(line)) + 1
	fs.lines++

	runs := digitRuns(line)
	fs.digitRuns += len(runs)
	for _, r := range runs {
		if len(strings.TrimLeft(r, "0")) > maxRangeDigits {
			fs.longRuns++
		}
	}

	expanded := numtext.ExpandNumbers(line)
	for _, r := range digitRuns(expanded) {
		if len(strings.TrimLeft(r, "0")) <= maxRangeDigits {
			fs.leftoverDigits++
			fs.report(log, "leftover_digits", line, expanded)
		}
	}

	for _, name := range normalize.Names() {
		c, _ := normalize.Lookup(name)
		start := time.Now()
		out := c(line)
		fs.cleanerDuration[name] += time.Since(start)

		switch name {
		case "transliteration":
			if !isASCII(out) {
				fs.nonASCII++
				fs.report(log, "non_ascii", line, out)
			}
			fallthrough
		case "basic":
			if again := c(out); again != out {
				fs.notIdempotent++
				fs.report(log, "not_idempotent_"+name, out, again)
			}
		case "haitian_creole":
			if strings.ContainsFunc(out, func(r rune) bool { return 'A' <= r && r <= 'Z' }) {
				fs.uppercase++
				fs.report(log, "uppercase", line, out)
			}
		}
	}
}

// report logs the first violation of each kind per file.
func (fs *fileState) report(log *logger.Logger, kind, want, got string) {
	if fs.logged[kind] {
		return
	}
	fs.logged[kind] = true
	pos, g, w := firstDivergence(want, got)
	log.Warn().
		Str("path", fs.path).
		Str("kind", kind).
		Int("byte", pos).
		Hex("got", []byte{g}).
		Hex("want", []byte{w}).
		Msg("invariant violated")
}

func mergeFileState(fs *fileState, elapsed time.Duration, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.lines += fs.lines
	stats.digitRuns += fs.digitRuns
	stats.longRuns += fs.longRuns
	stats.nonASCII += fs.nonASCII
	stats.notIdempotent += fs.notIdempotent
	stats.leftoverDigits += fs.leftoverDigits
	stats.uppercase += fs.uppercase
	for name, d := range fs.cleanerDuration {
		stats.cleanerDuration[name] += d
	}
	if secs := elapsed.Seconds(); secs > 0 {
		stats.throughputs = append(stats.throughputs, float64(fs.totalBytes)/float64(1<<bytesToMBShift)/secs)
	}
}

// digitRuns returns the maximal runs of ASCII digits in s.
func digitRuns(s string) []string {
	var runs []string
	for i := 0; i < len(s); {
		if s[i] < '0' || s[i] > '9' {
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		runs = append(runs, s[i:j])
		i = j
	}
	return runs
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Lines:                   %d\n", stats.lines)
	fmt.Printf("Digit runs:              %d\n", stats.digitRuns)
	fmt.Printf("Runs beyond range:       %d\n", stats.longRuns)
	fmt.Printf("Leftover digit runs:     %d\n", stats.leftoverDigits)
	fmt.Printf("Non-ASCII translit:      %d\n", stats.nonASCII)
	fmt.Printf("Not idempotent:          %d\n", stats.notIdempotent)
	fmt.Printf("Uppercase in output:     %d\n", stats.uppercase)
	fmt.Printf("Median MB/s per file:    %.2f\n", computeMedian(stats.throughputs))
	fmt.Println()

	fmt.Println("Time per cleaner:")
	for _, name := range normalize.Names() {
		fmt.Printf("  %-17s %s\n", name+":", stats.cleanerDuration[name].Round(time.Millisecond))
	}
}
