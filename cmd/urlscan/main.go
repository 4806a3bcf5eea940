package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/3ajes/URL/internal/banner"
	"github.com/3ajes/URL/internal/engine"
	"github.com/3ajes/URL/internal/model"
	"github.com/3ajes/URL/internal/output"
	"github.com/3ajes/URL/internal/runner"
)

type options struct {
	url         string
	inputFile   string
	threads     int
	delay       time.Duration
	silent      bool
	summary     bool
	noBanner    bool
	verbose     bool
	outputJSONL string
	outputHTML  string
}

func main() {
	opts := parseFlags()
	if !opts.noBanner && !opts.silent {
		banner.PrintBanner()
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "[-] Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.url, "u", "", "Target URL")
	flag.StringVar(&opts.inputFile, "f", "", "File with one URL per line")
	flag.IntVar(&opts.threads, "t", 10, "Threads")
	flag.DurationVar(&opts.delay, "delay", 0, "Artificial pause before showing results (display only)")
	flag.BoolVar(&opts.silent, "silent", false, "Suppress per-target output")
	flag.BoolVar(&opts.summary, "summary", false, "Show one-line summary per target")
	flag.BoolVar(&opts.noBanner, "no-banner", false, "Skip the startup banner")
	flag.BoolVar(&opts.verbose, "v", false, "Enable verbose output")
	flag.StringVar(&opts.outputJSONL, "o", "", "JSONL output file")
	flag.StringVar(&opts.outputHTML, "html", "", "HTML report output file")
	flag.Parse()
	return opts
}

func run(opts options) error {
	if opts.url == "" && opts.inputFile == "" {
		return errors.New("-u (target URL) or -f (input file) is required")
	}
	if opts.url != "" && opts.inputFile != "" {
		return errors.New("-u and -f are mutually exclusive")
	}
	if opts.threads <= 0 {
		return fmt.Errorf("-t must be greater than zero (got %d)", opts.threads)
	}
	if opts.delay < 0 {
		return fmt.Errorf("-delay must be >= 0 (got %s)", opts.delay)
	}

	targets, err := buildTargets(opts.url, opts.inputFile)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.New("no targets to scan")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.verbose {
		fmt.Fprintf(os.Stderr, "[config] targets=%d threads=%d delay=%s\n", len(targets), opts.threads, opts.delay)
	}

	runr := runner.New(runner.Config{Threads: opts.threads}, engine.Default())
	reports := runr.Run(ctx, targets)

	// The pause simulates analysis time for interactive use. It lives out
	// here so the engine itself stays synchronous and delay-free, and it is
	// cancelled by Ctrl-C.
	pause(ctx, opts.delay)

	if !opts.silent {
		printConsole(reports, opts)
	}

	if opts.outputJSONL != "" {
		records := make([]output.Record, len(reports))
		for i, rep := range reports {
			records[i] = output.BuildRecord(rep)
		}
		if err := writeJSONLFile(opts.outputJSONL, records, opts.verbose); err != nil {
			return err
		}
	}
	if opts.outputHTML != "" {
		views := make([]output.ResultView, len(reports))
		for i, rep := range reports {
			views[i] = output.BuildResultView(i, rep)
		}
		page := output.PageData{
			Title:       "URL Risk Report",
			GeneratedAt: time.Now().UTC(),
			Summary:     output.BuildSummary(reports),
			Results:     views,
		}
		if err := writeHTMLFile(opts.outputHTML, page, opts.verbose); err != nil {
			return err
		}
	}
	return nil
}

func buildTargets(urlStr, inputFile string) ([]string, error) {
	if urlStr != "" {
		return []string{urlStr}, nil
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", inputFile, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var targets []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		targets = append(targets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input file read error: %w", err)
	}
	return targets, nil
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func printConsole(reports []model.Report, opts options) {
	total := len(reports)
	for i, rep := range reports {
		if opts.summary {
			output.PrintSummaryLine(i, total, rep)
			continue
		}
		fmt.Printf("=== Target %d/%d ===\n", i+1, total)
		output.PrintReport(rep)
		fmt.Println()
	}
}

func writeJSONLFile(path string, records []output.Record, verbose bool) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create JSONL directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSONL file: %w", err)
	}
	defer f.Close()
	if err := output.WriteJSONL(f, records); err != nil {
		return fmt.Errorf("write JSONL: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[write] JSONL report -> %s\n", path)
	}
	return nil
}

func writeHTMLFile(path string, page output.PageData, verbose bool) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create HTML directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create HTML file: %w", err)
	}
	defer f.Close()
	if err := output.RenderHTML(f, page); err != nil {
		return fmt.Errorf("write HTML: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[write] HTML report -> %s\n", path)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
