// checkphrase derives human-pronounceable checkphrases for address-like
// strings and maintains the wordlist and conformance corpus behind them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/quantus-network/go-checkphrase/config"
	"github.com/quantus-network/go-checkphrase/internal/corpus"
	"github.com/quantus-network/go-checkphrase/internal/log"
	"github.com/quantus-network/go-checkphrase/internal/vectors"
	"github.com/quantus-network/go-checkphrase/internal/wlsync"
	"github.com/quantus-network/go-checkphrase/pkg/checkphrase"
	"github.com/quantus-network/go-checkphrase/pkg/wordlist"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	cfg := config.Default()
	configPath := filepath.Join(cfg.DataDir, config.ConfigFileName)

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--config" && len(args) > 1:
			configPath = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--config="):
			configPath = args[0][len("--config="):]
			args = args[1:]
		case args[0] == "--wordlist" && len(args) > 1:
			cfg.Wordlist.File = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--wordlist="):
			cfg.Wordlist.File = args[0][len("--wordlist="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.Log.Level = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.Log.Level = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--log-json":
			cfg.Log.JSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	// Config file fills anything the flags didn't override.
	values, err := config.LoadFile(configPath)
	if err != nil {
		fatal("load config %s: %v", configPath, err)
	}
	if err := config.ApplyFileConfig(cfg, values); err != nil {
		fatal("apply config: %v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "derive":
		cmdDerive(cfg, cmdArgs)
	case "verify":
		cmdVerify(cfg, cmdArgs)
	case "build":
		cmdBuild(cmdArgs)
	case "vectors":
		cmdVectors(cfg, cmdArgs)
	case "check":
		cmdCheck(cfg, cmdArgs)
	case "sync":
		cmdSync(cfg, cmdArgs)
	case "fetch":
		cmdFetch(cfg, cmdArgs)
	case "version":
		fmt.Printf("checkphrase %s\n", Version)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: checkphrase [global flags] <command> [flags]

Global flags:
  --config <path>     Config file (default: ~/.checkphrase/checkphrase.conf)
  --wordlist <path>   Wordlist file (default: built-in canonical list)
  --log-level <lvl>   debug, info, warn, error (default: info)
  --log-json          JSON log output

Commands:
  derive [address]                Derive the checkphrase for an address
                                  (reads stdin when no address is given)
  verify <address> <phrase>       Check a phrase against an address
  build --existing <f> --candidates <f> --output <f> [--max 2048]
                                  Extend a wordlist with prefix-unique words
  vectors [--count n] [--seed n] [--output f] [--no-coverage]
                                  Generate the conformance corpus
  check [--corpus f]              Replay a conformance corpus
  sync [--check] [--text f,...] [--json f,...]
                                  Sync derived wordlist representations
  fetch [--url u] [--out f]       Fetch the base corpus (cached)
  version                         Show version
`)
}

// loadWordlist returns the configured wordlist, or the built-in canonical
// list when no file is set.
func loadWordlist(cfg *config.Config) *wordlist.Wordlist {
	if cfg.Wordlist.File == "" {
		return wordlist.English()
	}
	wl, err := wordlist.Load(cfg.Wordlist.File)
	if err != nil {
		fatal("%v", err)
	}
	return wl
}

// ── derive ──────────────────────────────────────────────────────────────

func cmdDerive(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	words := fs.Int("words", checkphrase.DefaultLength, "Words per phrase")
	sep := fs.String("sep", "-", "Word separator")
	fs.Parse(args)

	address := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if address == "" {
		address = readAddress()
	}

	wl := loadWordlist(cfg)

	defer log.Benchmark("derive")()
	phrase, err := checkphrase.Derive([]byte(address), wl, *words)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(strings.Join(phrase, *sep))
}

// readAddress reads one address from stdin, prompting only when stdin is a
// terminal so piped input stays clean.
func readAddress() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Address: ")
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fatal("no address on stdin")
	}
	address := strings.TrimSpace(scanner.Text())
	if address == "" {
		fatal("empty address")
	}
	return address
}

// ── verify ──────────────────────────────────────────────────────────────

func cmdVerify(cfg *config.Config, args []string) {
	if len(args) != 2 {
		fatal("Usage: checkphrase verify <address> <word-word-word-word-word>")
	}
	address, phrase := args[0], args[1]

	claimed := strings.Split(phrase, "-")
	wl := loadWordlist(cfg)

	derived, err := checkphrase.Derive([]byte(address), wl, len(claimed))
	if err != nil {
		fatal("%v", err)
	}

	if strings.Join(derived, "-") == strings.Join(claimed, "-") {
		fmt.Println("MATCH")
		return
	}
	fmt.Println("MISMATCH")
	fmt.Printf("  expected: %s\n", strings.Join(derived, "-"))
	fmt.Printf("  got:      %s\n", strings.Join(claimed, "-"))
	os.Exit(1)
}

// ── build ───────────────────────────────────────────────────────────────

func cmdBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	existingPath := fs.String("existing", "", "Existing wordlist file")
	candidatesPath := fs.String("candidates", "", "Candidate words file")
	output := fs.String("output", "", "Output wordlist file")
	maxWords := fs.Int("max", wordlist.Size, "Maximum total words")
	afinn := fs.Bool("afinn", false, "Candidates file is AFINN (word<TAB>score)")
	fs.Parse(args)

	if *existingPath == "" || *candidatesPath == "" || *output == "" {
		fatal("Usage: checkphrase build --existing <f> --candidates <f> --output <f> [--max n] [--afinn]")
	}

	existing, err := readWordFile(*existingPath)
	if err != nil {
		fatal("%v", err)
	}

	var candidates []string
	if *afinn {
		f, err := os.Open(*candidatesPath)
		if err != nil {
			fatal("%v", err)
		}
		candidates, err = corpus.DefaultAFINNFilter().Filter(f)
		f.Close()
		if err != nil {
			fatal("%v", err)
		}
	} else {
		candidates, err = readWordFile(*candidatesPath)
		if err != nil {
			fatal("%v", err)
		}
	}

	result := wordlist.Build(existing, candidates, *maxWords)

	for _, w := range result.Warnings {
		log.Wordlist.Warn().
			Str("word", w.Word).
			Str("prefix", w.Prefix).
			Str("conflicts_with", w.Existing).
			Msg("duplicate prefix in existing list")
	}
	for _, r := range result.Rejected {
		log.Wordlist.Debug().
			Str("word", r.Word).
			Str("prefix", r.Prefix).
			Str("conflicts_with", r.Existing).
			Msg("candidate rejected")
	}

	if err := os.WriteFile(*output, []byte(strings.Join(result.Words, "\n")+"\n"), 0644); err != nil {
		fatal("write %s: %v", *output, err)
	}

	fmt.Printf("Existing words:        %d\n", len(existing))
	fmt.Printf("Candidates processed:  %d\n", len(candidates))
	fmt.Printf("Candidates added:      %d\n", len(result.Added))
	fmt.Printf("Candidates rejected:   %d (prefix conflict)\n", len(result.Rejected))
	fmt.Printf("Skipped (hyphenated):  %d\n", len(result.SkippedHyphenated))
	fmt.Printf("Skipped (duplicate):   %d\n", len(result.SkippedDuplicate))
	fmt.Printf("Final word count:      %d\n", len(result.Words))
	fmt.Printf("Output written to:     %s\n", *output)

	if !result.Complete() {
		fmt.Printf("\nNote: still need %d more words to reach %d\n", result.Remaining(), *maxWords)
		os.Exit(1)
	}
}

func readWordFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}

// ── vectors ─────────────────────────────────────────────────────────────

func cmdVectors(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("vectors", flag.ExitOnError)
	count := fs.Int("count", cfg.Vectors.Count, "Target vector count")
	seed := fs.Int64("seed", cfg.Vectors.Seed, "Generator seed")
	output := fs.String("output", cfg.Vectors.Output, "Output corpus file")
	noCoverage := fs.Bool("no-coverage", !cfg.Vectors.FullCoverage, "Don't require full word coverage")
	fs.Parse(args)

	wl := loadWordlist(cfg)

	c, err := vectors.Generate(wl, vectors.Options{
		TargetCount:        *count,
		EnsureFullCoverage: !*noCoverage,
		Seed:               *seed,
	})
	if err != nil {
		fatal("%v", err)
	}

	if err := c.Save(*output); err != nil {
		fatal("write corpus: %v", err)
	}

	fmt.Printf("Vectors:  %d\n", c.Statistics.TotalVectors)
	fmt.Printf("Coverage: %d/%d (%.1f%%)\n",
		c.Statistics.WordsCovered, c.Statistics.TotalWords, c.Statistics.CoveragePercent)
	fmt.Printf("Corpus:   %s\n", *output)

	if !c.FullCoverage() && !*noCoverage {
		os.Exit(1)
	}
}

// ── check ───────────────────────────────────────────────────────────────

func cmdCheck(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	path := fs.String("corpus", cfg.Vectors.Output, "Corpus file to replay")
	fs.Parse(args)

	wl := loadWordlist(cfg)

	c, err := vectors.Load(*path)
	if err != nil {
		fatal("%v", err)
	}

	mismatches, err := c.Verify(wl)
	if err != nil {
		fatal("%v", err)
	}
	if len(mismatches) == 0 {
		fmt.Printf("OK: %d vectors conform\n", len(c.TestCases))
		return
	}
	for _, m := range mismatches {
		fmt.Printf("MISMATCH %s\n", m.Address)
		fmt.Printf("  expected: %s\n", strings.Join(m.Expected, "-"))
		fmt.Printf("  got:      %s\n", strings.Join(m.Got, "-"))
	}
	os.Exit(1)
}

// ── sync ────────────────────────────────────────────────────────────────

func cmdSync(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	checkOnly := fs.Bool("check", false, "Report drift without writing")
	textList := fs.String("text", strings.Join(cfg.Sync.TextTargets, ","), "Text targets (comma-separated)")
	jsonList := fs.String("json", strings.Join(cfg.Sync.JSONTargets, ","), "JSON targets (comma-separated)")
	fs.Parse(args)

	var targets []wlsync.Target
	for _, p := range splitList(*textList) {
		targets = append(targets, wlsync.Target{Path: p, Format: wlsync.FormatText})
	}
	for _, p := range splitList(*jsonList) {
		targets = append(targets, wlsync.Target{Path: p, Format: wlsync.FormatJSON})
	}
	if len(targets) == 0 {
		fatal("no sync targets (use --text/--json or sync.text/sync.json in config)")
	}

	wl := loadWordlist(cfg)

	report, err := wlsync.Sync(wl, targets, *checkOnly)
	if err != nil {
		fatal("%v", err)
	}
	for _, r := range report.Results {
		fmt.Printf("[%s] %s\n", strings.ToUpper(string(r.State)), r.Target.Path)
	}
	if !report.InSync() {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ── fetch ───────────────────────────────────────────────────────────────

func cmdFetch(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	url := fs.String("url", cfg.Corpus.URL, "Corpus URL")
	out := fs.String("out", cfg.Corpus.CacheFile, "Cache file")
	fs.Parse(args)

	fetcher := &corpus.Fetcher{
		URL:       *url,
		CachePath: *out,
		Expect:    wordlist.Size,
	}
	words, err := fetcher.Load()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Loaded %d words (%s)\n", len(words), *out)
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
