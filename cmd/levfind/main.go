// Command levfind builds approximate-match search indexes and runs
// queries against them from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fulmenhq/levfind/config"
	"github.com/fulmenhq/levfind/finder"
	"github.com/fulmenhq/levfind/logging"
	"github.com/fulmenhq/levfind/normalize"
	"github.com/fulmenhq/levfind/tokenize"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "index":
		err = runIndex(args)
	case "search":
		err = runSearch(args)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `levfind commands:
  index  --corpus <file> [--tokenizer character|bigram|jamo|subword] [--subword-model <path>] Build an index and print its fingerprint.
  search --corpus <file> --query <text> --max-distance <k> [--format text|json] Run a query.
`)
}

func buildTokenizer(cfg *config.Config, pipeline *normalize.Pipeline) (tokenize.Tokenizer, error) {
	switch cfg.Tokenizer {
	case "", "character":
		return tokenize.NewCharacterTokenizer(pipeline), nil
	case "bigram":
		return tokenize.NewBigramTokenizer(pipeline), nil
	case "jamo":
		return tokenize.NewJamoTokenizer(pipeline), nil
	case "subword":
		if cfg.SubwordPath == "" {
			return nil, fmt.Errorf("--subword-model is required for the subword tokenizer")
		}
		tok := tokenize.NewSubwordTokenizer()
		if err := tok.Train([]string{cfg.SubwordPath}); err != nil {
			return nil, err
		}
		return tok, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", cfg.Tokenizer)
	}
}

func buildPipeline(cfg *config.Config) (*normalize.Pipeline, error) {
	opts := normalize.Options{}
	for _, name := range cfg.Normalizers {
		switch name {
		case "unicode":
			opts.Unicode = true
		case "lowercase":
			opts.Lowercase = true
		case "number":
			opts.Number = true
		}
	}
	return normalize.BuildPipeline(opts)
}

func runIndex(args []string) error {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	corpusPath := fs.String("corpus", "", "Path to a corpus file, one entry per line")
	tokenizerName := fs.String("tokenizer", "character", "Tokenizer: character|bigram|jamo|subword")
	subwordModel := fs.String("subword-model", "", "Path to a trained SentencePiece model file (required for --tokenizer subword)")
	pretokenized := fs.Bool("pretokenized", false, "Treat each corpus line as whitespace-separated tokens")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *corpusPath == "" {
		return fmt.Errorf("--corpus is required")
	}

	cfg := config.DefaultConfig()
	cfg.Tokenizer = *tokenizerName
	cfg.SubwordPath = *subwordModel
	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	tok, err := buildTokenizer(cfg, pipeline)
	if err != nil {
		return err
	}

	logger, err := logging.NewCLI("levfind")
	if err != nil {
		return err
	}
	defer logger.Sync()

	f := finder.New(tok, logger)
	if err := f.IndexFile(*corpusPath, *pretokenized); err != nil {
		return err
	}

	fmt.Println(f.String())
	return nil
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	corpusPath := fs.String("corpus", "", "Path to a corpus file, one entry per line")
	query := fs.String("query", "", "Query string")
	maxDistance := fs.Int("max-distance", 2, "Maximum edit distance")
	tokenizerName := fs.String("tokenizer", "character", "Tokenizer: character|bigram|jamo|subword")
	subwordModel := fs.String("subword-model", "", "Path to a trained SentencePiece model file (required for --tokenizer subword)")
	pretokenized := fs.Bool("pretokenized", false, "Treat corpus lines and the query as whitespace-separated tokens")
	format := fs.String("format", "text", "Output format: text|json")
	verbose := fs.Bool("verbose", false, "Log query diagnostics at DEBUG")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *corpusPath == "" {
		return fmt.Errorf("--corpus is required")
	}

	cfg := config.DefaultConfig()
	cfg.Tokenizer = *tokenizerName
	cfg.SubwordPath = *subwordModel
	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	tok, err := buildTokenizer(cfg, pipeline)
	if err != nil {
		return err
	}

	logger, err := logging.NewCLI("levfind")
	if err != nil {
		return err
	}
	defer logger.Sync()
	if *verbose {
		logger.SetLevel(logging.ParseSeverity("DEBUG"))
	}

	f := finder.New(tok, logger)
	if err := f.IndexFile(*corpusPath, *pretokenized); err != nil {
		return err
	}

	hits, err := f.Search(context.Background(), *query, *maxDistance, *pretokenized, *verbose)
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	default:
		for _, h := range hits {
			fmt.Printf("%d\t%s\t%d\n", h.Index, h.Data, h.Distance)
		}
		return nil
	}
}
