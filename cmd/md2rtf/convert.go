package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2rtf "github.com/alnah/go-md2rtf"
	"github.com/alnah/go-md2rtf/internal/config"
	"github.com/alnah/go-md2rtf/internal/fileutil"
	"github.com/alnah/go-md2rtf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteRTF           = errors.New("failed to write RTF file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// filePermissions is used for generated output files.
// rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// Combiner is the interface for the conversion service.
type Combiner interface {
	Convert(ctx context.Context, input md2rtf.Input) (*md2rtf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Combiner = (*md2rtf.Converter)(nil)

// run loads configuration, gathers documents, drives the pipeline, and
// writes the combined RTF file.
func run(ctx context.Context, args []string, flags *cliFlags, env *Environment) error {
	start := env.Now()

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				var searched []string
				if !fileutil.IsFilePath(flags.common.config) {
					searched = config.SearchPaths(flags.common.config)
				}
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve input paths
	paths, err := resolveInputPaths(args, cfg)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForNoInput())
	}

	// Discover markdown files
	files, err := discoverFiles(paths)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, strings.Join(paths, ", "))
	}

	// Read documents
	docs, err := loadDocuments(files)
	if err != nil {
		return err
	}

	outputName := fileutil.SanitizeOutputName(cfg.Output.Name)

	conv := md2rtf.NewConverter(
		md2rtf.WithWorkers(cfg.Convert.Workers),
		md2rtf.WithFonts(cfg.Fonts.Serif, cfg.Fonts.Mono),
	)

	result, err := conv.Convert(ctx, md2rtf.Input{
		Documents:   docs,
		Optimize:    cfg.Convert.OptimizeEnabled() && !flags.noOptimize,
		HTMLPreview: flags.output.html,
	})
	if err != nil {
		return err
	}

	// #nosec G306 -- RTF files are meant to be readable
	if err := os.WriteFile(outputName, result.RTF, filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteRTF, err, hints.ForOutputFile())
	}

	if result.HTML != nil {
		htmlName := htmlOutputPath(outputName)
		// #nosec G306 -- HTML files are meant to be readable
		if err := os.WriteFile(htmlName, result.HTML, filePermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputFile())
		}
	}

	printResult(flags, env, outputName, result.DocumentCount, result.Stats, env.Now().Sub(start))
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.output.name != "" {
		cfg.Output.Name = flags.output.name
	}
	if flags.fonts.serif != "" {
		cfg.Fonts.Serif = flags.fonts.serif
	}
	if flags.fonts.mono != "" {
		cfg.Fonts.Mono = flags.fonts.mono
	}
	if flags.workers > 0 {
		cfg.Convert.Workers = flags.workers
	}
}

// resolveInputPaths determines the input paths from args or config.
func resolveInputPaths(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, ErrNoInput
}

// discoverFiles finds all markdown files across the given paths.
// Files inside a directory are walked in lexical order, giving a stable
// combination order.
func discoverFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validateMarkdownExtension(path); err != nil {
				return nil, err
			}
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", p, err)
			}
			if d.IsDir() || !hasMarkdownExtension(p) {
				return nil
			}
			files = append(files, p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// hasMarkdownExtension reports whether the path ends in .md or .markdown.
func hasMarkdownExtension(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !hasMarkdownExtension(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2rtf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2rtf.MaxPoolSize)
	}
	return nil
}

// loadDocuments reads every file into a Document named after its
// extension-stripped base name.
func loadDocuments(files []string) ([]md2rtf.Document, error) {
	docs := make([]md2rtf.Document, 0, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path) // #nosec G304 -- discovered path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		docs = append(docs, md2rtf.Document{
			Name:    documentName(path),
			Content: string(content),
		})
	}
	return docs, nil
}

// documentName derives a display title from the file's base name.
func documentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// htmlOutputPath returns the HTML path corresponding to an RTF path.
func htmlOutputPath(rtfPath string) string {
	return strings.TrimSuffix(rtfPath, ".rtf") + ".html"
}

// printResult reports the outcome unless quiet mode is on.
func printResult(flags *cliFlags, env *Environment, outputName string, docCount int, stats *md2rtf.OptimizationStats, elapsed time.Duration) {
	if flags.common.quiet {
		return
	}

	noun := "documents"
	if docCount == 1 {
		noun = "document"
	}

	if stats != nil {
		fmt.Fprintf(env.Stdout, "Created %s (%d %s, %s)\n", outputName, docCount, noun, stats)
	} else {
		fmt.Fprintf(env.Stdout, "Created %s (%d %s)\n", outputName, docCount, noun)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Completed in %v\n", elapsed.Round(time.Millisecond))
	}
}
