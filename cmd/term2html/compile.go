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

	term2html "github.com/alnah/go-term2html"
	"github.com/alnah/go-term2html/internal/config"
	"github.com/alnah/go-term2html/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoSource           = errors.New("no source specified")
	ErrNoDestination      = errors.New("no destination specified")
	ErrSourceNotFound     = errors.New("source not found")
	ErrNoMarkdownFiles    = errors.New("no markdown files found in directory")
	ErrReadSource         = errors.New("failed to read source file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrConflictingSpacing = errors.New("--tight and --cell-width are mutually exclusive")
	ErrInvalidSpacing     = errors.New("invalid spacing value")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FileToCompile represents a single file to process.
type FileToCompile struct {
	InputPath  string
	OutputPath string
	Title      string
}

// runCompile orchestrates the compilation process.
func runCompile(ctx context.Context, positionalArgs []string, flags *compileFlags, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Resolve source and destination (positional args win over config)
	sourcePath, err := resolveSourcePath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	destPath, err := resolveDestPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	if flags.outDir != "" {
		destPath = filepath.Join(flags.outDir, destPath)
	}

	// Build the renderer from merged flags and config
	svc, err := buildService(flags, cfg)
	if err != nil {
		return err
	}

	// Discover files to compile
	files, err := discoverFiles(sourcePath, destPath, flags.title)
	if err != nil {
		return err
	}

	// Compile sequentially; the first failure aborts the batch.
	if err := compileBatch(ctx, svc, files, flags.common, env); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "Compilation complete!")
	}
	return nil
}

// resolveSourcePath determines the source path from args or config.
func resolveSourcePath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoSource
}

// resolveDestPath determines the destination path from args or config.
func resolveDestPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	if cfg.Output.DefaultDir != "" {
		return cfg.Output.DefaultDir, nil
	}
	return "", ErrNoDestination
}

// buildService creates a renderer from flags and config. CLI flags override
// config values; --tight and --cell-width select competing spacing models
// and cannot both be given.
func buildService(flags *compileFlags, cfg *config.Config) (*term2html.Service, error) {
	var opts []term2html.Option

	switch {
	case flags.tightSet && flags.cellWidthSet:
		return nil, ErrConflictingSpacing
	case flags.cellWidthSet:
		if flags.cellWidth < config.MinCellWidth || flags.cellWidth > config.MaxCellWidth {
			return nil, fmt.Errorf("%w: cell width %.2f (must be between %.2f and %.2f)",
				ErrInvalidSpacing, flags.cellWidth, config.MinCellWidth, config.MaxCellWidth)
		}
		opts = append(opts, term2html.WithCellWidth(flags.cellWidth))
	case flags.tightSet:
		if flags.tight < 0 || flags.tight > config.MaxTightening {
			return nil, fmt.Errorf("%w: tightening %.2f (must be between 0 and %.2f)",
				ErrInvalidSpacing, flags.tight, config.MaxTightening)
		}
		opts = append(opts, term2html.WithTightening(flags.tight))
	case strings.EqualFold(cfg.Render.SpacingModel, config.SpacingModelCellWidth):
		width := cfg.Render.CellWidth
		if width == 0 {
			width = term2html.DefaultCellWidth
		}
		opts = append(opts, term2html.WithCellWidth(width))
	case cfg.Render.Tightening != 0:
		opts = append(opts, term2html.WithTightening(cfg.Render.Tightening))
	}

	if flags.braille || cfg.Render.Braille {
		opts = append(opts, term2html.WithBrailleAlignment(true))
	}

	if len(cfg.Font.Stack) > 0 {
		opts = append(opts, term2html.WithFontStack(cfg.Font.Stack))
	}
	switch {
	case cfg.Font.Embedded.Disabled:
		opts = append(opts, term2html.WithoutEmbeddedFont())
	case cfg.Font.Embedded.Name != "":
		opts = append(opts, term2html.WithEmbeddedFont(cfg.Font.Embedded.Name, cfg.Font.Embedded.Path))
	}

	return term2html.New(opts...), nil
}

// discoverFiles finds all files to compile. A source file maps directly to
// the destination path; a source directory is walked recursively for
// Markdown files, each mapped to a mirrored .html path under the
// destination root.
func discoverFiles(sourcePath, destPath, customTitle string) ([]FileToCompile, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return nil, err
	}

	if !info.IsDir() {
		title := customTitle
		if title == "" {
			title = fileutil.Stem(sourcePath)
		}
		return []FileToCompile{{InputPath: sourcePath, OutputPath: destPath, Title: title}}, nil
	}

	var files []FileToCompile
	err = filepath.WalkDir(sourcePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		rel, err := filepath.Rel(sourcePath, path)
		if err != nil {
			return err
		}
		outRel := strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
		files = append(files, FileToCompile{
			InputPath:  path,
			OutputPath: filepath.Join(destPath, outRel),
			Title:      fileutil.Stem(path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMarkdownFiles, sourcePath)
	}
	return files, nil
}

// compileBatch processes files in order, printing a confirmation per file.
func compileBatch(ctx context.Context, svc *term2html.Service, files []FileToCompile, common commonFlags, env *Environment) error {
	for _, f := range files {
		start := env.Now()
		if err := compileFile(ctx, svc, f); err != nil {
			return fmt.Errorf("compiling %s: %w", f.InputPath, err)
		}

		if common.quiet {
			continue
		}
		if common.verbose {
			fmt.Fprintf(env.Stdout, "Compiled %s -> %s (%v)\n",
				f.InputPath, f.OutputPath, env.Now().Sub(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Compiled %s -> %s\n", f.InputPath, f.OutputPath)
		}
	}
	return nil
}

// compileFile reads the source, renders it, and writes the HTML document,
// creating parent directories as needed.
func compileFile(ctx context.Context, svc *term2html.Service, f FileToCompile) error {
	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	html, err := svc.Render(ctx, term2html.Input{Text: string(content), Title: f.Title})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// #nosec G306 -- generated HTML is meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}
