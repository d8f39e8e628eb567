package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bennypowers.dev/scrollbar/generator"
	"bennypowers.dev/scrollbar/internal/config"
	"bennypowers.dev/scrollbar/internal/extract"
	"bennypowers.dev/scrollbar/internal/log"
	"bennypowers.dev/scrollbar/internal/stylesheet"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	root       string
	configPath string
	content    []string
	out        string
	check      bool
	pretty     bool
}

func newGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [tokens...]",
		Short: "Resolve utility tokens into a stylesheet",
		Long: `Resolves the given tokens, plus every token found in files matching the
content globs, and prints the resulting stylesheet.

Content globs come from --content or from the configuration file. When
neither tokens nor globs are given, HTML, JS, TS and Vue files under --root
are scanned.`,
		Example: `  scrollbar-css generate scrollbar scrollbar-rounded scrollbar-w-2
  scrollbar-css generate --content 'src/**/*.html' --out dist/scrollbar.css --check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.root, "root", ".", "directory content globs and config discovery are relative to")
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (default: discovered under --root)")
	flags.StringArrayVar(&opts.content, "content", nil, "glob of files to extract tokens from (repeatable)")
	flags.StringVarP(&opts.out, "out", "o", "", "write the stylesheet to this file instead of stdout")
	flags.BoolVar(&opts.check, "check", false, "fail when the generated CSS does not parse")
	flags.BoolVar(&opts.pretty, "pretty", false, "print one declaration per line")

	return cmd
}

func loadConfig(root, path string) (*config.File, error) {
	if path != "" {
		return config.Load(path)
	}
	f, err := config.Discover(root)
	if errors.Is(err, config.ErrNotFound) {
		log.Debug("No configuration under %s, using defaults", root)
		return &config.File{}, nil
	}
	return f, err
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, args []string) error {
	ctx := cmd.Context()

	file, err := loadConfig(opts.root, opts.configPath)
	if err != nil {
		return err
	}
	p, err := file.Preset()
	if err != nil {
		return err
	}

	tokens := append([]string(nil), args...)
	patterns := opts.content
	if len(patterns) == 0 {
		patterns = file.Content
	}
	if len(patterns) > 0 || len(tokens) == 0 {
		found, err := extract.New(p.Config().Prefix()).FS(ctx, os.DirFS(opts.root), patterns...)
		if err != nil {
			if found == nil {
				return err
			}
			log.Warn("%v", err)
		}
		log.Debug("Extracted %d candidate tokens", len(found))
		tokens = append(tokens, found...)
	}

	result, genErr := generator.New(p).Generate(ctx, tokens)
	if result == nil {
		return genErr
	}

	if opts.check {
		if err := stylesheet.Check(result.Rules, p.Config()); err != nil {
			return fmt.Errorf("generated CSS failed to parse: %w", err)
		}
	}

	format := stylesheet.Compact
	if opts.pretty {
		format = stylesheet.Pretty
	}
	if err := writeOutput(cmd.OutOrStdout(), opts.out, func(w io.Writer) error {
		return stylesheet.Write(w, result.Rules, format)
	}); err != nil {
		return err
	}

	log.Info("Generated %d rules for %d tokens", len(result.Rules), len(result.Matched))
	return genErr
}

func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // G304: user-supplied output path
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
