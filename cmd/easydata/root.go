package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wzshiming/easydata"
	"github.com/wzshiming/easydata/internal/config"
	"github.com/wzshiming/easydata/internal/document"
	"github.com/wzshiming/easydata/internal/render"
)

type rootOptions struct {
	configPath string
	format     string
	tagName    string
	fieldCase  string
	depth      int
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "easydata",
		Short:         "Classify dynamic documents into list, mapping, object and literal data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath+")")
	flags.StringVarP(&opts.format, "format", "f", "", "input format: auto, json, yaml, toml or protojson")
	flags.StringVar(&opts.tagName, "tag", "", "struct tag naming object fields")
	flags.StringVar(&opts.fieldCase, "field-case", "", "case for untagged object fields: snake, camel or kebab")
	flags.IntVarP(&opts.depth, "depth", "d", -1, "levels to print below the root, 0 for all")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newClassifyCmd(opts),
		newEvalCmd(opts),
	)
	return cmd
}

// resolve merges the config file with the flags that were set.
func (o *rootOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("tag") {
		cfg.TagName = o.tagName
	}
	if flags.Changed("field-case") {
		cfg.FieldCase = o.fieldCase
	}
	if flags.Changed("depth") {
		cfg.Depth = o.depth
	}
	if o.noColor {
		disabled := false
		cfg.Color = &disabled
	}
	if err := cfg.Validate("flags"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClassifier(cfg *config.Config) *easydata.Classifier {
	opts := []easydata.ClassifierOption{
		easydata.WithTagName(cfg.TagName),
	}
	if namer := cfg.FieldNamer(); namer != nil {
		opts = append(opts, easydata.WithFieldNamer(namer))
	}
	return easydata.NewClassifier(opts...)
}

func newPrinter(w io.Writer, cfg *config.Config, c *easydata.Classifier) *render.Printer {
	return render.New(w,
		render.WithClassifier(c),
		render.WithDepth(cfg.Depth),
		render.WithColor(cfg.ColorEnabled()),
	)
}

// printData prints d to stdout and warns on stderr when the depth limit hid part of it.
func printData(cmd *cobra.Command, cfg *config.Config, c *easydata.Classifier, d easydata.Data) error {
	p := newPrinter(cmd.OutOrStdout(), cfg, c)
	if err := p.Print(d); err != nil {
		return err
	}
	if p.Truncated() {
		warn := color.New(color.FgYellow)
		if !cfg.ColorEnabled() {
			warn.DisableColor()
		}
		_, _ = warn.Fprintf(cmd.ErrOrStderr(), "warning: output truncated at depth %d, use --depth 0 to print everything\n", cfg.Depth)
	}
	return nil
}

// readDocument decodes the file named by path, or stdin when path is empty or "-".
func readDocument(cmd *cobra.Command, cfg *config.Config, path string) (any, error) {
	in := cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	doc, err := document.Decode(in, document.DetectFormat(cfg.Format, path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(path), err)
	}
	return doc, nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
