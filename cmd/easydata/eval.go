package main

import (
	"github.com/spf13/cobra"

	"github.com/wzshiming/easydata"
)

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "eval <expression> [file]",
		Short: "Evaluate a CEL expression over a document and print the classified result",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			doc, err := readDocument(cmd, cfg, path)
			if err != nil {
				return err
			}
			classifier := newClassifier(cfg)
			adapter, err := easydata.NewAdapter(classifier)
			if err != nil {
				return err
			}
			env, err := easydata.NewEnvironment(adapter)
			if err != nil {
				return err
			}
			d, err := env.Eval(args[0], map[string]any{name: doc})
			if err != nil {
				return err
			}
			return printData(cmd, cfg, classifier, d)
		},
	}
	cmd.Flags().StringVar(&name, "var", "doc", "variable the document is bound to")
	return cmd
}
