package main

import (
	"github.com/spf13/cobra"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [file]",
		Short: "Print the classified tree of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := readDocument(cmd, cfg, path)
			if err != nil {
				return err
			}
			classifier := newClassifier(cfg)
			d, err := classifier.Classify(doc)
			if err != nil {
				return err
			}
			return printData(cmd, cfg, classifier, d)
		},
	}
}
