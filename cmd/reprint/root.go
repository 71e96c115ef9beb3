package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/reprint"
)

const version = "v0.1.0"

// newRootCmd builds the command tree. Each call gets fresh flag state so
// tests can execute it repeatedly.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "reprint [file...]",
		Short: "Render YAML or JSON documents as compact debug text",
		Long: `reprint decodes YAML or JSON documents and renders each one on a
single line using a bracket style: "pretty" ([1, 2], {a: 1}) or "basic"
(space separated, no brackets), or a custom style from a styles file.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			p, err := printerFor(v)
			if err != nil {
				return err
			}
			docs, err := readDocuments(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, doc := range docs {
				if err := p.Fprint(out, doc); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: .reprint.yaml in the working or home directory)")
	pf.String("style", reprint.StylePretty, "style name: basic, pretty, or a name from --styles-file")
	pf.String("styles-file", "", "YAML file of custom styles")
	pf.Int("max-depth", 0, "elide composites nested deeper than this (0: unlimited)")
	pf.Int("max-width", 0, "truncate scalars wider than this many columns (0: unlimited)")

	root.AddCommand(newStylesCmd(&configFile))
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newStylesCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List available style names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			extra, err := loadStyles(v)
			if err != nil {
				return err
			}
			for _, name := range reprint.StyleNames(extra) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [file...]",
		Short: "Print the shape of each top-level document",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocuments(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			for _, doc := range docs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), reprint.Classify(doc)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "reprint", version)
			return err
		},
	}
}
