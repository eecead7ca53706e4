package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/magicpad/internal/app"
	"github.com/bethropolis/magicpad/internal/document"
	"github.com/spf13/cobra"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert <input.txt>",
		Short: "Format a markup text file and save it as .ntp",
		Long: `Read a plain text file containing **bold**, //italic// and
color::text:: markup, format every line, and save the styled document.

Examples:
  magicpad convert notes.txt
  magicpad convert notes.txt -o styled.ntp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if output == "" {
				output = strings.TrimSuffix(input, filepath.Ext(input)) + document.FileExtension
			}
			return opts.convert(cmd, input, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .ntp path (default: input with .ntp extension)")
	return cmd
}

func (o *rootOptions) convert(cmd *cobra.Command, input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("%w: reading '%s': %w", document.ErrIO, input, err)
	}

	sess := o.newSession()
	sess.SetText(strings.ReplaceAll(string(data), "\r\n", "\n"))
	warnings, err := sess.ScanAll()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), app.WarningMessage(w))
	}

	if err := sess.Save(output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", output)
	return nil
}
