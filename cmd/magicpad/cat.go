package main

import (
	"github.com/bethropolis/magicpad/internal/render"
	"github.com/spf13/cobra"
)

func newCatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file.ntp>",
		Short: "Print a saved document with its formatting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := opts.newSession()
			if err := sess.Load(args[0]); err != nil {
				return err
			}
			return render.New(cmd.OutOrStdout(), opts.colors).Document(sess.Document(), sess.Registry())
		},
	}
}
