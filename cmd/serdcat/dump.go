package main

import (
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	serd "github.com/knakk/serdgo"
)

func newDumpCmd() *cobra.Command {
	var from string
	var debug bool
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Pretty-print the parsed statements for debugging",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			syn, err := parseSyntax(from)
			if err != nil {
				return err
			}
			var stmts []serd.Statement
			sink := serd.SinkFunc{OnStatement: func(s serd.Statement) error {
				stmts = append(stmts, s)
				return nil
			}}
			r := serd.NewReader(syn, sink, nil)
			if err := r.Read(in, serd.Node{}, serd.Node{}); err != nil {
				return err
			}
			if debug {
				repr.Println(stmts)
				return nil
			}
			for _, s := range stmts {
				os.Stdout.WriteString(s.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "turtle", "input syntax: turtle|ntriples")
	cmd.Flags().BoolVar(&debug, "debug", false, "pretty-print Go values instead of N-Triples")
	return cmd
}
