package main

import (
	"os"

	"github.com/spf13/cobra"

	serd "github.com/knakk/serdgo"
)

func newCatCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "cat [file]",
		Short: "Read one RDF syntax and write another",
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

			inSyntax, err := parseSyntax(from)
			if err != nil {
				return err
			}
			outSyntax, err := parseSyntax(to)
			if err != nil {
				return err
			}

			env := serd.NewEnv(serd.Node{})
			var stmts []serd.Statement
			sink := serd.SinkFunc{
				OnPrefix: func(tag string, uri serd.Node) error { return env.SetPrefix(tag, uri) },
				OnStatement: func(s serd.Statement) error {
					stmts = append(stmts, s)
					return nil
				},
			}
			r := serd.NewReader(inSyntax, sink, nil)
			if err := r.Read(in, serd.Node{}, serd.Node{}); err != nil {
				return err
			}

			if outSyntax == serd.SyntaxNTriples {
				for _, s := range stmts {
					if _, err := os.Stdout.WriteString(s.String()); err != nil {
						return err
					}
				}
				return nil
			}

			w := serd.NewWriter(os.Stdout, env, nil)
			if err := w.WritePrefixes(); err != nil {
				return err
			}
			return w.WriteGrouped(stmts)
		},
	}
	cmd.Flags().StringVar(&from, "from", "turtle", "input syntax: turtle|ntriples")
	cmd.Flags().StringVar(&to, "to", "turtle", "output syntax: turtle|ntriples")
	return cmd
}

func parseSyntax(s string) (serd.Syntax, error) {
	switch s {
	case "turtle", "ttl":
		return serd.SyntaxTurtle, nil
	case "ntriples", "nt":
		return serd.SyntaxNTriples, nil
	default:
		return 0, serd.ErrBadArg
	}
}
