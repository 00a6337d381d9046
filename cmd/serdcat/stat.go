package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	serd "github.com/knakk/serdgo"
)

func newStatCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "stat [file]",
		Short: "Print statement count and maintained index set for a document",
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
			m, err := serd.NewModel(serd.OrderSPO, 0, nil, nil)
			if err != nil {
				return err
			}
			r := serd.NewReader(syn, serd.ModelSink{Model: m}, nil)
			tag := uuid.NewString()
			name := serd.NewIRIUnsafe("urn:serdcat:" + tag)
			if err := r.Read(in, serd.Node{}, name); err != nil {
				return err
			}
			fmt.Printf("statements: %d\n", m.Count())
			fmt.Printf("indexes:    %v\n", m.Orders())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "turtle", "input syntax: turtle|ntriples")
	return cmd
}
