// Command serdcat reads RDF in one syntax and writes it in another, or
// inspects an in-memory model for debugging. It is a thin external
// collaborator around the serd package: serdcat owns all flag/env/config
// parsing and never sits on the core package's import graph the other
// direction.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "serdcat:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "serdcat",
		Short: "Read and write RDF Turtle/N-Triples documents",
	}
	root.PersistentFlags().String("config", "", "config file (default $HOME/.serdcat.yaml)")
	root.PersistentFlags().Bool("debug", false, "no effect: no subcommand reads it (dump has its own --debug)")
	cobra.OnInitialize(func() { initConfig(root) })

	root.AddCommand(newCatCmd())
	root.AddCommand(newStatCmd())
	root.AddCommand(newDumpCmd())
	return root
}

func initConfig(root *cobra.Command) {
	if cfg, _ := root.PersistentFlags().GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".serdcat")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("SERDCAT")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // absence of a config file is not an error
}
