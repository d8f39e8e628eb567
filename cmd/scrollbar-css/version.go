package main

import (
	"fmt"

	"bennypowers.dev/scrollbar/internal/version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newVersionCommand() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(info); err != nil {
					return err
				}
				return enc.Close()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info)
			return err
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print build metadata as YAML")

	return cmd
}
