// ABOUTME: "pichat plugins" lists descriptors in the plugins directory and the builtin handlers

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pichat/internal/plugin"
)

func newPluginsCmd(args *cliArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List available plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd, *args)
			if err != nil {
				return err
			}
			names, err := plugin.NewLoader(s.PluginsDir).List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Descriptors in %s:\n", s.PluginsDir)
			if len(names) == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for _, n := range names {
				marker := " "
				if n == s.Plugin {
					marker = "*"
				}
				fmt.Fprintf(out, " %s %s\n", marker, n)
			}
			fmt.Fprintf(out, "Builtins: %s\n", strings.Join(plugin.BuiltinNames(), ", "))
			return nil
		},
	}
}
