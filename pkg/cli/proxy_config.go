package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bedrockclaw/bedrockclaw/pkg/proxyconf"
)

const defaultProxyConfigPath = "config/proxy.yaml"

// newProxyConfigCommand validates the proxy mapping file and prints the
// resolved alias table. The proxy process itself is external; this is the
// only tooling the repo owns around its config.
func newProxyConfigCommand() *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "proxy-config [path]",
		Short: "Validate the proxy model mapping and show its alias table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultProxyConfigPath
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := proxyconf.Load(path)
			if err != nil {
				return err
			}
			if err := doc.Validate(); err != nil {
				return fmt.Errorf("invalid proxy config %s: %w", path, err)
			}

			if render {
				data, err := doc.Render()
				if err != nil {
					return err
				}
				cmd.Print(string(data))
				return nil
			}

			aliases := doc.Aliases()
			cmd.Printf("%s: %d model aliases\n", path, len(aliases))
			for _, name := range doc.SortedAliases() {
				cmd.Printf("  %-24s -> %s\n", name, aliases[name])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "print the normalized YAML instead of the alias table")
	return cmd
}
