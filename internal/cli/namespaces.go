package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNamespacesCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "namespaces",
		Aliases: []string{"ns"},
		Short:   "Inspect namespaces",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the namespaces available for graph creation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, err := s.namespaces().List(cmd.Context())
			if err != nil {
				return err
			}
			if s.jsonOutput {
				if ns == nil {
					ns = []string{}
				}
				return s.printJSON(cmd.OutOrStdout(), ns)
			}
			for _, n := range ns {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	})
	return cmd
}
