package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newGraphsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "graphs",
		Aliases: []string{"graph"},
		Short:   "Create, inspect and delete graphs",
	}
	cmd.AddCommand(
		newGraphsCreateCmd(s),
		newGraphsGetCmd(s),
		newGraphsListCmd(s),
		newGraphsDeleteCmd(s),
	)
	return cmd
}

func newGraphsCreateCmd(s *session) *cobra.Command {
	var flags struct {
		description string
		storeType   string
	}

	cmd := &cobra.Command{
		Use:   "create <graph-id>",
		Short: "Create a simple graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storeType, err := domaingraph.ParseStoreType(flags.storeType)
			if err != nil {
				return err
			}

			g, err := s.graphs().Create(cmd.Context(), args[0], flags.description, storeType)
			if err != nil {
				return err
			}

			if s.jsonOutput {
				return s.printJSON(cmd.OutOrStdout(), g)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created graph %s (%s)\n", g.GraphID, storeType)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Graph description")
	cmd.Flags().StringVarP(&flags.storeType, "store-type", "s", domaingraph.StoreTypeMapStore.String(), "Backing store")
	cobra.CheckErr(cmd.MarkFlagRequired("description"))
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("store-type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, st := range domaingraph.StoreTypes() {
			out = append(out, st.String())
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}))
	return cmd
}

func newGraphsGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <graph-id>",
		Short: "Show a single graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := s.graphs().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if s.jsonOutput {
				return s.printJSON(cmd.OutOrStdout(), g)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderGraphs([]domaingraph.Graph{g}))
			return nil
		},
	}
}

func newGraphsListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all graphs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			graphs, err := s.graphs().List(cmd.Context())
			if err != nil {
				return err
			}
			if s.jsonOutput {
				if graphs == nil {
					graphs = []domaingraph.Graph{}
				}
				return s.printJSON(cmd.OutOrStdout(), graphs)
			}
			if len(graphs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No graphs found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderGraphs(graphs))
			return nil
		},
	}
}

func newGraphsDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <graph-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a graph",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.graphs().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted graph %s\n", args[0])
			return nil
		},
	}
}

func renderGraphs(graphs []domaingraph.Graph) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("GRAPH ID", "DESCRIPTION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, g := range graphs {
		t.Row(g.GraphID, g.Description)
	}
	return t.String()
}
