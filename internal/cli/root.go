// Package cli implements the gaas command line client.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alanyang/gaas-console/internal/adapter/gaasapi"
	"github.com/alanyang/gaas-console/internal/adapter/memory"
	"github.com/alanyang/gaas-console/internal/config"
	"github.com/alanyang/gaas-console/internal/logging"
	"github.com/alanyang/gaas-console/internal/repository"
	graphsvc "github.com/alanyang/gaas-console/internal/service/graph"
	namespacesvc "github.com/alanyang/gaas-console/internal/service/namespace"
	"github.com/alanyang/gaas-console/internal/wire"
)

// session is populated by the root command before any subcommand runs.
type session struct {
	v          *viper.Viper
	configFile string
	jsonOutput bool

	cfg    *config.Config
	client *gaasapi.Client
	logs   io.Closer
}

func (s *session) graphs() *graphsvc.Service {
	return graphsvc.NewService(repository.NewGraphs(s.client), memory.NewEventBus())
}

func (s *session) namespaces() *namespacesvc.Service {
	return namespacesvc.NewService(repository.NewGetAllNamespacesRepo(s.client))
}

func (s *session) printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func NewRootCmd() *cobra.Command {
	s := &session{v: config.New()}

	root := &cobra.Command{
		Use:   "gaas",
		Short: "Manage graphs on a GaaS deployment",
		Long: wordwrap.WrapString(
			"gaas talks to the Graph-as-a-Service REST API. It creates, inspects and "+
				"deletes simple graphs, lists namespaces and obtains bearer tokens. "+
				"Settings come from flags, GAAS_* environment variables, a .env file "+
				"or a config file.",
			80),
		PersistentPreRunE: s.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if s.logs != nil {
				s.logs.Close()
			}
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.configFile, "config", "", "Path to a config file")
	pf.BoolVar(&s.jsonOutput, "json", false, "Output in JSON format")
	pf.String("api-url", "", "Base URL of the GaaS API")
	pf.String("api-token", "", "Bearer token for the GaaS API")
	pf.Duration("timeout", 0, "Per-request timeout")
	pf.Uint("retries", 0, "Attempts per request (1 disables retrying)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	bindFlag(s.v, pf, config.KeyAPIURL, "api-url")
	bindFlag(s.v, pf, config.KeyAPIToken, "api-token")
	bindFlag(s.v, pf, config.KeyAPITimeout, "timeout")
	bindFlag(s.v, pf, config.KeyAPIRetries, "retries")
	bindFlag(s.v, pf, config.KeyLogLevel, "log-level")

	root.AddCommand(
		newGraphsCmd(s),
		newNamespacesCmd(s),
		newLoginCmd(s),
	)
	return root
}

// bindFlag maps a flag onto a config key. Viper only prefers the flag once it
// has been set, so the zero defaults above never mask env or file values.
func bindFlag(v *viper.Viper, fs *pflag.FlagSet, key, name string) {
	cobra.CheckErr(v.BindPFlag(key, fs.Lookup(name)))
}

func (s *session) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(s.v, s.configFile)
	if err != nil {
		return err
	}

	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer := logging.New(cmd.ErrOrStderr(), logging.FormatText, lvl, cfg.Log.File)
	slog.SetDefault(logger)
	s.logs = closer

	client, err := wire.NewAPIClient(cfg.API, logger)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.client = client
	return nil
}
