package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alanyang/gaas-console/internal/repository"
)

func newLoginCmd(s *session) *cobra.Command {
	var flags struct {
		username string
		password string
	}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a bearer token",
		Long: "Prints the token issued by the API. Export it as GAAS_API_TOKEN to " +
			"authenticate later commands.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := flags.password
			if password == "" {
				var err error
				if password, err = readPassword(cmd); err != nil {
					return err
				}
			}

			tok, err := repository.NewAuthRepo(s.client).Login(cmd.Context(), flags.username, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			s.client.SetToken(tok.Raw)

			if s.jsonOutput {
				return s.printJSON(cmd.OutOrStdout(), tok)
			}
			out := cmd.OutOrStdout()
			if !tok.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "# expires %s\n", tok.ExpiresAt.Format(time.RFC3339))
			}
			fmt.Fprintf(out, "export GAAS_API_TOKEN=%s\n", tok.Raw)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&flags.password, "password", "p", "", "Account password (prompted when omitted)")
	cobra.CheckErr(cmd.MarkFlagRequired("username"))
	return cmd
}

// readPassword prompts without echo on a terminal, otherwise reads one line of input.
func readPassword(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("password is required")
	}
	return line, nil
}
