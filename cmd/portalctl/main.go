// Command portalctl is a terminal front-end for the incident reporting API.
// It drives the same endpoints as the web portal: anyone can submit a report,
// while listing and managing reports requires an admin login. The session
// token is kept in the user config directory between invocations.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/unerg-ais/reporting-system/sdk/portal"
)

var serverURL string

func main() {
	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "Manage incident reports from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&serverURL, "server", defaultServer(), "base URL of the reporting API")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newCreateCmd(),
		newListCmd(),
		newStatusCmd(),
		newEditCmd(),
		newDeleteCmd(),
	)

	if err := root.Execute(); err != nil {
		if errors.Is(err, portal.ErrSessionExpired) || errors.Is(err, portal.ErrNoSession) {
			fmt.Fprintln(os.Stderr, "session expired or missing, run: portalctl login")
			_ = clearSession()
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultServer() string {
	if v := os.Getenv("PORTAL_SERVER"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func newClient() *portal.Client {
	opts := []portal.Option{}
	if sess, err := loadSession(); err == nil && sess != nil {
		opts = append(opts, portal.WithSession(*sess))
	}
	return portal.NewClient(serverURL, opts...)
}

func newLoginCmd() *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate as an administrator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" {
				fmt.Print("Username: ")
				if _, err := fmt.Scanln(&username); err != nil {
					return err
				}
			}
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return err
			}

			client := portal.NewClient(serverURL)
			sess, err := client.Login(cmd.Context(), username, string(raw))
			if err != nil {
				return err
			}
			if err := saveSession(sess); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Printf("logged in as %s\n", sess.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := clearSession(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	var input portal.CreateReportInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new incident report (no login required)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := portal.NewClient(serverURL)
			report, err := client.CreateReport(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("report %s created (estado: %s)\n", report.ID, report.Estado)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Solicitante, "solicitante", "", "name of the person reporting")
	cmd.Flags().StringVar(&input.Categoria, "categoria", "", "Hardware or Software")
	cmd.Flags().StringVar(&input.Componente, "componente", "", "affected component")
	cmd.Flags().StringVar(&input.Descripcion, "descripcion", "", "description of the incident")
	for _, f := range []string{"solicitante", "categoria", "componente", "descripcion"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reports, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := newClient().ListReports(cmd.Context())
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Println("no reports")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFECHA\tSOLICITANTE\tCATEGORIA\tCOMPONENTE\tESTADO")
			for _, r := range reports {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.CreatedAt.Local().Format("02/01/2006 15:04"),
					r.Solicitante, r.Categoria, r.Componente, r.Estado)
			}
			return w.Flush()
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <estado>",
		Short: "Change a report's estado (Pendiente, En Revisión, Solucionado)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newClient().ChangeEstado(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("report %s is now %s\n", report.ID, report.Estado)
			return nil
		},
	}
}

func newEditCmd() *cobra.Command {
	var (
		solicitante string
		categoria   string
		componente  string
		descripcion string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an existing report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := portal.UpdateReportInput{}
			if cmd.Flags().Changed("solicitante") {
				input.Solicitante = &solicitante
			}
			if cmd.Flags().Changed("categoria") {
				input.Categoria = &categoria
			}
			if cmd.Flags().Changed("componente") {
				input.Componente = &componente
			}
			if cmd.Flags().Changed("descripcion") {
				input.Descripcion = &descripcion
			}
			report, err := newClient().UpdateReport(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			fmt.Printf("report %s updated\n", report.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&solicitante, "solicitante", "", "name of the person reporting")
	cmd.Flags().StringVar(&categoria, "categoria", "", "Hardware or Software")
	cmd.Flags().StringVar(&componente, "componente", "", "affected component")
	cmd.Flags().StringVar(&descripcion, "descripcion", "", "description of the incident")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Printf("delete report %s? [y/N]: ", args[0])
				var answer string
				_, _ = fmt.Scanln(&answer)
				if !strings.EqualFold(answer, "y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := newClient().DeleteReport(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("report %s deleted\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// --- session storage ---

func sessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "portalctl", "session.json"), nil
}

func loadSession() (*portal.Session, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sess portal.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func saveSession(sess *portal.Session) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func clearSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
