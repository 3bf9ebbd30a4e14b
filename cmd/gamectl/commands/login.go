package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// whoAmIInfo is the structured form of the whoami output.
type whoAmIInfo struct {
	API      string            `json:"api"       yaml:"api"`
	Endpoint string            `json:"endpoint"  yaml:"endpoint"`
	LoggedIn bool              `json:"logged_in" yaml:"logged_in"`
	User     admin.UserProfile `json:"user"      yaml:"user"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the admin API",
		Long:  "Open a session on the current admin API. Prompts for the email and password when the flags are not given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, false, func(ctx context.Context, session *sessionContext) error {
				out := cmd.OutOrStdout()

				if !force && session.manager.RequireLoggedOut() != nil {
					_, _ = fmt.Fprintf(out, "Already logged in to '%s' as %s. Use --force to log in again.\n",
						session.name, session.manager.Session().User().Email)

					return nil
				}

				credentials, err := promptCredentials(cmd, email, password)
				if err != nil {
					return err
				}

				profile, err := session.manager.Login(ctx, credentials)
				if err != nil {
					session.toasts.Danger("Error", loginFailureMessage(err))

					return fmt.Errorf("login failed: %w", err)
				}

				session.toasts.Success("Success", "Logged in as "+displayName(profile))
				_, _ = fmt.Fprintf(out, "Logged in to '%s' as %s\n", session.name, profile.Email)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "operator email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "operator password")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "log in again even when a session is active")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the admin API",
		Long:  "Close the session on the current admin API and forget the cached operator profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, false, func(ctx context.Context, session *sessionContext) error {
				if !session.manager.Session().IsLoggedIn() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Not logged in to '%s'\n", session.name)

					return nil
				}

				err := session.manager.Logout(ctx)
				if err != nil {
					session.toasts.Danger("Error", err.Error())

					return fmt.Errorf("logout failed: %w", err)
				}

				session.toasts.Success("Success", "Logged out")

				return nil
			})
		},
	}
}

// NewWhoAmICommand creates the whoami command.
func NewWhoAmICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in operator",
		Long:  "Display the operator profile cached for the current admin API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, true, func(_ context.Context, session *sessionContext) error {
				info := whoAmIInfo{
					API:      session.name,
					Endpoint: session.apiConfig.Endpoint,
					LoggedIn: session.manager.Session().IsLoggedIn(),
					User:     session.manager.Session().User(),
				}

				return renderOutput(cmd.OutOrStdout(), info, func(writer io.Writer) error {
					return renderDetails(writer, [][]string{
						{"API", info.API},
						{"Endpoint", info.Endpoint},
						{"ID", strconv.Itoa(info.User.ID)},
						{"Email", info.User.Email},
						{"Name", formatConfigValue(info.User.FullName)},
						{"Role", formatConfigValue(info.User.Role)},
					})
				})
			})
		},
	}
}

// promptCredentials fills in missing credentials from stdin. The password is
// read without echo when stdin is a terminal.
func promptCredentials(cmd *cobra.Command, email, password string) (*admin.LoginRequest, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	if email == "" {
		_, _ = fmt.Fprint(out, "Email: ")

		line, err := readLine(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read email: %w", err)
		}

		email = line
	}

	if password == "" {
		_, _ = fmt.Fprint(out, "Password: ")

		if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			bytePassword, err := term.ReadPassword(int(file.Fd()))
			if err != nil {
				return nil, fmt.Errorf("failed to read password: %w", err)
			}

			_, _ = fmt.Fprintln(out)
			password = string(bytePassword)
		} else {
			line, err := readLine(reader)
			if err != nil {
				return nil, fmt.Errorf("failed to read password: %w", err)
			}

			password = line
		}
	}

	return &admin.LoginRequest{Email: email, Password: password}, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// loginFailureMessage picks the message the login form would show: the
// first field error when there is one, the backend message otherwise.
func loginFailureMessage(err error) string {
	var validationErr *admin.ValidationError
	if errors.As(err, &validationErr) {
		for _, field := range []string{"email", "password"} {
			if messages := validationErr.Fields[field]; len(messages) > 0 {
				return messages[0]
			}
		}
	}

	var apiErr *admin.APIError
	if errors.As(err, &apiErr) {
		for _, field := range []string{"email", "password"} {
			if messages := apiErr.FieldErrors(field); len(messages) > 0 {
				return messages[0]
			}
		}

		if apiErr.Message != "" {
			return apiErr.Message
		}
	}

	return err.Error()
}

func displayName(profile admin.UserProfile) string {
	if profile.FullName != "" {
		return profile.FullName
	}

	return profile.Email
}
