package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dspetrov/hacksnooze/internal/common"
)

// readPassword is a seam for tests, the real thing reads from the tty.
var readPassword = func(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

var signupName string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and save the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runLogin(cmd.Context(), e, cmd.OutOrStdout(), args[0])
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runSignup(cmd.Context(), e, cmd.OutOrStdout(), args[0], signupName)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the saved session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runLogout(cmd.Context(), e, cmd.OutOrStdout())
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return runWhoami(cmd.Context(), e, cmd.OutOrStdout())
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "display name of the new account")
	_ = signupCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}

func runLogin(ctx context.Context, e *env, w io.Writer, username string) error {
	password, err := promptPassword(w)
	if err != nil {
		return err
	}

	user, err := e.auth.LogIn(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "logged in as %s\n", user.Username)
	return nil
}

func runSignup(ctx context.Context, e *env, w io.Writer, username, name string) error {
	password, err := promptPassword(w)
	if err != nil {
		return err
	}

	user, err := e.auth.SignUp(ctx, username, password, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "account created, logged in as %s\n", user.Username)
	return nil
}

func runLogout(ctx context.Context, e *env, w io.Writer) error {
	if err := e.auth.LogOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(w, "logged out")
	return nil
}

func runWhoami(ctx context.Context, e *env, w io.Writer) error {
	user, err := currentUser(ctx, e)
	if err != nil {
		return err
	}

	if jsonOutput {
		// The login token stays local.
		return printJSON(w, map[string]any{
			"username":  user.Username,
			"name":      user.Name,
			"createdAt": user.CreatedAt,
			"stories":   len(user.OwnStories),
			"favorites": len(user.Favorites),
		})
	}

	fmt.Fprintf(w, "%s (%s)\n", user.Username, user.Name)
	fmt.Fprintf(w, "stories: %d, favorites: %d\n", len(user.OwnStories), len(user.Favorites))
	return nil
}

func promptPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "Password: ")
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := string(b)
	common.WipeByteArray(b)
	return password, nil
}
