// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for lscli using the Cobra
// library. Running without a subcommand launches the interactive TUI; the
// subcommands (login, logout, token, users) cover the same operations
// non-interactively for scripting.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/legend-score/lscli/buildvars"
	"github.com/legend-score/lscli/internal/api"
	"github.com/legend-score/lscli/internal/config"
	"github.com/legend-score/lscli/internal/i18n"
	"github.com/legend-score/lscli/internal/logging"
	"github.com/legend-score/lscli/internal/session"
	"github.com/legend-score/lscli/internal/tui"
)

var (
	cfgFile  string
	password string

	appCfg   config.Config
	sessions *session.Store
	client   *api.Client
)

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

// setupServices resolves the configuration and wires the session store and
// API client every command shares. It runs before any command body.
func setupServices(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Root(), cfgFile)
	if err != nil {
		return errors.New(i18n.T("cli.error_init_config", err))
	}
	appCfg = cfg

	logging.SetDebug(cfg.Debug)
	i18n.Init(cfg.Language)

	backend, err := session.NewFileBackend()
	if err != nil {
		return fmt.Errorf("could not resolve session storage: %w", err)
	}
	sessions = session.NewStore(backend)
	client = api.New(cfg.API.BaseURL, sessions)
	return nil
}

// newRootCmd creates and configures a new root cobra command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lscli",
		Short: "lscli is a terminal client for the Legend Score administration API.",
		Long: `lscli talks to the Legend Score backend: sign in, browse and filter
the user list, and create users, either interactively or from scripts.

Running without a subcommand launches the interactive TUI.`,
		PersistentPreRunE: setupServices,
		Run: func(cmd *cobra.Command, args []string) {
			tui.Run(sessions, client, &appCfg)
		},
	}

	cmd.AddCommand(loginCmd)
	cmd.AddCommand(logoutCmd)
	cmd.AddCommand(tokenCmd)
	cmd.AddCommand(usersCmd)

	cmd.Version = buildvars.VersionOrDefault("dev")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is lscli.yaml in the user config dir or the working dir)")
	cmd.PersistentFlags().String("api-base-url", "", "backend base URL (default http://localhost:8080)")
	cmd.PersistentFlags().String("lang", "en", `interface language ("en", "ja")`)
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	return cmd
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, CI).
func promptPassword() (string, error) {
	fmt.Print(i18n.T("cli.password_prompt"))
	if term.IsTerminal(int(os.Stdin.Fd())) {
		bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", errors.New(i18n.T("cli.error_read_password", err))
		}
		return string(bytePassword), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", errors.New(i18n.T("cli.error_read_password", err))
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// loginCmd authenticates against the backend and stores the session token.
var loginCmd = &cobra.Command{
	Use:   "login <login_id>",
	Short: "Sign in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := password
		if pw == "" {
			var err error
			if pw, err = promptPassword(); err != nil {
				return err
			}
		}

		token, err := client.Login(context.Background(), args[0], pw)
		if err != nil {
			return fmt.Errorf("%s", api.DisplayError(err))
		}
		if err := sessions.Store(token); err != nil {
			return fmt.Errorf("could not store session token: %w", err)
		}
		fmt.Println(i18n.T("cli.login_success"))
		return nil
	},
}

// logoutCmd clears the stored session token.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessions.Clear(); err != nil {
			return fmt.Errorf("could not clear session: %w", err)
		}
		fmt.Println(i18n.T("cli.logout_done"))
		return nil
	},
}

// tokenCmd prints or copies the raw bearer token, for curl-style debugging
// against the backend.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, ok := sessions.Read()
		if !ok {
			return fmt.Errorf("%s", i18n.T("cli.not_logged_in"))
		}
		if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
			if err := clipboard.WriteAll(token); err != nil {
				return fmt.Errorf("could not copy token to clipboard: %w", err)
			}
			fmt.Println(i18n.T("cli.token_copied"))
			return nil
		}
		fmt.Println(token)
		return nil
	},
}

// usersCmd groups the user management subcommands.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and create users",
}

func init() {
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	tokenCmd.Flags().Bool("copy", false, "copy the token to the clipboard instead of printing it")

	usersListCmd.Flags().String("user-id", "", "filter by user ID")
	usersListCmd.Flags().String("login-id", "", "filter by login ID")
	usersListCmd.Flags().String("name", "", "filter by name")
	usersCreateCmd.Flags().String("login-id", "", "login ID for the new user (required)")
	usersCreateCmd.Flags().String("name", "", "display name for the new user (required)")
	usersCreateCmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	_ = usersCreateCmd.MarkFlagRequired("login-id")
	_ = usersCreateCmd.MarkFlagRequired("name")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
}
