// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/legend-score/lscli/internal/api"
	"github.com/legend-score/lscli/internal/i18n"
	"github.com/legend-score/lscli/internal/model"
)

// usersListCmd prints the user list, optionally narrowed by the filter
// flags. Empty filters are omitted from the request entirely.
var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := model.UserFilter{}
		filter.UserID, _ = cmd.Flags().GetString("user-id")
		filter.LoginID, _ = cmd.Flags().GetString("login-id")
		filter.Name, _ = cmd.Flags().GetString("name")

		users, err := client.ListUsers(context.Background(), filter)
		if err != nil {
			return fmt.Errorf("%s", api.DisplayError(err))
		}
		if len(users) == 0 {
			fmt.Println(i18n.T("cli.users_none"))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\t%s\n", i18n.T("users.login_id"), i18n.T("users.name"))
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.LoginID, u.Name)
		}
		return w.Flush()
	},
}

// usersCreateCmd registers a new user. The password is prompted without
// echo when the flag is omitted.
var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	RunE: func(cmd *cobra.Command, args []string) error {
		loginID, _ := cmd.Flags().GetString("login-id")
		name, _ := cmd.Flags().GetString("name")

		pw := password
		if pw == "" {
			var err error
			if pw, err = promptPassword(); err != nil {
				return err
			}
		}

		if err := client.CreateUser(context.Background(), loginID, name, pw); err != nil {
			return fmt.Errorf("%s", api.DisplayError(err))
		}
		fmt.Println(i18n.T("cli.user_created"))
		return nil
	},
}
