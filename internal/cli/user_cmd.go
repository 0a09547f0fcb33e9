package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/talbenari/coachflow/internal/cli/formatter"
	"github.com/talbenari/coachflow/internal/domain"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts and login tokens",
	}

	cmd.AddCommand(
		newUserRegisterCmd(app),
		newUserLoginCmd(app),
		newUserLogoutCmd(app),
		newUserListCmd(app),
	)

	return cmd
}

func newUserRegisterCmd(app *App) *cobra.Command {
	var name, email, password, org string
	var admin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			role := domain.RoleUser
			if admin {
				role = domain.RoleAdmin
			}
			u, err := app.Users.Register(context.Background(), name, email, password, role, org)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s (id %d)\n", u.Name, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&org, "org", "", "Organization")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant the admin role")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and print a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, token, err := app.Users.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome %s\n%s\n", u.Name, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout TOKEN",
		Short: "Invalidate a bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Users.Logout(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}

			headers := []string{"ID", "NAME", "EMAIL", "ROLE", "ORG"}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				role := formatter.Dim(string(u.Role))
				if u.Role == domain.RoleAdmin {
					role = formatter.StylePurple.Render(string(u.Role))
				}
				org := u.Organization
				if org == "" {
					org = formatter.Dim("--")
				}
				rows = append(rows, []string{
					formatter.Dim(strconv.FormatInt(u.ID, 10)),
					formatter.Bold(u.Name),
					u.Email,
					role,
					org,
				})
			}
			fmt.Printf("%s\n", formatter.RenderBox("Users", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
