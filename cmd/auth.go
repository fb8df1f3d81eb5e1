package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitsync/internal/logger"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend",
	Long: `Authenticate and print the session token. Export it as FITSYNC_TOKEN so
subsequent commands send it:

  export FITSYNC_TOKEN=$(fitsync login --email you@example.com --password …)`,
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an operator account",
	RunE:  runRegister,
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd)

	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password")

	registerCmd.Flags().String("name", "", "Operator name")
	registerCmd.Flags().String("email", "", "Account email")
	registerCmd.Flags().String("password", "", "Account password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("auth")

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if email == "" || password == "" {
		return fmt.Errorf("--email and --password are required")
	}

	gw, err := newGateway()
	if err != nil {
		return err
	}

	resp, err := gw.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	log.Info().Str("user", resp.User.Email).Msg("Logged in")
	fmt.Println(resp.Token)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("auth")

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("--name, --email and --password are required")
	}

	gw, err := newGateway()
	if err != nil {
		return err
	}

	resp, err := gw.Register(cmd.Context(), name, email, password)
	if err != nil {
		return err
	}

	log.Info().Str("user", resp.User.Email).Msg("Account created")
	fmt.Printf("Account created for %s\n", resp.User.Email)
	if resp.Token != "" {
		fmt.Println(resp.Token)
	}
	return nil
}
