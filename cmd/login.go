package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/sadopc/harvestctl/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store your Harvest account ID and access token",
	Long: `Prompts for your Harvest account ID and a personal access token
(create one at https://id.getharvest.com/developers) and stores them in
a credentials file for the other commands to use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogin()
	},
}

func runLogin() error {
	var creds auth.Credentials

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Harvest account ID").
				Value(&creds.AccountID).
				Validate(required),
			huh.NewInput().
				Title("Harvest account token").
				EchoMode(huh.EchoModePassword).
				Value(&creds.AccountToken).
				Validate(required),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	path, err := auth.DefaultPath()
	if err != nil {
		return err
	}
	if err := auth.Save(path, &creds); err != nil {
		return err
	}

	fmt.Println("Credentials saved.")
	return nil
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}
