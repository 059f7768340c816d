package main

import (
	"context"
	"fmt"

	"tasjeel/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// hashCommand constructs the 'hash' subcommand that generates a bcrypt hash
// for the admin password, ready to paste into the config file.
func hashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Generates a bcrypt hash for the admin password",
		Run: func(cmd *cobra.Command, args []string) {
			password, _ := cmd.Flags().GetString("password")
			cost, _ := cmd.Flags().GetInt("cost")

			hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
			if err != nil {
				logger.Fatal(context.Background(), "could not hash password", zap.Error(err))
			}

			fmt.Println(string(hash)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("password", "", "Password to hash")
	cmd.Flags().Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
