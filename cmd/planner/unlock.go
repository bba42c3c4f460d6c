package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fitness-planner/internal/config"
	"fitness-planner/internal/session"
)

var unlockCode string

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Enter the access code to unlock the planner for this session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		gate := session.NewGate(cfg.Session.AccessCode)
		if !gate.Verify(unlockCode) {
			// Wrong code is not fatal to the tool; retries are unlimited.
			return errors.New(gate.ErrorMessage())
		}

		issuer := session.NewTokenIssuer(cfg.Session.TokenSecret, cfg.Session.TokenTTL)
		token, err := issuer.Issue()
		if err != nil {
			return fmt.Errorf("creating session token: %w", err)
		}

		path := sessionTokenPath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating session directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
			return fmt.Errorf("writing session token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Unlocked.")
		return nil
	},
}

func init() {
	unlockCmd.Flags().StringVar(&unlockCode, "code", "", "Shared access code")
	unlockCmd.MarkFlagRequired("code")
}
