package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Prajwal471/PM-Internship-Portal/internal/config"
	"github.com/Prajwal471/PM-Internship-Portal/internal/db"
	"github.com/Prajwal471/PM-Internship-Portal/internal/server"
)

var (
	tokenCandidateID string
	tokenEmail       string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for a candidate",
	Long:  `Mint a signed JWT for the given candidate, identified by UUID or looked up by email in the database. Intended for local development and API testing.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenCandidateID, "candidate-id", "", "Candidate UUID to embed in the token")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Resolve the candidate by email via the database")
	tokenCmd.MarkFlagsOneRequired("candidate-id", "email")
	tokenCmd.MarkFlagsMutuallyExclusive("candidate-id", "email")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	candidateID, err := resolveCandidateID(cmd.Context())
	if err != nil {
		return err
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(candidateID)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func resolveCandidateID(ctx context.Context) (uuid.UUID, error) {
	if tokenEmail == "" {
		candidateID, err := uuid.Parse(tokenCandidateID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid candidate ID: %w", err)
		}
		return candidateID, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return uuid.Nil, err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	profile, err := database.GetProfileByEmail(ctx, tokenEmail)
	if err != nil {
		return uuid.Nil, err
	}
	if profile == nil {
		return uuid.Nil, fmt.Errorf("no candidate with email %q", tokenEmail)
	}
	return profile.ID, nil
}
