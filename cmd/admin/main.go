package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/carstock/carstock-go/internal/crypto"
	"github.com/carstock/carstock-go/internal/model"
	"github.com/carstock/carstock-go/internal/repository"
)

// admin is the offline maintenance tool: it talks to the database file
// directly and never goes through the HTTP API.
func main() {
	root := &cobra.Command{
		Use:   "admin",
		Short: "carstock administrative CLI",
		Long:  "Offline maintenance for the carstock database: user creation and catalog seeding.",
	}

	root.PersistentFlags().String("db", "carstock.db", "path to the SQLite database file")

	root.AddCommand(newUserAddCmd(), newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDB(cmd *cobra.Command) (*sql.DB, error) {
	path, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, err
	}

	db, err := repository.NewDB(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := repository.EnsureSchema(cmd.Context(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

func newUserAddCmd() *cobra.Command {
	var username, email, password, fullName string

	cmd := &cobra.Command{
		Use:   "useradd",
		Short: "Create an API user",
		Long:  "Insert a user into the credential store with a bcrypt-hashed password.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			hash, err := crypto.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			user := &model.User{
				Username:       username,
				Email:          email,
				FullName:       fullName,
				HashedPassword: hash,
			}
			if err := repository.NewUserRepository(db).Create(cmd.Context(), user); err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Printf("created user %q (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "plaintext password, hashed before storage (required)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "optional full name")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newSeedCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert random car models",
		Long:  "Fill the catalog with randomly generated car models for local development.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewCarRepository(db)
			for i := 0; i < count; i++ {
				car := randomCarModel()
				if err := repo.Create(cmd.Context(), &car); err != nil {
					return fmt.Errorf("insert car model %d: %w", i+1, err)
				}
			}

			fmt.Printf("inserted %d car models\n", count)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of car models to insert")

	return cmd
}

func randomCarModel() model.CarModel {
	return model.CarModel{
		Manufacturer: gofakeit.Company(),
		Model:        gofakeit.CarModel(),
		Year:         gofakeit.Number(1990, 2021),
		Price:        gofakeit.Price(5000, 70000),
	}
}
