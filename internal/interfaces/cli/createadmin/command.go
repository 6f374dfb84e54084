package createadmin

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	infraauth "github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/config"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/database"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/repository"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

var env string

// NewCommand builds the out-of-band admin creation command. Admin accounts
// never go through registration; they are created here, pre-approved.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a pre-approved admin account",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	reader := bufio.NewReader(os.Stdin)

	name, err := prompt(reader, "Enter admin name: ")
	if err != nil {
		return err
	}
	email, err := prompt(reader, "Enter admin email: ")
	if err != nil {
		return err
	}
	companyName, err := prompt(reader, "Enter company name: ")
	if err != nil {
		return err
	}

	fmt.Print("Enter admin password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := string(passwordBytes)

	if name == "" || email == "" || password == "" || companyName == "" {
		return fmt.Errorf("all fields are required")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := repository.NewUserRepository(database.Get(), logger.NewLogger())

	if _, err := userRepo.FindByEmail(ctx, strings.ToLower(email)); err == nil {
		return fmt.Errorf("user with email %s already exists", email)
	} else if !errors.IsNotFoundError(err) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := user.NewAdmin(name, email, passwordHash, companyName)
	if err != nil {
		return err
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("\nAdmin account created: %s (%s)\n", admin.Name(), admin.Email())
	fmt.Println("You can now use this email to login.")
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
