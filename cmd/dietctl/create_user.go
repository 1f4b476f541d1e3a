package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

type newUser struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"min=8"`
}

var userValidator = validator.New(validator.WithRequiredStructEnabled())

func newCreateUserCmd() *cobra.Command {
	var u newUser
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user with a bcrypt-hashed password and an empty profile",
		Long: "Create a user. Flags that are not given are prompted for on stdin;\n" +
			"the password is always read from stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := promptMissing(cmd.InOrStdin(), cmd.OutOrStdout(), &u); err != nil {
				return err
			}
			if err := u.validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer conn.Close(ctx)

			id, err := insertUser(ctx, conn, u)
			if err != nil {
				return err
			}
			cmd.Printf("\nUser created successfully!\n")
			cmd.Printf("  ID:       %d\n", id)
			cmd.Printf("  Username: %s\n", u.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&u.Username, "username", "", "login name")
	cmd.Flags().StringVar(&u.Email, "email", "", "contact email")
	return cmd
}

// promptMissing reads any empty field from in, one line each.
func promptMissing(in io.Reader, out io.Writer, u *newUser) error {
	reader := bufio.NewReader(in)
	ask := func(label string, dst *string) error {
		if *dst != "" {
			return nil
		}
		fmt.Fprintf(out, "%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read %s: %w", strings.ToLower(label), err)
		}
		*dst = strings.TrimSpace(line)
		return nil
	}
	if err := ask("Username", &u.Username); err != nil {
		return err
	}
	if err := ask("Email", &u.Email); err != nil {
		return err
	}
	return ask("Password", &u.Password)
}

func (u newUser) validate() error {
	err := userValidator.Struct(u)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	// Report the first failing field, in declaration order.
	switch fe := verrs[0]; fe.Field() {
	case "Username":
		return errors.New("username is required")
	case "Email":
		return errors.New("email must be a valid address")
	case "Password":
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	default:
		return fmt.Errorf("%s is invalid", strings.ToLower(fe.Field()))
	}
}

// insertUser creates the users row and its empty profiles row in one transaction.
func insertUser(ctx context.Context, conn *pgx.Conn, u newUser) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var id int
	err = pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO users (username, email, password) VALUES (@username, @email, @password) RETURNING id`,
			pgx.NamedArgs{"username": u.Username, "email": u.Email, "password": string(hash)},
		).Scan(&id); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO profiles (user_id) VALUES (@userID)`,
			pgx.NamedArgs{"userID": id}); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	return id, err
}
