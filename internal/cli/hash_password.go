package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"go-order-tracker/internal/model"

	"github.com/spf13/cobra"
)

// NewHashPasswordCommand creates the hash-password command, which prints a
// bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func NewHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "hash-password [password]",
		Short:        "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long:         "Hashes the given password, or the first line of stdin when no argument is given.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("password is required")
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if len(password) < 6 {
				return errors.New("password must be at least 6 characters")
			}

			var op model.Operator
			if err := op.SetPassword(password); err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), op.PasswordHash)
			return nil
		},
	}
}
