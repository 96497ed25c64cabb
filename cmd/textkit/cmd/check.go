package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/validationx"
	"github.com/msto63/textkit/pkg/core/logging"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Plausibility checks for e-mail addresses and phone numbers",
		Long: `Prints true or false. The checks look at the shape of the input only;
they do not prove that an address or number exists.`,
	}

	email := &cobra.Command{
		Use:   "email <address>",
		Short: "Check that the argument looks like local@domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := validationx.IsEmail(args[0])
			a.logger.Debug("checked e-mail", logging.KeyValues("input", args[0], "valid", ok))
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}

	var minLen, maxLen int
	phone := &cobra.Command{
		Use:   "phone <number>",
		Short: "Check the length of a phone number without formatting characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mdwerrors.ValidateRange(mdwerrors.ModuleValidationx, "min", minLen, 0, maxLen); err != nil {
				return err
			}
			ok := validationx.IsPhone(args[0], minLen, maxLen)
			a.logger.Debug("checked phone", logging.KeyValues("input", args[0], "valid", ok))
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	phone.Flags().IntVar(&minLen, "min", validationx.DefaultPhoneMinLen, "minimum number of characters")
	phone.Flags().IntVar(&maxLen, "max", validationx.DefaultPhoneMaxLen, "maximum number of characters")

	cmd.AddCommand(email, phone)
	return cmd
}
