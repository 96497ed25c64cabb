package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/filex"
)

// readInput returns the contents of the file named by args[0], or of stdin
// when no file or "-" is given
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return filex.ReadString(args[0])
	}
	return filex.ReadAll(cmd.InOrStdin(), "stdin")
}

// textArg joins the arguments to one text, or reads stdin without its
// trailing line break when there are none
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	text, err := filex.ReadAll(cmd.InOrStdin(), "stdin")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}
