package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orqui/orqui/internal/token"
)

// TokensResult is the JSON payload of the tokens command.
type TokensResult struct {
	StyleID string `json:"styleId"`
	CSS     string `json:"css"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "tokens <contract-file>",
		Short: "Emit the design-token stylesheet",
		Long: `Emit the CSS custom property block generated from a contract's
design tokens, the same stylesheet a mounted runtime injects.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(rootOpts, args[0], outPath, cmd)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write CSS to file instead of stdout")
	return cmd
}

func runTokens(opts *RootOptions, path, outPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	loaded, err := LoadContract(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	css := token.GenerateCSS(loaded.Contract.Tokens)

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(css), 0o644); err != nil {
			msg := fmt.Sprintf("writing %s: %v", outPath, err)
			_ = formatter.Error(ErrCodeWriteFailed, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		if formatter.Format == "json" {
			return formatter.Success(TokensResult{StyleID: token.StyleTagID, CSS: css})
		}
		fmt.Fprintf(formatter.Writer, "Wrote %s\n", outPath)
		return nil
	}

	if formatter.Format == "json" {
		return formatter.Success(TokensResult{StyleID: token.StyleTagID, CSS: css})
	}
	fmt.Fprint(formatter.Writer, css)
	return nil
}
