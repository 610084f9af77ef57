package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orqui/orqui/internal/contract"
)

// HashResult is the JSON payload of the hash command.
type HashResult struct {
	Hash     string `json:"hash"`
	Verified *bool  `json:"verified,omitempty"`
}

// NewHashCommand creates the hash command.
func NewHashCommand(rootOpts *RootOptions) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "hash <contract-file>",
		Short: "Compute the canonical content hash of a contract",
		Long: `Compute the canonical content hash of a contract document.

The document is canonicalized (sorted keys, NFC strings) with the
$orqui stamp removed, then hashed with domain separation. With
--verify the stamped hash is checked against the recomputed one.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(rootOpts, args[0], verify, cmd)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the $orqui.hash stamp")
	return cmd
}

func runHash(opts *RootOptions, path string, verify bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	loaded, err := LoadContract(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	hash, err := contract.ComputeHash(loaded.Doc)
	if err != nil {
		_ = formatter.Error(ErrCodeBadDocument, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if !verify {
		if formatter.Format == "json" {
			return formatter.Success(HashResult{Hash: hash})
		}
		fmt.Fprintln(formatter.Writer, hash)
		return nil
	}

	if err := contract.VerifyHash(loaded.Doc); err != nil {
		code := ErrCodeHashMismatch
		if strings.Contains(err.Error(), "no $orqui stamp") || strings.Contains(err.Error(), "no hash field") {
			code = ErrCodeNoStamp
		}
		_ = formatter.Error(code, err.Error(), HashResult{Hash: hash})
		return NewExitError(ExitFailure, err.Error())
	}

	verified := true
	if formatter.Format == "json" {
		return formatter.Success(HashResult{Hash: hash, Verified: &verified})
	}
	fmt.Fprintf(formatter.Writer, "✓ %s\n", hash)
	return nil
}
