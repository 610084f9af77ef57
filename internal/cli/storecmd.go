package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orqui/orqui/internal/store"
)

// DefaultStorePath is the store location when --store is not given.
const DefaultStorePath = ".orqui/contracts.db"

// PushResult is the JSON payload of the push command.
type PushResult struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
	Seq  int64  `json:"seq"`
	Noop bool   `json:"noop"`
}

// PullResult is the JSON payload of the pull command.
type PullResult struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
	Seq  int64  `json:"seq"`
	Path string `json:"path,omitempty"`
}

// ListResult is the JSON payload of the list command.
type ListResult struct {
	Contracts []ListItem `json:"contracts"`
}

// ListItem summarizes one stored contract name.
type ListItem struct {
	Name      string `json:"name"`
	Hash      string `json:"hash"`
	Seq       int64  `json:"seq"`
	Revisions int64  `json:"revisions"`
	CreatedAt string `json:"createdAt"`
}

func addStoreFlag(cmd *cobra.Command, storePath *string) {
	cmd.Flags().StringVar(storePath, "store", DefaultStorePath, "path to the contract store database")
}

func openStore(formatter *OutputFormatter, path string, create bool) (*store.Store, error) {
	if create {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				msg := fmt.Sprintf("creating store directory: %v", err)
				_ = formatter.Error(ErrCodeStore, msg, nil)
				return nil, NewExitError(ExitCommandError, msg)
			}
		}
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		msg := fmt.Sprintf("contract store not found: %s", path)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return nil, NewExitError(ExitCommandError, msg)
	}

	s, err := store.Open(path)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return nil, NewExitError(ExitCommandError, err.Error())
	}
	return s, nil
}

// NewPushCommand creates the push command.
func NewPushCommand(rootOpts *RootOptions) *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "push <name> <contract-file>",
		Short: "Store a contract revision under a name",
		Long: `Store a contract document as a new revision of a named contract.

Pushing content identical to the newest stored revision is a no-op.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(rootOpts, storePath, args[0], args[1], cmd)
		},
	}
	addStoreFlag(cmd, &storePath)
	return cmd
}

func runPush(opts *RootOptions, storePath, name, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	loaded, err := LoadContract(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	s, err := openStore(formatter, storePath, true)
	if err != nil {
		return err
	}
	defer s.Close()

	rev, noop, err := s.Put(cmd.Context(), name, loaded.Doc)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	result := PushResult{Name: rev.Name, Hash: rev.Hash, Seq: rev.Seq, Noop: noop}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	if noop {
		fmt.Fprintf(formatter.Writer, "Unchanged %s (rev %d, %s)\n", rev.Name, rev.Seq, shortHash(rev.Hash))
	} else {
		fmt.Fprintf(formatter.Writer, "Pushed %s (rev %d, %s)\n", rev.Name, rev.Seq, shortHash(rev.Hash))
	}
	return nil
}

// NewPullCommand creates the pull command.
func NewPullCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		storePath string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:           "pull <name>",
		Short:         "Retrieve the latest revision of a stored contract",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(rootOpts, storePath, args[0], outPath, cmd)
		},
	}
	addStoreFlag(cmd, &storePath)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the document to file instead of stdout")
	return cmd
}

func runPull(opts *RootOptions, storePath, name, outPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(formatter, storePath, false)
	if err != nil {
		return err
	}
	defer s.Close()

	rev, err := s.Latest(cmd.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		msg := fmt.Sprintf("no contract named %q in store", name)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitFailure, msg)
	}
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, rev.Body, 0o644); err != nil {
			msg := fmt.Sprintf("writing %s: %v", outPath, err)
			_ = formatter.Error(ErrCodeWriteFailed, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		result := PullResult{Name: rev.Name, Hash: rev.Hash, Seq: rev.Seq, Path: outPath}
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "Wrote %s (rev %d, %s)\n", outPath, rev.Seq, shortHash(rev.Hash))
		return nil
	}

	if formatter.Format == "json" {
		return formatter.Success(PullResult{Name: rev.Name, Hash: rev.Hash, Seq: rev.Seq})
	}
	fmt.Fprintln(formatter.Writer, string(rev.Body))
	return nil
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List stored contracts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, storePath, cmd)
		},
	}
	addStoreFlag(cmd, &storePath)
	return cmd
}

func runList(opts *RootOptions, storePath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(formatter, storePath, false)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.List(cmd.Context())
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	items := make([]ListItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, ListItem{
			Name:      e.Name,
			Hash:      e.Hash,
			Seq:       e.Seq,
			Revisions: e.Revisions,
			CreatedAt: e.CreatedAt,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(ListResult{Contracts: items})
	}

	if len(items) == 0 {
		fmt.Fprintln(formatter.Writer, "No contracts stored")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(formatter.Writer, "%-20s rev %-4d %s  %s\n",
			item.Name, item.Seq, shortHash(item.Hash), item.CreatedAt)
	}
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
