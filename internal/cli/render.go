package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orqui/orqui/internal/runtime"
)

// RenderResult is the JSON payload of a render.
type RenderResult struct {
	Page string          `json:"page"`
	HTML string          `json:"html,omitempty"`
	Tree json.RawMessage `json:"tree,omitempty"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		page     string
		dataPath string
		width    int
		outPath  string
		asTree   bool
	)

	cmd := &cobra.Command{
		Use:   "render <contract-file>",
		Short: "Render a contract page to HTML",
		Long: `Render one page of a layout contract to HTML.

Data for template expressions and visibility rules comes from --data,
a JSON file holding the top-level data context. The viewport width in
--width selects the breakpoint used by visibility rules.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args[0], page, dataPath, width, outPath, asTree, cmd)
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "page id to render (defaults to the first page)")
	cmd.Flags().StringVar(&dataPath, "data", "", "JSON file with the data context")
	cmd.Flags().IntVar(&width, "width", 0, "viewport width in px for breakpoint rules (0 = desktop)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&asTree, "tree", false, "emit the element tree as JSON instead of HTML")

	return cmd
}

func runRender(opts *RootOptions, path, page, dataPath string, width int, outPath string, asTree bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	loaded, err := LoadContract(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	data, err := loadDataContext(dataPath)
	if err != nil {
		_ = formatter.Error(ErrCodeReadFailed, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if page == "" {
		page = firstPageID(loaded)
	}

	rt, err := runtime.Mount(loaded.Contract, runtime.Options{
		Data:          data,
		Page:          page,
		ViewportWidth: width,
	})
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	defer rt.Close()

	formatter.VerboseLog("Mounted contract %s, rendering page %q at width %d", rt.ID(), page, width)

	el, err := rt.RenderPage(page, nil)
	if err != nil {
		_ = formatter.Error(ErrCodeUnknownPage, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	result := RenderResult{Page: page}
	var body string
	if asTree {
		tree, err := json.MarshalIndent(el, "", "  ")
		if err != nil {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return NewExitError(ExitCommandError, err.Error())
		}
		body = string(tree)
		result.Tree = tree
	} else {
		if el != nil {
			body = el.HTML()
		}
		result.HTML = body
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(body), 0o644); err != nil {
			msg := fmt.Sprintf("writing %s: %v", outPath, err)
			_ = formatter.Error(ErrCodeWriteFailed, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "Wrote %s\n", outPath)
		return nil
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprint(formatter.Writer, body)
	return nil
}

func loadDataContext(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return data, nil
}

// firstPageID picks a stable default page: the lexically smallest id.
func firstPageID(loaded *LoadedContract) string {
	first := ""
	for id := range loaded.Contract.Pages {
		if first == "" || id < first {
			first = id
		}
	}
	return first
}
