package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed contract.cue
var contractSchema string

// Validation error codes (E2xx = schema, E3xx = structural).
const (
	ErrCodeSchemaCompile = "E200" // embedded schema failed to compile
	ErrCodeBadJSON       = "E201" // document is not valid JSON
	ErrCodeSchemaShape   = "E202" // document does not satisfy the schema

	ErrCodeDuplicateNodeID = "E301" // duplicate node id within a page tree
	ErrCodeInvalidOp       = "E302" // unknown visibility operator
	ErrCodeInvalidLayout   = "E303" // unknown shell layout
	ErrCodeEmptyPage       = "E304" // page without a content node type
)

// ValidationError is one validation finding.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateJSON validates a raw JSON contract document against the
// embedded CUE schema. Returns all findings, not just the first.
func ValidateJSON(doc []byte) []ValidationError {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileString(contractSchema)
	if err := schemaVal.Err(); err != nil {
		return []ValidationError{{
			Code:    ErrCodeSchemaCompile,
			Message: fmt.Sprintf("compile embedded schema: %v", err),
		}}
	}

	expr, err := cuejson.Extract("contract.json", doc)
	if err != nil {
		return []ValidationError{{
			Code:    ErrCodeBadJSON,
			Message: fmt.Sprintf("parse document: %v", err),
		}}
	}
	docVal := ctx.BuildExpr(expr)
	if err := docVal.Err(); err != nil {
		return []ValidationError{{
			Code:    ErrCodeBadJSON,
			Message: fmt.Sprintf("build document value: %v", err),
		}}
	}

	unified := schemaVal.Unify(docVal)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var out []ValidationError
		for _, e := range cueerrors.Errors(err) {
			out = append(out, ValidationError{
				Code:    ErrCodeSchemaShape,
				Field:   cueErrorPath(e),
				Message: e.Error(),
			})
		}
		return out
	}
	return nil
}

func cueErrorPath(e cueerrors.Error) string {
	path := e.Path()
	if len(path) == 0 {
		return ""
	}
	out := path[0]
	for _, seg := range path[1:] {
		out += "." + seg
	}
	return out
}
