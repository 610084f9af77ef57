package schema

import (
	"fmt"

	"github.com/orqui/orqui/internal/contract"
)

// ValidateStructure walks a decoded contract for rules the CUE schema
// does not express: duplicate node ids within one page tree, unknown
// shell layouts on non-empty values, unknown operators and breakpoints
// in visibility rules. Returns all findings.
func ValidateStructure(c contract.Contract) []ValidationError {
	var errs []ValidationError

	if c.Shell.Layout != "" && !contract.ValidLayouts[c.Shell.Layout] {
		errs = append(errs, ValidationError{
			Code:    ErrCodeInvalidLayout,
			Field:   "shell.layout",
			Message: fmt.Sprintf("unknown layout %q", c.Shell.Layout),
		})
	}

	for pageID, page := range c.Pages {
		if page.Content.Type == "" {
			errs = append(errs, ValidationError{
				Code:    ErrCodeEmptyPage,
				Field:   fmt.Sprintf("pages.%s.content", pageID),
				Message: "page content node has no type",
			})
		}

		seen := map[string]string{}
		errs = append(errs, walkNode(page.Content, fmt.Sprintf("pages.%s.content", pageID), seen)...)
		errs = append(errs, validateRule(page.Visibility, fmt.Sprintf("pages.%s.visibility", pageID))...)
	}

	for i, item := range c.Navigation {
		errs = append(errs, validateRule(item.Visibility, fmt.Sprintf("navigation[%d].visibility", i))...)
	}

	return errs
}

// Validate runs both passes over a raw document: CUE schema first,
// then structural checks against the decoded contract. Shape errors
// short-circuit; a document the schema rejects is not decoded.
func Validate(doc []byte, c contract.Contract) []ValidationError {
	if errs := ValidateJSON(doc); len(errs) > 0 {
		return errs
	}
	return ValidateStructure(c)
}

func walkNode(node contract.NodeDef, path string, seen map[string]string) []ValidationError {
	var errs []ValidationError

	if node.ID != "" {
		if prev, dup := seen[node.ID]; dup {
			errs = append(errs, ValidationError{
				Code:    ErrCodeDuplicateNodeID,
				Field:   path,
				Message: fmt.Sprintf("duplicate node id %q (first at %s)", node.ID, prev),
			})
		} else {
			seen[node.ID] = path
		}
	}

	errs = append(errs, validateRule(node.Visibility, path+".visibility")...)

	for i, child := range node.Children {
		errs = append(errs, walkNode(child, fmt.Sprintf("%s.children[%d]", path, i), seen)...)
	}
	return errs
}

func validateRule(rule *contract.Rule, path string) []ValidationError {
	if rule == nil {
		return nil
	}
	var errs []ValidationError

	for i, bp := range rule.Breakpoints {
		if !contract.ValidBreakpoints[bp] {
			errs = append(errs, ValidationError{
				Code:    ErrCodeInvalidOp,
				Field:   fmt.Sprintf("%s.breakpoints[%d]", path, i),
				Message: fmt.Sprintf("unknown breakpoint %q", bp),
			})
		}
	}

	conds := make([]contract.Condition, 0, len(rule.All)+len(rule.Any)+2)
	if rule.When != nil {
		conds = append(conds, *rule.When)
	}
	if rule.Not != nil {
		conds = append(conds, *rule.Not)
	}
	conds = append(conds, rule.All...)
	conds = append(conds, rule.Any...)

	for _, cond := range conds {
		errs = append(errs, validateCondition(cond, path)...)
	}
	return errs
}

func validateCondition(cond contract.Condition, path string) []ValidationError {
	var errs []ValidationError
	if cond.Op != "" && !contract.ValidOps[cond.Op] {
		errs = append(errs, ValidationError{
			Code:    ErrCodeInvalidOp,
			Field:   path,
			Message: fmt.Sprintf("unknown operator %q", cond.Op),
		})
	}
	if cond.Not != nil {
		errs = append(errs, validateCondition(*cond.Not, path)...)
	}
	for _, sub := range cond.All {
		errs = append(errs, validateCondition(sub, path)...)
	}
	for _, sub := range cond.Any {
		errs = append(errs, validateCondition(sub, path)...)
	}
	return errs
}
