// Package listing translates client-supplied sort/search/pagination
// descriptors into SQL fragments. Column names coming from the client are
// resolved against a server-side whitelist; unknown names are ignored, so
// client input never reaches the query text directly.
package listing

import (
	"fmt"
	"strconv"
	"strings"
)

// ReservedTerm is the search value the admin console sends to mean
// "global coupons only" (records with no company scope). It short-circuits
// the normal column search entirely.
const ReservedTerm = "admin"

// Field is one whitelisted column: the SQL expression that backs it and
// whether it is compared numerically.
type Field struct {
	Expr    string
	Numeric bool
}

// Sort describes the requested ordering.
type Sort struct {
	Column string
	Desc   bool
}

// Request is the resolved listing descriptor: pagination bounds, an optional
// sort, an optional search term and the column names the search spans.
type Request struct {
	Offset  int
	Limit   int
	Sort    *Sort
	Search  string
	Columns []string
}

// Builder produces filter and order clauses for one listable entity.
type Builder struct {
	// Fields maps client-facing column names to whitelisted SQL expressions.
	Fields map[string]Field
	// GlobalScopeExpr is the predicate substituted when the search term is
	// ReservedTerm.
	GlobalScopeExpr string
	// DefaultOrder is applied whenever no valid sort is requested.
	DefaultOrder string
}

// Filter returns a WHERE fragment to AND with the base predicate, plus its
// arguments. Placeholders are numbered starting at argIndex. An empty
// fragment means no search filter applies.
func (b Builder) Filter(req Request, argIndex int) (string, []any) {
	term := strings.TrimSpace(req.Search)
	if term == "" {
		return "", nil
	}

	if term == ReservedTerm && b.GlobalScopeExpr != "" {
		return b.GlobalScopeExpr, nil
	}

	num, numErr := strconv.Atoi(term)

	var preds []string
	var args []any
	for _, name := range req.Columns {
		f, ok := b.Fields[name]
		if !ok {
			continue
		}
		if f.Numeric {
			if numErr != nil {
				continue
			}
			preds = append(preds, fmt.Sprintf("%s = $%d", f.Expr, argIndex+len(args)))
			args = append(args, num)
		} else {
			preds = append(preds, fmt.Sprintf("%s ILIKE $%d", f.Expr, argIndex+len(args)))
			args = append(args, "%"+escapeLike(term)+"%")
		}
	}
	if len(preds) == 0 {
		return "", nil
	}
	return "(" + strings.Join(preds, " OR ") + ")", args
}

// Order returns the ORDER BY expression for the request. Text columns are
// ordered on their lower-cased projection so ordering is case-insensitive;
// unknown or absent sorts fall back to DefaultOrder.
func (b Builder) Order(req Request) string {
	if req.Sort == nil {
		return b.DefaultOrder
	}
	f, ok := b.Fields[req.Sort.Column]
	if !ok {
		return b.DefaultOrder
	}
	expr := f.Expr
	if !f.Numeric {
		expr = "lower(" + expr + ")"
	}
	dir := "ASC"
	if req.Sort.Desc {
		dir = "DESC"
	}
	return expr + " " + dir
}

// escapeLike escapes the LIKE metacharacters in a user-supplied term so it
// matches as a literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
