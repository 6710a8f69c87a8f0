// Package filter translates AIP-160 stake filters into SQL conditions.
package filter

import (
	"fmt"
	"strings"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// SQLCondition represents a SQL WHERE clause fragment with parameters.
type SQLCondition struct {
	// Clause is the SQL WHERE clause (e.g., "account = ?").
	Clause string
	// Params are the positional parameters for the clause.
	Params []any
}

// IsEmpty reports whether the condition matches everything.
func (c SQLCondition) IsEmpty() bool {
	return strings.TrimSpace(c.Clause) == ""
}

// StakeDeclarations returns the field declarations for stake filtering.
func StakeDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("unit", filtering.TypeString),
		filtering.DeclareIdent("account", filtering.TypeString),
		filtering.DeclareIdent("ucac_id", filtering.TypeString),
	)
}

var fieldMapping = map[string]string{
	"unit":    "unit_address",
	"account": "account",
	"ucac_id": "ucac_id",
}

// ParseStakeFilter parses an AIP-160 filter expression and returns a SQL condition.
// Returns an empty condition for an empty filter string.
func ParseStakeFilter(filterStr string) (SQLCondition, error) {
	if strings.TrimSpace(filterStr) == "" {
		return SQLCondition{}, nil
	}

	decls, err := StakeDeclarations()
	if err != nil {
		return SQLCondition{}, fmt.Errorf("create declarations: %w", err)
	}

	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return SQLCondition{}, fmt.Errorf("parse filter: %w", err)
	}

	return translateExpr(parsed.CheckedExpr.GetExpr())
}

func translateExpr(e *expr.Expr) (SQLCondition, error) {
	if e == nil {
		return SQLCondition{}, nil
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return translateCall(kind.CallExpr)
	default:
		return SQLCondition{}, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

func translateCall(call *expr.Expr_Call) (SQLCondition, error) {
	switch call.Function {
	case "_&&_", "AND":
		return translateJoin(call.Args, "AND")
	case "_||_", "OR":
		return translateJoin(call.Args, "OR")
	case "_==_", "=":
		return translateComparison(call.Args, "=")
	case "_!=_", "!=":
		return translateComparison(call.Args, "!=")
	default:
		return SQLCondition{}, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func translateJoin(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("%s requires 2 arguments", op)
	}

	left, err := translateExpr(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	right, err := translateExpr(args[1])
	if err != nil {
		return SQLCondition{}, err
	}

	params := make([]any, 0, len(left.Params)+len(right.Params))
	params = append(params, left.Params...)
	params = append(params, right.Params...)
	return SQLCondition{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: params,
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	column, ok := fieldMapping[field]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unknown field: %s", field)
	}

	value, err := extractString(args[1])
	if err != nil {
		return SQLCondition{}, err
	}
	param, err := normalizeValue(field, value)
	if err != nil {
		return SQLCondition{}, err
	}

	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{param},
	}, nil
}

// normalizeValue rewrites filter literals into their stored form.
func normalizeValue(field, value string) (string, error) {
	switch field {
	case "ucac_id":
		id, err := domain.ParseUcacID(value)
		if err != nil {
			return "", err
		}
		return id.String(), nil
	case "unit":
		return domain.ParseAddress(value).String(), nil
	default:
		return domain.ParseIdentity(value).String(), nil
	}
}

func extractFieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractString(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	constant, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return "", fmt.Errorf("expected constant, got %T", e.ExprKind)
	}
	value, ok := constant.ConstExpr.GetConstantKind().(*expr.Constant_StringValue)
	if !ok {
		return "", fmt.Errorf("expected string constant, got %T", constant.ConstExpr.GetConstantKind())
	}
	return value.StringValue, nil
}
