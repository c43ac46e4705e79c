package analyzers

import (
	"github.com/yaklabco/codelint/pkg/lint"
	"github.com/yaklabco/codelint/pkg/syntax"
)

// Node kinds of the tree-sitter JavaScript and TypeScript grammars.
const (
	kindComment             = "comment"
	kindIdentifier          = "identifier"
	kindStatementBlock      = "statement_block"
	kindExpressionStatement = "expression_statement"
	kindIf                  = "if_statement"
	kindElse                = "else_clause"
	kindFor                 = "for_statement"
	kindForIn               = "for_in_statement"
	kindWhile               = "while_statement"
	kindDo                  = "do_statement"
	kindSwitch              = "switch_statement"
	kindSwitchCase          = "switch_case"
	kindSwitchDefault       = "switch_default"
	kindTry                 = "try_statement"
	kindLexicalDecl         = "lexical_declaration"
	kindVariableDecl        = "variable_declaration"
	kindDeclarator          = "variable_declarator"
	kindFunctionDecl        = "function_declaration"
	kindGeneratorDecl       = "generator_function_declaration"
	kindArrow               = "arrow_function"
	kindMethod              = "method_definition"
	kindMember              = "member_expression"
	kindSubscript           = "subscript_expression"
	kindCall                = "call_expression"
	kindNew                 = "new_expression"
	kindString              = "string"
	kindNumber              = "number"
	kindOptionalChain       = "optional_chain"
	kindObjectPattern       = "object_pattern"
	kindArrayPattern        = "array_pattern"
	kindPair                = "pair"
)

// functionKinds are the node kinds that open a new function scope.
var functionKinds = []string{
	kindFunctionDecl,
	kindGeneratorDecl,
	"function_expression",
	"function",
	"generator_function",
	kindArrow,
	kindMethod,
}

func isFunction(n *syntax.Node) bool {
	return syntax.IsKind(n, functionKinds...)
}

func isLoop(n *syntax.Node) bool {
	return syntax.IsKind(n, kindFor, kindForIn, kindWhile, kindDo)
}

// statements returns the statements of a block-like node, skipping comments.
func statements(n *syntax.Node) []*syntax.Node {
	var out []*syntax.Node
	for _, child := range syntax.NamedChildren(n) {
		if child.Kind() == kindComment {
			continue
		}
		out = append(out, child)
	}
	return out
}

// caseStatements returns the statements of a switch case, without its test value.
func caseStatements(c *syntax.Node) []*syntax.Node {
	value := syntax.Field(c, "value")
	var out []*syntax.Node
	for _, stmt := range statements(c) {
		if value != nil && stmt.Id() == value.Id() {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

// unwrapElse returns the statement inside an else clause.
func unwrapElse(n *syntax.Node) *syntax.Node {
	if n == nil || n.Kind() != kindElse {
		return n
	}
	if stmts := statements(n); len(stmts) > 0 {
		return stmts[0]
	}
	return nil
}

// functionName derives a display name for a function node: its own name,
// else the variable it is assigned to, else the object key holding it.
func functionName(file *lint.File, fn *syntax.Node) string {
	if name := syntax.Field(fn, "name"); name != nil {
		return file.Text(name)
	}

	parent := fn.Parent()
	for syntax.IsKind(parent, "parenthesized_expression") {
		parent = parent.Parent()
	}

	switch {
	case syntax.IsKind(parent, kindDeclarator):
		if name := syntax.Field(parent, "name"); syntax.IsKind(name, kindIdentifier) {
			return file.Text(name)
		}
	case syntax.IsKind(parent, kindPair):
		if key := syntax.Field(parent, "key"); key != nil {
			return file.Text(key)
		}
	}

	return "<anonymous>"
}

// parameters returns the parameter nodes of a function.
// A bare arrow parameter (`x => x`) is returned as its identifier.
func parameters(fn *syntax.Node) []*syntax.Node {
	if p := syntax.Field(fn, "parameter"); p != nil {
		return []*syntax.Node{p}
	}
	var out []*syntax.Node
	for _, p := range syntax.NamedChildren(syntax.Field(fn, "parameters")) {
		if p.Kind() == kindComment {
			continue
		}
		out = append(out, p)
	}
	return out
}

// parameterName returns the identifier bound by a simple parameter:
// `x`, `x = 1`, and the TypeScript `x: T` / `x?: T` forms.
func parameterName(p *syntax.Node) *syntax.Node {
	switch p.Kind() {
	case kindIdentifier:
		return p
	case "assignment_pattern":
		if left := syntax.Field(p, "left"); syntax.IsKind(left, kindIdentifier) {
			return left
		}
	case "required_parameter", "optional_parameter":
		pattern := syntax.Field(p, "pattern")
		if syntax.IsKind(pattern, kindIdentifier) {
			return pattern
		}
	}
	return nil
}

// hasOptionalChain reports whether n uses `?.` directly.
func hasOptionalChain(n *syntax.Node) bool {
	return syntax.Field(n, kindOptionalChain) != nil || syntax.HasChildKind(n, kindOptionalChain)
}

// chainIsOptional reports whether any access along the object chain of n uses `?.`.
func chainIsOptional(n *syntax.Node) bool {
	for cur := n; cur != nil; {
		switch cur.Kind() {
		case kindMember, kindSubscript:
			if hasOptionalChain(cur) {
				return true
			}
			cur = syntax.Field(cur, "object")
		case kindCall:
			if hasOptionalChain(cur) {
				return true
			}
			cur = syntax.Field(cur, "function")
		case "parenthesized_expression", "non_null_expression":
			cur = firstNamed(cur)
		default:
			return false
		}
	}
	return false
}

func firstNamed(n *syntax.Node) *syntax.Node {
	if children := statements(n); len(children) > 0 {
		return children[0]
	}
	return nil
}

// stringValue returns the contents of a string literal without its quotes.
func stringValue(file *lint.File, n *syntax.Node) string {
	text := file.Text(n)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return ""
}

// isStringLiteral reports whether n is a plain quoted string.
func isStringLiteral(n *syntax.Node) bool {
	return syntax.IsKind(n, kindString)
}

// callee returns the function expression of a call and its arguments node.
func callee(call *syntax.Node) (fn, args *syntax.Node) {
	return syntax.Field(call, "function"), syntax.Field(call, "arguments")
}

// firstArgument returns the first argument of a call or new expression.
func firstArgument(args *syntax.Node) *syntax.Node {
	return firstNamed(args)
}

// memberParts splits a member expression into its object and property text.
func memberParts(file *lint.File, n *syntax.Node) (object *syntax.Node, property string) {
	if !syntax.IsKind(n, kindMember) {
		return nil, ""
	}
	return syntax.Field(n, "object"), file.Text(syntax.Field(n, "property"))
}

// operator returns the operator token text of a binary, unary or
// assignment expression.
func operator(file *lint.File, n *syntax.Node) string {
	if op := syntax.Field(n, "operator"); op != nil {
		return file.Text(op)
	}
	return ""
}
