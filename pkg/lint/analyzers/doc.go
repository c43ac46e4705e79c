// Package analyzers provides the built-in rule analyzers for codelint.
//
// # Analyzers
//
// Analyzers are registered in a fixed order, which is the order their issues
// appear in for a file:
//
//   - patterns: no-debugger
//
//   - type-annotation: explicit-function-return-type, no-any-type (TypeScript only)
//
//   - security: no-eval, no-alert, no-new-func, no-setTimeout-string,
//     no-setInterval-string, no-document-write, no-inner-html, no-outer-html,
//     no-console, no-hardcoded-secrets
//
//   - best-practice: no-var, eqeqeq, no-empty-catch, no-double-negation,
//     no-void, no-sequences, no-debugger
//
//   - unused: no-unused-vars
//
//   - complexity: complexity, max-params, max-statements, max-depth
//
//   - magic-literal: no-magic-numbers, no-long-hardcoded-string
//
//   - naming: no-generic-name, no-generic-function-name, no-short-name,
//     boolean-prefix
//
//   - null-safety: no-unsafe-member-access, no-unsafe-array-access,
//     no-unsafe-array-method, no-unsafe-destructuring
//
//   - python: query-based checks over Python sources
//
// Every analyzer except type-annotation and python runs on JavaScript,
// TypeScript and TSX files.
//
// # Heuristics
//
// All checks are syntactic. There is no scope resolution, type inference or
// data-flow analysis, so names are matched by spelling and shapes are matched
// by node kind.
package analyzers
