// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldLanguage   = "language"

	// Configuration fields.
	FieldConfig = "config"
	FieldFormat = "format"
	FieldJobs   = "jobs"
	FieldStrict = "strict"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesAnalyzed   = "files_analyzed"
	FieldFilesFailed     = "files_failed"
	FieldFilesWithIssues = "files_with_issues"
	FieldIssuesTotal     = "issues_total"
	FieldElapsed         = "elapsed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Analyzer and rule fields.
	FieldAnalyzer    = "analyzer"
	FieldRule        = "rule"
	FieldSeverity    = "severity"
	FieldCategory    = "category"
	FieldDescription = "description"
)
