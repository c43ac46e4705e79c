package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/codelint/pkg/analysis"
	"github.com/yaklabco/codelint/pkg/config"
	"github.com/yaklabco/codelint/pkg/lint"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

const (
	toolName           = "codelint"
	toolInformationURI = "https://github.com/yaklabco/codelint"
	devVersion         = "dev"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a rule.
type SARIFRule struct {
	ID               string               `json:"id"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any       `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single issue.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int           `json:"startLine"`
	StartColumn int           `json:"startColumn,omitempty"`
	EndLine     int           `json:"endLine,omitempty"`
	EndColumn   int           `json:"endColumn,omitempty"`
	Snippet     *SARIFSnippet `json:"snippet,omitempty"`
}

// SARIFSnippet holds the source text of a region.
type SARIFSnippet struct {
	Text string `json:"text"`
}

// SARIFRenderer formats reports as SARIF.
type SARIFRenderer struct {
	opts Options
}

// NewSARIFRenderer creates a new SARIF renderer.
func NewSARIFRenderer(opts Options) *SARIFRenderer {
	return &SARIFRenderer{opts: opts}
}

// Render implements Renderer.
func (r *SARIFRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.buildOutput(report)); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}

	return nil
}

func (r *SARIFRenderer) buildOutput(report *analysis.Report) *SARIFOutput {
	version := r.opts.ToolVersion
	if version == "" {
		version = devVersion
	}

	rules := newSARIFRuleTable(r.opts.Rules)
	results := make([]SARIFResult, 0, len(report.Issues))

	for _, issue := range report.Issues {
		results = append(results, SARIFResult{
			RuleID:    issue.Rule,
			RuleIndex: rules.index(issue),
			Level:     severityToSARIFLevel(issue.Severity),
			Message:   SARIFMessage{Text: issue.Message},
			Locations: []SARIFLocation{{
				PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: SARIFArtifactLocation{URI: filepath.ToSlash(issue.FilePath)},
					Region:           issueRegion(issue),
				},
			}},
		})
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []SARIFRun{{
			Tool: SARIFTool{
				Driver: SARIFDriver{
					Name:           toolName,
					Version:        version,
					InformationURI: toolInformationURI,
					Rules:          rules.rules,
				},
			},
			Results: results,
		}},
	}
}

func issueRegion(issue lint.Issue) SARIFRegion {
	region := SARIFRegion{
		StartLine:   issue.Line,
		StartColumn: issue.Column,
	}
	if issue.HasEnd() {
		region.EndLine = issue.EndLine
		region.EndColumn = issue.EndColumn
	}
	if issue.CodeSnippet != "" {
		region.Snippet = &SARIFSnippet{Text: issue.CodeSnippet}
	}
	return region
}

// sarifRuleTable lists each rule the run reported, in first-seen order.
type sarifRuleTable struct {
	known   map[string]lint.RuleRef
	indexes map[string]int
	rules   []SARIFRule
}

func newSARIFRuleTable(catalogue []lint.RuleRef) *sarifRuleTable {
	known := make(map[string]lint.RuleRef, len(catalogue))
	for _, ref := range catalogue {
		if _, ok := known[ref.ID]; !ok {
			known[ref.ID] = ref
		}
	}
	return &sarifRuleTable{
		known:   known,
		indexes: make(map[string]int),
		rules:   []SARIFRule{},
	}
}

// index returns the rule's position in the driver rule list, adding it on
// first sight. Rules missing from the catalogue are described from the issue.
func (t *sarifRuleTable) index(issue lint.Issue) int {
	if idx, ok := t.indexes[issue.Rule]; ok {
		return idx
	}

	rule := SARIFRule{
		ID:               issue.Rule,
		ShortDescription: SARIFMultiformatText{Text: issue.Message},
		DefaultConfig:    &SARIFRuleConfig{Level: severityToSARIFLevel(issue.Severity)},
		Properties:       map[string]any{"category": string(issue.Category)},
	}
	if ref, ok := t.known[issue.Rule]; ok {
		rule.ShortDescription.Text = ref.Description
		rule.DefaultConfig.Level = severityToSARIFLevel(ref.Severity)
		rule.Properties = map[string]any{
			"category": string(ref.Category),
			"analyzer": ref.Analyzer,
		}
	}

	idx := len(t.rules)
	t.rules = append(t.rules, rule)
	t.indexes[issue.Rule] = idx
	return idx
}

// severityToSARIFLevel converts a codelint severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeveritySuggestion:
		return "note"
	default:
		return "warning"
	}
}
