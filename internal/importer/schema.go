package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a catalog import file. The same
// structure is accepted as JSON or YAML.
type ImportSchema struct {
	Courses       []CourseImport       `json:"courses" yaml:"courses"`
	Prerequisites []PrerequisiteImport `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Students      []StudentImport      `json:"students,omitempty" yaml:"students,omitempty"`
}

// CourseImport defines a catalog course in the import file.
type CourseImport struct {
	Code              string   `json:"code" yaml:"code"`
	Name              string   `json:"name" yaml:"name"`
	CreditHours       int      `json:"credit_hours" yaml:"credit_hours"`
	Level             int      `json:"level" yaml:"level"`
	Department        string   `json:"department" yaml:"department"`
	Type              string   `json:"type" yaml:"type"`
	TermOffered       string   `json:"term_offered,omitempty" yaml:"term_offered,omitempty"`
	MaxEnrollment     int      `json:"max_enrollment" yaml:"max_enrollment"`
	CurrentEnrollment int      `json:"current_enrollment,omitempty" yaml:"current_enrollment,omitempty"`
	Difficulty        string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	WorkloadHours     float64  `json:"workload_hours,omitempty" yaml:"workload_hours,omitempty"`
	PassRate          *float64 `json:"pass_rate,omitempty" yaml:"pass_rate,omitempty"`
	AverageGrade      *float64 `json:"average_grade,omitempty" yaml:"average_grade,omitempty"`
	Active            *bool    `json:"active,omitempty" yaml:"active,omitempty"`
}

// PrerequisiteImport defines one prerequisite edge. Edges of the same course
// sharing a group are alternatives; separate groups are all required.
type PrerequisiteImport struct {
	Course       string `json:"course" yaml:"course"`
	Prerequisite string `json:"prerequisite" yaml:"prerequisite"`
	MinimumGrade string `json:"minimum_grade,omitempty" yaml:"minimum_grade,omitempty"`
	Group        *int   `json:"group,omitempty" yaml:"group,omitempty"`
	Strict       *bool  `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// StudentImport defines a student and their completed-course ledger.
type StudentImport struct {
	ID            string            `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string            `json:"name" yaml:"name"`
	GPA           float64           `json:"gpa" yaml:"gpa"`
	Level         int               `json:"level" yaml:"level"`
	AttendancePct *float64          `json:"attendance_pct,omitempty" yaml:"attendance_pct,omitempty"`
	Department    string            `json:"department,omitempty" yaml:"department,omitempty"`
	Completed     []CompletedImport `json:"completed,omitempty" yaml:"completed,omitempty"`
}

// CompletedImport is one ledger entry for a student.
type CompletedImport struct {
	Course string `json:"course" yaml:"course"`
	Grade  string `json:"grade" yaml:"grade"`
	Term   string `json:"term,omitempty" yaml:"term,omitempty"`
}

// Format is the encoding of an import file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the decoder from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadImportSchema reads and parses a catalog import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data, FormatForPath(path))
}

// ParseImportSchema decodes data in the given format. Unknown fields are
// rejected so typos in field names surface as errors.
func ParseImportSchema(data []byte, format Format) (*ImportSchema, error) {
	var schema ImportSchema
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	}
	return &schema, nil
}
