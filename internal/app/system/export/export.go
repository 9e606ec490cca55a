// Package export renders a project as a standalone JSON or YAML document.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/dalemusser/programdesign/internal/domain/models"
	"gopkg.in/yaml.v3"
)

// Formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the exported shape: the project, its data and a progress
// snapshot at export time.
type Document struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	CurrentStep int                `json:"currentStep" yaml:"current_step"`
	Progress    wizard.Progress    `json:"progress" yaml:"progress"`
	Data        models.ProjectData `json:"data" yaml:"data"`
	CreatedAt   time.Time          `json:"createdAt" yaml:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" yaml:"updated_at"`
	ExportedAt  time.Time          `json:"exportedAt" yaml:"exported_at"`
}

// NewDocument builds the export document for p.
func NewDocument(p models.Project, now time.Time) Document {
	return Document{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		CurrentStep: p.CurrentStep,
		Progress:    wizard.EvaluateProject(p),
		Data:        p.Data,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		ExportedAt:  now.UTC(),
	}
}

// ParseFormat maps a requested format to a known one. Empty means JSON;
// "yml" is accepted as YAML.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type for a parsed format.
func ContentType(format string) string {
	if format == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Marshal encodes doc in the given format.
func Marshal(doc Document, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// Filename suggests a download name such as "clean-water-project.yaml".
func Filename(name, format string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(name))
	slug = strings.Trim(collapseDashes(slug), "-")
	if slug == "" {
		slug = "project"
	}
	return slug + "." + format
}

func collapseDashes(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
