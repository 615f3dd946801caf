package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/termwrapped/pkg/aggregate"
)

const (
	schemaFile = "schema/report.schema.json"
	yamlIndent = 2
)

//go:embed schema/report.schema.json
var schemaFS embed.FS

// ErrInvalidSnapshot is returned when a saved report does not match the report schema.
var ErrInvalidSnapshot = errors.New("invalid report snapshot")

// EncodeJSON writes rep as indented JSON.
func EncodeJSON(w io.Writer, rep *aggregate.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(rep)
	if err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

// EncodeYAML writes rep as YAML.
func EncodeYAML(w io.Writer, rep *aggregate.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	err := enc.Encode(rep)
	if err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("flush yaml report: %w", err)
	}

	return nil
}

// DecodeJSON reads a report previously written by EncodeJSON. The document is
// checked against the embedded schema before it is decoded.
func DecodeJSON(r io.Reader) (*aggregate.Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	err = ValidateJSON(data)
	if err != nil {
		return nil, err
	}

	var rep aggregate.Report

	err = json.Unmarshal(data, &rep)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	return &rep, nil
}

// LoadJSONFile opens path and decodes it with DecodeJSON.
func LoadJSONFile(path string) (*aggregate.Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer file.Close()

	return DecodeJSON(file)
}

// ValidateJSON checks data against the embedded report schema.
func ValidateJSON(data []byte) error {
	var document any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	err := dec.Decode(&document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	schemaBytes, err := schemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("read embedded schema: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaBytes), gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("validate report: %w", err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		problems = append(problems, verr.Field()+": "+verr.Description())
	}

	return fmt.Errorf("%w: %s", ErrInvalidSnapshot, strings.Join(problems, "; "))
}
