// Package benchmarks provides the per-role psychometric benchmark table
// consulted by the match scorer. The table is configuration data, not code:
// it ships as embedded JSON and can be overridden by an external file, so
// role targets can be tuned without touching the scorer.
package benchmarks

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

//go:embed benchmarks.json
var defaultData []byte

//go:embed benchmark.schema.json
var schemaData []byte

// DefaultKey is the table entry used for roles without a dedicated benchmark.
const DefaultKey = "default"

// Table maps roles to their scoring benchmarks with a guaranteed fallback.
type Table struct {
	entries map[string]types.RoleBenchmark
}

// Load parses and validates a benchmark table from JSON. The data is checked
// against the benchmark JSON Schema before decoding; a table without a
// default entry is rejected.
func Load(data []byte) (*Table, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate benchmark table: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("benchmark table is invalid:")
		for _, desc := range result.Errors() {
			sb.WriteString(fmt.Sprintf("\n  - %s: %s", desc.Field(), desc.Description()))
		}
		return nil, fmt.Errorf("%s", sb.String())
	}

	var entries map[string]types.RoleBenchmark
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark table: %w", err)
	}
	if _, ok := entries[DefaultKey]; !ok {
		return nil, fmt.Errorf("benchmark table has no %q entry", DefaultKey)
	}

	return &Table{entries: entries}, nil
}

// LoadFile loads and validates a benchmark table from an external JSON file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark file %s: %w", path, err)
	}
	table, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("benchmark file %s: %w", path, err)
	}
	return table, nil
}

// Default returns the built-in benchmark table. The embedded data is
// validated at build time by the package tests, so a parse failure here is
// a programming error.
func Default() *Table {
	table, err := Load(defaultData)
	if err != nil {
		panic(fmt.Sprintf("embedded benchmark table is invalid: %v", err))
	}
	return table
}

// Lookup returns the benchmark for a role, falling back to the default
// entry for unrecognized roles. It never fails: rejecting a scoring request
// over unconfigured role data would block the recruiter's workflow.
func (t *Table) Lookup(role types.Role) types.RoleBenchmark {
	if benchmark, ok := t.entries[string(role)]; ok {
		return benchmark
	}
	return t.entries[DefaultKey]
}

// Roles returns the configured role keys, default excluded.
func (t *Table) Roles() []string {
	roles := make([]string, 0, len(t.entries)-1)
	for key := range t.entries {
		if key != DefaultKey {
			roles = append(roles, key)
		}
	}
	return roles
}
