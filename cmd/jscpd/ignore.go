package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/internal/discovery"
)

// ignoreSchema is validated against .jscpd-ignore.json before it is trusted
// (spec.md doesn't define a wire format for this — cmd/jscpd is the
// external layer free to invent one — but a malformed ignore file silently
// admitting garbage would be worse than refusing to start).
const ignoreSchemaJSON = `{
  "type": "object",
  "properties": {
    "description": {"type": "string"},
    "paths": {"type": "array", "items": {"type": "string"}},
    "hashes": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

// IgnoreFile is the user-maintained blocklist: source-id glob patterns and
// frame-hash hex strings to exclude from a run's output, in the spirit of
// the teacher's ignore.json (cmd/quickdup/filter.go LoadIgnoredHashes) but
// covering whole-path patterns as well, since this engine's matches are
// cross-file rather than single-file pattern occurrences.
type IgnoreFile struct {
	Description string   `json:"description" yaml:"description"`
	Paths       []string `json:"paths" yaml:"paths"`
	Hashes      []string `json:"hashes" yaml:"hashes"`
}

var ignoreSchema *jsonschema.Schema

func init() {
	c := jsonschema.NewCompiler()
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(ignoreSchemaJSON))
	if err != nil {
		panic(err)
	}
	if err := c.AddResource("mem://ignore-schema.json", doc); err != nil {
		panic(err)
	}
	s, err := c.Compile("mem://ignore-schema.json")
	if err != nil {
		panic(err)
	}
	ignoreSchema = s
}

// loadIgnoreFile reads dir/.jscpd-ignore.json (schema-validated) or
// dir/.jscpd-ignore.yaml (parsed directly; YAML has no JSON Schema
// instance to validate against here). A missing file is not an error — it
// just means nothing is ignored.
func loadIgnoreFile(dir string) (*IgnoreFile, error) {
	if f, err := loadIgnoreJSON(filepath.Join(dir, ".jscpd-ignore.json")); err != nil {
		return nil, err
	} else if f != nil {
		return f, nil
	}
	return loadIgnoreYAML(filepath.Join(dir, ".jscpd-ignore.yaml"))
}

func loadIgnoreJSON(path string) (*IgnoreFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(string(data)))
	if err != nil {
		return nil, core.ConfigInvalidError(fmt.Sprintf("%s: invalid JSON: %v", path, err))
	}
	if err := ignoreSchema.Validate(inst); err != nil {
		return nil, core.ConfigInvalidError(fmt.Sprintf("%s: %v", path, err))
	}

	var f IgnoreFile
	if err := unmarshalJSONInstance(inst, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func loadIgnoreYAML(path string) (*IgnoreFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var f IgnoreFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, core.ConfigInvalidError(fmt.Sprintf("%s: %v", path, err))
	}
	return &f, nil
}

// unmarshalJSONInstance copies the generic map/slice instance
// jsonschema.UnmarshalJSON produced into IgnoreFile by reading each known
// key with type assertions; values of any other type are skipped.
func unmarshalJSONInstance(inst any, out *IgnoreFile) error {
	m, ok := inst.(map[string]any)
	if !ok {
		return nil
	}
	if v, ok := m["description"].(string); ok {
		out.Description = v
	}
	if v, ok := m["paths"].([]any); ok {
		for _, p := range v {
			if s, ok := p.(string); ok {
				out.Paths = append(out.Paths, s)
			}
		}
	}
	if v, ok := m["hashes"].([]any); ok {
		for _, h := range v {
			if s, ok := h.(string); ok {
				out.Hashes = append(out.Hashes, s)
			}
		}
	}
	return nil
}

// filterClones drops clones whose A or B source matches an ignored path
// glob, or whose frame hash appears in the ignore file's hash blocklist
// (the teacher's LoadIgnoredHashes, generalized from line-hash patterns to
// this engine's frame ids).
func filterClones(clones []core.Clone, ignore *IgnoreFile) []core.Clone {
	if ignore == nil || (len(ignore.Paths) == 0 && len(ignore.Hashes) == 0) {
		return clones
	}
	ignoredHashes := make(map[uint64]struct{}, len(ignore.Hashes))
	for _, h := range ignore.Hashes {
		if v, err := strconv.ParseUint(h, 16, 64); err == nil {
			ignoredHashes[v] = struct{}{}
		}
	}

	out := clones[:0]
	for _, c := range clones {
		if len(ignore.Paths) > 0 && (discovery.MatchesAny(c.DuplicationA.SourceID, ignore.Paths) || discovery.MatchesAny(c.DuplicationB.SourceID, ignore.Paths)) {
			continue
		}
		if _, ignored := ignoredHashes[c.Hash]; ignored {
			continue
		}
		out = append(out, c)
	}
	return out
}
