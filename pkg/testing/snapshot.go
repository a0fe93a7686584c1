package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/vista/pkg/view"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a serializable capture of a description tree, for golden-file
// comparison of tree-building code.
type Snapshot struct {
	Tree *DescNode `yaml:"tree"`
}

// DescNode is one serialized description.
type DescNode struct {
	Kind string `yaml:"kind"`
	// Store holds "key=value" lines in sorted key order.
	Store    []string    `yaml:"store,omitempty"`
	Payload  string      `yaml:"payload,omitempty"`
	Children []*DescNode `yaml:"children,omitempty"`
}

// CaptureSnapshot serializes the description tree, flattening groups the
// same way the differ sees them.
func CaptureSnapshot(d view.Description) *Snapshot {
	return &Snapshot{Tree: captureNode(d)}
}

func captureNode(d view.Description) *DescNode {
	node := &DescNode{Kind: d.Kind.String()}
	for k, v := range d.Store {
		node.Store = append(node.Store, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(node.Store)
	if d.Payload != nil {
		node.Payload = fmt.Sprintf("%+v", d.Payload)
	}
	for _, kid := range d.ResolvedChildren() {
		node.Children = append(node.Children, captureNode(kid))
	}
	return node
}

// MatchesFile compares this snapshot against a golden YAML file,
// insensitive to formatting. On mismatch it reports a diff. When
// VISTA_UPDATE_SNAPSHOTS=1 is set, the file is silently rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("VISTA_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read snapshot %s: %v\nRun with VISTA_UPDATE_SNAPSHOTS=1 to create it.", path, err)
		return
	}
	var want Snapshot
	if err := yaml.Unmarshal(data, &want); err != nil {
		t.Fatalf("failed to parse snapshot %s: %v", path, err)
		return
	}
	if diff := cmp.Diff(&want, s); diff != "" {
		t.Errorf("%s: snapshot mismatch (-golden +got):\n%s\nRun with VISTA_UPDATE_SNAPSHOTS=1 to update.", t.Name(), diff)
	}
}

// UpdateFile writes the snapshot to the golden file.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
