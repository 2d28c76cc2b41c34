package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseModel_ValidMinimal(t *testing.T) {
	yaml := `
classes:
  - name: Point
    members:
      - constructor: true
        params:
          - name: x
            type: {name: Int}
      - property: x
        type: {name: Int}
`
	m, err := ParseModel([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Module != "main" {
		t.Errorf("module = %q, want main", m.Module)
	}
	if len(m.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(m.Classes))
	}
	c := m.Classes[0]
	if c.Kind != "class" {
		t.Errorf("kind = %q, want class", c.Kind)
	}
	if len(c.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(c.Members))
	}
	if !c.Members[0].Constructor {
		t.Error("expected first member to be a constructor")
	}
	if c.Members[1].Property != "x" {
		t.Errorf("property = %q, want x", c.Members[1].Property)
	}
}

func TestParseModel_NestedDefaults(t *testing.T) {
	yaml := `
module: demo
classes:
  - name: Outer
    members:
      - class:
          name: Inner
    deferred:
      - class:
          name: Late
`
	m, err := ParseModel([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Module != "demo" {
		t.Errorf("module = %q, want demo", m.Module)
	}
	if kind := m.Classes[0].Members[0].Class.Kind; kind != "class" {
		t.Errorf("nested kind = %q, want class", kind)
	}
	if kind := m.Classes[0].Deferred[0].Class.Kind; kind != "class" {
		t.Errorf("deferred nested kind = %q, want class", kind)
	}
}

func TestParseModel_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"invalid yaml", "classes: [", "parsing test.yaml"},
		{"no classes", "classes: []", "no classes defined"},
		{"anonymous top level", "classes: [{kind: anonymous}]", "anonymous objects can only be nested"},
		{"duplicate class", "classes: [{name: A}, {name: A}]", "classes[1] (A): duplicate class name"},
		{"unknown kind", "classes: [{name: A, kind: struct}]", `unknown kind "struct"`},
		{"missing name", "classes: [{kind: object}]", "classes[0]: name is required"},
		{"named anonymous", "classes: [{name: A, members: [{class: {name: B, kind: anonymous}}]}]", "anonymous objects have no name"},
		{"duplicate type param", "classes: [{name: A, type_params: [T, T]}]", "duplicate type parameter T"},
		{"empty member", "classes: [{name: A, members: [{}]}]", "classes[0].members[0]: one of function"},
		{"two members", "classes: [{name: A, members: [{function: f, property: p}]}]", "mutually exclusive"},
		{"interface constructor", "classes: [{name: A, kind: interface, members: [{constructor: true}]}]", "interfaces cannot declare constructors"},
		{"enum entry outside enum", "classes: [{name: A, members: [{enum_entry: X}]}]", "enum entries are only valid in enum classes"},
		{"params on property", "classes: [{name: A, members: [{property: p, params: [{name: x, type: {name: Int}}]}]}]", "params are only valid"},
		{"returns on property", "classes: [{name: A, members: [{property: p, returns: {name: Int}}]}]", "returns is only valid for functions"},
		{"type on function", "classes: [{name: A, members: [{function: f, type: {name: Int}}]}]", "type is only valid for properties and fields"},
		{"mutable function", "classes: [{name: A, members: [{function: f, mutable: true}]}]", "mutable is only valid"},
		{"param without type", "classes: [{name: A, members: [{function: f, params: [{name: x}]}]}]", "params[0] (x): type is required"},
		{"empty type", "classes: [{name: A, members: [{property: p, type: {}}]}]", "members[0].type: exactly one of name, error or lower/upper is required"},
		{"lower only", "classes: [{name: A, members: [{property: p, type: {lower: {name: Int}}}]}]", "lower and upper must be given together"},
		{"decorated error", "classes: [{name: A, members: [{property: p, type: {error: x, alternative: {name: Int}}}]}]", "error types cannot be decorated"},
		{"platform flexible", "classes: [{name: A, members: [{property: p, type: {lower: {name: Int, platform: true}, upper: {name: Int}}}]}]", "type.lower: flexible bounds must be simple types"},
		{"star with type", "classes: [{name: A, members: [{property: p, type: {name: List, args: [{star: true, type: {name: Int}}]}}]}]", "star projections carry no type or variance"},
		{"bad variance", "classes: [{name: A, members: [{property: p, type: {name: List, args: [{variance: inout, type: {name: Int}}]}}]}]", `unknown variance "inout"`},
		{"nested error", "classes: [{name: A, members: [{class: {name: B, members: [{}]}}]}]", "members[0].class.members[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModel([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fxresolve.yaml")
	if err := os.WriteFile(path, []byte("classes: [{name: A}]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Classes[0].Name != "A" {
		t.Errorf("name = %q, want A", m.Classes[0].Name)
	}

	_, err = LoadModel(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading model") {
		t.Errorf("expected reading error, got %v", err)
	}
}

func TestFindModel(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	path, err := FindModel(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "" && strings.HasPrefix(path, root) {
		t.Fatalf("expected no model under %s, found %s", root, path)
	}

	want := filepath.Join(root, "fxresolve.yml")
	if err := os.WriteFile(want, []byte("classes: [{name: A}]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	path, err = FindModel(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}
