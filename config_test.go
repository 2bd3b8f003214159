package tomltree

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomltree/go-tomltree/codec"
	"github.com/tomltree/go-tomltree/tree"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "app.toml", "[data]\nkey = 1\nkey2 = 2\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path() != path {
		t.Errorf("origin = %q, want %q", cfg.Path(), path)
	}
	got, err := cfg.Get("data")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"key": int64(1), "key2": int64(2)}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("data differs: %s", d)
	}
	data, err := cfg.Sub("data")
	if err != nil {
		t.Fatal(err)
	}
	v, err := data.Get("key")
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(1) {
		t.Errorf("data.key = %v, want 1", v)
	}
}

func TestLoad_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.ToMap()) != 0 {
		t.Errorf("expected empty document, got %v", cfg.ToMap())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file was not created: %v", err)
	}
}

func TestLoad_NoTruncation(t *testing.T) {
	path := writeFile(t, "app.toml", "key = 1\n")
	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "key = 1\n" {
		t.Errorf("load modified the file: %q", d)
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := writeFile(t, "bad.toml", "key = = 1\n")
	_, err := Load(path)
	if !errors.Is(err, codec.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestGet_MissingKey(t *testing.T) {
	cfg := New()
	_, err := cfg.Get("absent")
	var ke *KeyError
	if !errors.As(err, &ke) {
		t.Fatalf("expected KeyError, got %v", err)
	}
	if ke.Key != "absent" {
		t.Errorf("KeyError carries %q, want %q", ke.Key, "absent")
	}
}

func TestGet_OneLevelUnwrap(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("a.b.c", 1); err != nil {
		t.Fatal(err)
	}
	got, err := cfg.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Get on table gave %T, want map", got)
	}
	sub, ok := m["b"].(*Config)
	if !ok {
		t.Fatalf("nested table is %T, want *Config", m["b"])
	}
	v, err := sub.Get("c")
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(1) {
		t.Errorf("a.b.c = %v, want 1", v)
	}
}

func TestAddItem(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("a.b.c", 1); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": int64(1),
			},
		},
	}
	if d := cmp.Diff(want, cfg.ToMap()); d != "" {
		t.Fatalf("auto-vivification differs: %s", d)
	}

	// existing intermediate tables are reused, the leaf overwritten
	if err := cfg.AddItem("a.b.c", "two"); err != nil {
		t.Fatal(err)
	}
	b, err := cfg.Sub("a")
	if err != nil {
		t.Fatal(err)
	}
	b, err = b.Sub("b")
	if err != nil {
		t.Fatal(err)
	}
	v, err := b.Get("c")
	if err != nil {
		t.Fatal(err)
	}
	if v != "two" {
		t.Errorf("a.b.c = %v, want two", v)
	}

	// a whole sub-table is overwritten unconditionally
	if err := cfg.AddItem("a.b", 3); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Sub("a"); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(map[string]any{"a": map[string]any{"b": int64(3)}}, cfg.ToMap()); d != "" {
		t.Errorf("leaf overwrite differs: %s", d)
	}
}

func TestAddItem_NonTableDescent(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("a", 1); err != nil {
		t.Fatal(err)
	}
	err := cfg.AddItem("a.b", 2)
	var te *tree.TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected TypeError, got %v", err)
	}
	if te.Path != "a" {
		t.Errorf("TypeError path = %q, want %q", te.Path, "a")
	}
}

func TestAddItem_InvalidKey(t *testing.T) {
	cfg := New()
	for _, key := range []string{"", ".", "a..b", ".a", "a."} {
		if err := cfg.AddItem(key, 1); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}

func TestAddItems(t *testing.T) {
	cfg := New()
	err := cfg.AddItems([]map[string]any{
		{"section1.key1": "value1"},
		{"section2.key2": "value2"},
		{"section3.key3": "value3"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"section1": map[string]any{"key1": "value1"},
		"section2": map[string]any{"key2": "value2"},
		"section3": map[string]any{"key3": "value3"},
	}
	if d := cmp.Diff(want, cfg.ToMap()); d != "" {
		t.Errorf("batch add differs: %s", d)
	}
}

func TestUpdateItem(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("k", 1); err != nil {
		t.Fatal(err)
	}
	if err := cfg.UpdateItem("k", 2); err != nil {
		t.Fatal(err)
	}
	v, err := cfg.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(2) {
		t.Errorf("k = %v, want 2", v)
	}

	err = cfg.UpdateItem("absent", 1)
	var ke *KeyError
	if !errors.As(err, &ke) {
		t.Fatalf("expected KeyError, got %v", err)
	}
	if cfg.Has("absent") {
		t.Error("update must never create")
	}
}

func TestRemoveItem(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("a.b", 1); err != nil {
		t.Fatal(err)
	}
	if err := cfg.RemoveItem("a.b"); err != nil {
		t.Fatal(err)
	}
	a, err := cfg.Sub("a")
	if err != nil {
		t.Fatal("empty intermediate table was pruned")
	}
	if _, err := a.Get("b"); err == nil {
		t.Error("b still accessible after removal")
	}
}

func TestRemoveItem_MissingSegments(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("a.x", 1); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"missing.b", "a.b"} {
		err := cfg.RemoveItem(key)
		var ke *KeyError
		if !errors.As(err, &ke) {
			t.Fatalf("%s: expected KeyError, got %v", key, err)
		}
		if ke.Key != key {
			t.Errorf("KeyError carries %q, want the full key %q", ke.Key, key)
		}
	}
}

func TestSub_LiveView(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("a.b", 1); err != nil {
		t.Fatal(err)
	}
	a, err := cfg.Sub("a")
	if err != nil {
		t.Fatal(err)
	}
	if a.Path() != "" {
		t.Error("sub view must not inherit the origin path")
	}
	if err := a.UpdateItem("b", 2); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": map[string]any{"b": int64(2)}}
	if d := cmp.Diff(want, cfg.ToMap()); d != "" {
		t.Errorf("mutation through sub view not visible: %s", d)
	}
}

func TestSub_Errors(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("scalar", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Sub("absent"); err == nil {
		t.Error("expected KeyError for absent key")
	}
	var te *tree.TypeError
	if _, err := cfg.Sub("scalar"); !errors.As(err, &te) {
		t.Error("expected TypeError for non-table")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeFile(t, "app.toml", "[server]\nhost = \"localhost\"\nport = 8080\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.AddItem("server.tls", true); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(cfg.ToMap(), back.ToMap()); d != "" {
		t.Errorf("save/load round trip differs: %s", d)
	}
}

func TestSave_NoOrigin(t *testing.T) {
	cfg, err := FromMap(map[string]any{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"name": "svc",
		"port": int64(8080),
		"limits": map[string]any{
			"cpu": 1.5,
		},
		"tags": []any{"a", "b"},
	})
	if err != nil {
		t.Fatal(err)
	}
	text, err := cfg.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "cfg.json", text)
	back, err := FromJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Path() != "" {
		t.Error("json import must not record an origin path")
	}
	if d := cmp.Diff(cfg.ToMap(), back.ToMap()); d != "" {
		t.Errorf("json round trip differs: %s", d)
	}
}

func TestFromJSON_ParseError(t *testing.T) {
	path := writeFile(t, "bad.json", "{")
	if _, err := FromJSON(path); !errors.Is(err, codec.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestToMap_NullExclusion(t *testing.T) {
	cfg := New()
	if err := cfg.AddItem("keep", 1); err != nil {
		t.Fatal(err)
	}
	if err := cfg.AddItem("drop", nil); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"keep": int64(1)}
	if d := cmp.Diff(want, cfg.ToMap()); d != "" {
		t.Errorf("null key not excluded: %s", d)
	}
}
