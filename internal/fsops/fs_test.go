package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestRealFSExists(t *testing.T) {
	dir := t.TempDir()
	realFS := NewRealFS()

	path := filepath.Join(dir, "plugin.esp")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := realFS.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("Exists = false for existing file")
	}

	exists, err = realFS.Exists(filepath.Join(dir, "missing.esp"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("Exists = true for missing file")
	}
}

func TestRealFSWalkDir(t *testing.T) {
	dir := t.TempDir()
	realFS := NewRealFS()

	if err := os.MkdirAll(filepath.Join(dir, "meshes", "armor"), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "meshes", "armor", "helm.nif"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var seen []string
	err := realFS.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			seen = append(seen, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir failed: %v", err)
	}

	want := filepath.Join(dir, "meshes", "armor", "helm.nif")
	if len(seen) != 1 || seen[0] != want {
		t.Errorf("WalkDir saw %v, want [%s]", seen, want)
	}
}

func TestValidateIdentifier(t *testing.T) {
	realFS := NewRealFS()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple mod name", id: "TestMod1"},
		{name: "name with spaces", id: "Better Bodies"},
		{name: "name with dots", id: "Tamriel_Data.v10"},
		{name: "empty", id: "", wantErr: true},
		{name: "forward slash", id: "mods/evil", wantErr: true},
		{name: "backslash", id: "mods\\evil", wantErr: true},
		{name: "current dir", id: ".", wantErr: true},
		{name: "parent dir", id: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := realFS.ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
