package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulesPrefix = "focusly/internal/modules/"

var layers = []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"}

type importRef struct {
	file string
	path string
}

// imports walks root and returns every focusly import from non-test files.
func imports(t *testing.T, root string) []importRef {
	t.Helper()
	fset := token.NewFileSet()
	var refs []importRef
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.HasPrefix(importPath, "focusly/") {
				refs = append(refs, importRef{file: filepath.ToSlash(path), path: importPath})
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return refs
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	for _, ref := range imports(t, filepath.Join("..", "modules")) {
		module := moduleName(ref.file)
		layer := detectLayer(ref.file)
		if module == "" || layer == "" || !strings.HasPrefix(ref.path, modulesPrefix) {
			continue
		}
		if violatesLayerRule(module, layer, ref.path) {
			t.Errorf("forbidden import in %s (%s): %s", ref.file, layer, ref.path)
		}
	}
}

func TestModulesStayOffOuterPackages(t *testing.T) {
	t.Parallel()
	for _, ref := range imports(t, filepath.Join("..", "modules")) {
		if strings.HasPrefix(ref.path, "focusly/internal/bootstrap") || strings.HasPrefix(ref.path, "focusly/internal/ui") {
			t.Errorf("%s reaches outward to %s", ref.file, ref.path)
		}
	}
}

func TestPlatformHasNoModuleDependencies(t *testing.T) {
	t.Parallel()
	for _, ref := range imports(t, filepath.Join("..", "platform")) {
		if !strings.HasPrefix(ref.path, "focusly/internal/platform/") {
			t.Errorf("platform package %s imports %s", ref.file, ref.path)
		}
	}
}

func TestUIDependsOnPortsOnly(t *testing.T) {
	t.Parallel()
	for _, ref := range imports(t, filepath.Join("..", "ui")) {
		if !strings.HasPrefix(ref.path, modulesPrefix) {
			continue
		}
		if !isDTO(ref.path) && !strings.HasSuffix(ref.path, "/domain") {
			t.Errorf("ui file %s imports %s", ref.file, ref.path)
		}
	}
}

func TestLayerRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		module, layer, path string
		want                bool
	}{
		{"focus", "adapter/out", modulesPrefix + "session/port/in", false},
		{"focus", "adapter/out", modulesPrefix + "session/dto", false},
		{"focus", "adapter/out", modulesPrefix + "session/service", true},
		{"focus", "adapter/out", modulesPrefix + "probe/domain", true},
		{"focus", "adapter/in", modulesPrefix + "focus/domain", true},
		{"focus", "adapter/in", modulesPrefix + "focus/port/in", false},
		{"focus", "service", modulesPrefix + "focus/adapter/out", true},
		{"ambient", "domain", modulesPrefix + "ambient/service", true},
		{"ambient", "usecase", modulesPrefix + "ambient/port/out", false},
	}
	for _, tc := range cases {
		if got := violatesLayerRule(tc.module, tc.layer, tc.path); got != tc.want {
			t.Errorf("violatesLayerRule(%s, %s, %s) = %v, want %v", tc.module, tc.layer, tc.path, got, tc.want)
		}
	}
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range layers {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path, "/port/in/") || strings.HasSuffix(path, "/port/in")
}

func isDTO(path string) bool {
	return strings.Contains(path, "/dto/") || strings.HasSuffix(path, "/dto")
}

func violatesLayerRule(module, layer, importPath string) bool {
	if !strings.HasPrefix(importPath, modulesPrefix+module+"/") {
		// Other modules are reachable through their inbound port and DTOs only.
		return !isPortIn(importPath) && !isDTO(importPath)
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return strings.Contains(importPath, "/adapter/")
	case "service":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/")
	case "domain", "dto":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") || strings.Contains(importPath, "/service/")
	default:
		return false
	}
}
