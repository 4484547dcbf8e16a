package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileTypeChecks(t *testing.T) {
	assert.True(t, IsBinary("exe"))
	assert.True(t, IsBinary("dll"))
	assert.False(t, IsBinary("txt"))

	assert.True(t, IsText("txt"))
	assert.True(t, IsText("md"))
	assert.False(t, IsText("exe"))

	assert.True(t, IsSourceCode("rs"))
	assert.True(t, IsSourceCode("js"))
	assert.False(t, IsSourceCode("txt"))
}

func TestIsSourceCode_CaseSensitive(t *testing.T) {
	assert.False(t, IsSourceCode("RS"))
	assert.False(t, IsSourceCode(""))
}

func TestIsConfigFilename(t *testing.T) {
	tests := []struct {
		name    string
		want    bool
		project bool
	}{
		{".gitignore", true, true},
		{".anything", true, true},
		{"tsconfig.json", true, true},
		{"Dockerfile", true, true},
		{"jest.config.js", true, true},
		{"vitest.config.ts", true, true},
		{"nginx.conf", true, true},
		{"redis.conf", true, false},
		{"main.rs", false, false},
		{"config.json", false, false},
		{"", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsConfigFilename(tc.name))
			assert.Equal(t, tc.project, IsProjectConfigFilename(tc.name))
		})
	}
}

func TestIsDependencyFilename(t *testing.T) {
	for _, name := range []string{"package.json", "go.sum", "Cargo.lock", "Pipfile", "composer.lock"} {
		assert.True(t, IsDependencyFilename(name), name)
	}
	for _, name := range []string{"Pipfile.lock", "pom.xml", "package.JSON"} {
		assert.False(t, IsDependencyFilename(name), name)
	}
}

func TestLanguageOf(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"rs", "Rust"},
		{"py", "Python"},
		{"jsx", "JavaScript (JSX)"},
		{"cc", "C++"},
		{"h", "C/C++ Header"},
		{"yml", "YAML"},
		{"md", "Markdown"},
	}
	for _, tc := range tests {
		got, ok := LanguageOf(tc.ext)
		assert.True(t, ok, tc.ext)
		assert.Equal(t, tc.want, got, tc.ext)
	}

	_, ok := LanguageOf("txt")
	assert.False(t, ok)
}

func TestProjectTypeForMarker(t *testing.T) {
	tests := map[string]string{
		"package.json":     "Node.js",
		"Cargo.toml":       "Rust",
		"pubspec.yaml":     "Flutter/Dart",
		"pom.xml":          "Java",
		"build.gradle":     "Java",
		"requirements.txt": "Python",
		"setup.py":         "Python",
		"go.mod":           "Go",
		"Gemfile":          "Ruby",
		"composer.json":    "PHP",
	}
	for name, want := range tests {
		got, ok := ProjectTypeForMarker(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ProjectTypeForMarker("Makefile")
	assert.False(t, ok)
}

func TestProjectTypeForExtension(t *testing.T) {
	got, ok := ProjectTypeForExtension("tsx")
	assert.True(t, ok)
	assert.Equal(t, "JavaScript/TypeScript", got)

	got, ok = ProjectTypeForExtension("cxx")
	assert.True(t, ok)
	assert.Equal(t, "C/C++", got)

	// Headers carry a language but not a project type.
	_, ok = ProjectTypeForExtension("h")
	assert.False(t, ok)
}

func TestProjectExtensions_ReturnsCopy(t *testing.T) {
	exts := ProjectExtensions()
	assert.Equal(t, "js", exts[0])
	exts[0] = "mutated"
	assert.Equal(t, "js", ProjectExtensions()[0])
}

// Every language-mapped source extension must also be in the source registry,
// otherwise line estimates and language stats would disagree.
func TestTablesConsistent(t *testing.T) {
	for _, ext := range ProjectExtensions() {
		assert.True(t, IsSourceCode(ext), "project extension %q missing from source table", ext)
		_, ok := LanguageOf(ext)
		assert.True(t, ok, "project extension %q has no language", ext)
	}
}
