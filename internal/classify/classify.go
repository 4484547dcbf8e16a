package classify

import "strings"

// Extension returns the part of a file name after its last dot, without the
// dot. Names without a dot, and names whose only dot is the leading one
// (".gitignore"), have no extension.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// IsBinary reports whether ext (without the leading dot) is a known binary format.
func IsBinary(ext string) bool {
	return binaryExtensions.has(ext)
}

// IsText reports whether ext is a known text format.
func IsText(ext string) bool {
	return textExtensions.has(ext)
}

// IsSourceCode reports whether ext is a known programming-language source extension.
func IsSourceCode(ext string) bool {
	return sourceExtensions.has(ext)
}

// IsConfigFilename reports whether name looks like a configuration file:
// a dotfile, a well-known config name, or a *.config.js, *.config.ts or
// *.conf file.
func IsConfigFilename(name string) bool {
	if strings.HasPrefix(name, ".") || configFilenames.has(name) {
		return true
	}
	return strings.HasSuffix(name, ".config.js") ||
		strings.HasSuffix(name, ".config.ts") ||
		strings.HasSuffix(name, ".conf")
}

// IsProjectConfigFilename reports whether name is a project configuration
// file for analysis: a dotfile, a well-known config name, or a *.config.js
// or *.config.ts file. Unlike IsConfigFilename, a bare .conf suffix does
// not qualify.
func IsProjectConfigFilename(name string) bool {
	if strings.HasPrefix(name, ".") || configFilenames.has(name) {
		return true
	}
	return strings.HasSuffix(name, ".config.js") ||
		strings.HasSuffix(name, ".config.ts")
}

// IsDependencyFilename reports whether name is a dependency manifest or lockfile.
func IsDependencyFilename(name string) bool {
	return dependencyFilenames.has(name)
}

// LanguageOf maps an extension to a human-readable language label.
func LanguageOf(ext string) (string, bool) {
	lang, ok := languageByExtension[ext]
	return lang, ok
}

// ProjectTypeForMarker returns the project type implied by a marker filename
// such as Cargo.toml or go.mod.
func ProjectTypeForMarker(name string) (string, bool) {
	pt, ok := markerFiles[name]
	return pt, ok
}

// ProjectTypeForExtension returns the project type associated with a source
// extension in the majority fallback table.
func ProjectTypeForExtension(ext string) (string, bool) {
	for _, e := range extensionProjectTypes {
		if e.ext == ext {
			return e.projectType, true
		}
	}
	return "", false
}

// ProjectExtensions returns the extensions of the fallback table in their
// canonical order. The returned slice is a copy.
func ProjectExtensions() []string {
	exts := make([]string, len(extensionProjectTypes))
	for i, e := range extensionProjectTypes {
		exts[i] = e.ext
	}
	return exts
}
