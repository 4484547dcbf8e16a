// Package classify holds the fixed lookup tables used to classify files by
// extension and name. Every lookup is a pure function over immutable data.
package classify

// set is a read-only membership table.
type set map[string]struct{}

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s set) has(key string) bool {
	_, ok := s[key]
	return ok
}

var binaryExtensions = newSet(
	"exe", "dll", "so", "dylib", "bin", "dat",
	"zip", "tar", "gz", "7z", "rar",
	"jpg", "jpeg", "png", "gif", "bmp", "ico",
	"mp3", "mp4", "avi", "mov", "wmv",
	"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx",
)

var textExtensions = newSet(
	"txt", "md", "markdown",
	"js", "ts", "jsx", "tsx",
	"rs", "dart", "py", "java", "go", "rb", "php",
	"c", "cpp", "h", "hpp", "cs",
	"html", "htm", "css", "scss", "sass", "less",
	"json", "yaml", "yml", "xml", "toml", "ini", "conf",
	"sh", "bash", "zsh", "fish", "ps1", "bat", "cmd",
)

// sourceExtensions is the single source-code registry. Both filtering and
// line estimation go through IsSourceCode.
var sourceExtensions = newSet(
	"js", "ts", "jsx", "tsx",
	"rs", "dart", "py", "java", "go", "rb", "php",
	"c", "cpp", "cc", "cxx", "h", "hpp", "cs",
	"swift", "kt", "scala", "clj", "ex", "exs",
	"hs", "ml", "elm", "erl", "lua", "r",
)

var languageByExtension = map[string]string{
	"js":   "JavaScript",
	"ts":   "TypeScript",
	"jsx":  "JavaScript (JSX)",
	"tsx":  "TypeScript (TSX)",
	"rs":   "Rust",
	"dart": "Dart",
	"py":   "Python",
	"java": "Java",
	"go":   "Go",
	"rb":   "Ruby",
	"php":  "PHP",
	"c":    "C",
	"cpp":  "C++",
	"cc":   "C++",
	"cxx":  "C++",
	"h":    "C/C++ Header",
	"cs":   "C#",
	"html": "HTML",
	"css":  "CSS",
	"scss": "SCSS",
	"json": "JSON",
	"yaml": "YAML",
	"yml":  "YAML",
	"xml":  "XML",
	"md":   "Markdown",
}

// markerFiles maps a filename that identifies an ecosystem to its project type.
var markerFiles = map[string]string{
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

// extensionProjectTypes is ordered: its order breaks ties in the majority
// fallback of project type detection.
var extensionProjectTypes = []struct {
	ext         string
	projectType string
}{
	{"js", "JavaScript/TypeScript"},
	{"ts", "JavaScript/TypeScript"},
	{"jsx", "JavaScript/TypeScript"},
	{"tsx", "JavaScript/TypeScript"},
	{"rs", "Rust"},
	{"dart", "Dart"},
	{"py", "Python"},
	{"java", "Java"},
	{"go", "Go"},
	{"rb", "Ruby"},
	{"php", "PHP"},
	{"c", "C/C++"},
	{"cpp", "C/C++"},
	{"cc", "C/C++"},
	{"cxx", "C/C++"},
	{"cs", "C#"},
}

var dependencyFilenames = newSet(
	"package.json", "package-lock.json", "yarn.lock", "pnpm-lock.yaml",
	"Cargo.toml", "Cargo.lock",
	"pubspec.yaml", "pubspec.lock",
	"requirements.txt", "Pipfile",
	"go.mod", "go.sum",
	"Gemfile", "Gemfile.lock",
	"composer.json", "composer.lock",
)

var configFilenames = newSet(
	".gitignore", ".env",
	"tsconfig.json", "webpack.config.js", "vite.config.js",
	"rollup.config.js", "babel.config.js",
	".eslintrc", ".prettierrc",
	"Dockerfile", "docker-compose.yml", "nginx.conf",
)
