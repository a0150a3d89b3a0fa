package fileops

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	e "setupgen/pkg/errors"
	"setupgen/pkg/logger"
)

// DefaultMarkerName is the package-marker file written into each package directory.
const DefaultMarkerName = "__init__.py"

//go:embed templates/*.py
var templateFS embed.FS

// MarkerOptions configures CreatePackageMarker.
type MarkerOptions struct {
	// Recursive writes a marker into every directory under the path.
	Recursive bool
	// Template names a built-in template (see TemplateNames) or a file on
	// disk whose content is copied into each marker. Empty writes empty markers.
	Template string
	// Name overrides DefaultMarkerName.
	Name string
	// Logger receives one info line per marker written.
	Logger *logger.Logger
}

// TemplateNames lists the templates built into setupgen.
func TemplateNames() []string {
	entries, _ := fs.ReadDir(templateFS, "templates")
	names := make([]string, 0, len(entries))
	for _, ent := range entries {
		names = append(names, strings.TrimSuffix(ent.Name(), ".py"))
	}
	sort.Strings(names)
	return names
}

type markerTemplate struct {
	content []byte
	mode    fs.FileMode
}

func loadTemplate(name string) (markerTemplate, error) {
	if name == "" {
		return markerTemplate{mode: 0o644}, nil
	}
	if b, err := templateFS.ReadFile("templates/" + name + ".py"); err == nil {
		return markerTemplate{content: b, mode: 0o644}, nil
	}
	fi, err := os.Stat(name)
	if err != nil {
		return markerTemplate{}, e.WrapFS(err, "unknown template "+name).
			WithSuggestion("Use a file path or one of: " + strings.Join(TemplateNames(), ", "))
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return markerTemplate{}, e.WrapFS(err, "read template "+name)
	}
	return markerTemplate{content: b, mode: fi.Mode().Perm()}, nil
}

// CreatePackageMarker writes a package-marker file into path, and into
// every directory below it when opts.Recursive is set. Existing markers are
// overwritten.
func CreatePackageMarker(path string, opts MarkerOptions) error {
	tmpl, err := loadTemplate(opts.Template)
	if err != nil {
		return err
	}
	name := opts.Name
	if name == "" {
		name = DefaultMarkerName
	}

	if !opts.Recursive {
		return writeMarker(path, name, tmpl, opts.Logger)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return e.WrapFS(err, "walk "+p)
		}
		if !d.IsDir() {
			return nil
		}
		return writeMarker(p, name, tmpl, opts.Logger)
	})
}

func writeMarker(dir, name string, tmpl markerTemplate, log *logger.Logger) error {
	p := filepath.Join(dir, name)
	log.Info(p)
	if err := os.WriteFile(p, tmpl.content, tmpl.mode); err != nil {
		return e.WrapFS(err, "write marker "+p).WithContext("path", p)
	}
	return nil
}
