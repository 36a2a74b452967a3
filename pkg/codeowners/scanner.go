package codeowners

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
	"gopkg.in/yaml.v3"

	"github.com/ownerscan/codeowners/pkg/core/logging"
)

// scanWorkers bounds the classification worker pool. File classification
// is I/O bound (manifest reads, annotation parses), so a pool wider than
// GOMAXPROCS still pays off.
const scanWorkers = 8

// classified holds whatever a single file contributed to the Project;
// fields are nil/zero unless the corresponding check matched.
type classified struct {
	file        *ProjectFile
	pkg         *Package
	marker      *DirectoryCodeownerMarker
	vendoredGem *VendoredGem
}

// Scanner walks a project tree once and classifies every file into the
// buckets the mappers read from (§4.B). Grounded on gocodewalker's
// queue-based walk, used the same way multimediallc's codeowners-plus
// CLI drives it: a buffered channel of *gocodewalker.File consumed
// while Start() runs in the background.
type Scanner struct {
	cfg    *Config
	cache  Cache
	logger *logging.Logger
}

// NewScanner builds a Scanner over cfg, consulting cache for annotation
// parses so an unchanged file's first line is never re-read across runs.
func NewScanner(cfg *Config, cache Cache) *Scanner {
	return &Scanner{cfg: cfg, cache: cache, logger: logging.Default()}
}

// annotationOwner returns the annotation owner for path (NoOwner-mapped
// to ""), consulting the cache by mtime before falling back to a parse.
func (s *Scanner) annotationOwner(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	mtime := info.ModTime().Unix()

	if owner, ok := s.cache.Get(path, mtime); ok {
		if owner == NoOwner {
			return ""
		}
		return owner
	}

	owner := ParseAnnotation(path)
	s.cache.Put(path, mtime, owner)
	if owner == NoOwner {
		return ""
	}
	return owner
}

// Scan walks root and returns the populated Project. Team definitions
// are loaded and indexed before file classification; annotation owners
// are recorded as found during the walk and checked against the teams
// later, by the mappers and the validator.
func (s *Scanner) Scan(root string) (*Project, error) {
	s.logger.WithPath(root).Debug("scanning project")
	p := &Project{BasePath: root}

	teams, err := s.loadTeams(root)
	if err != nil {
		return nil, err
	}
	p.Teams = teams
	p.indexTeams()

	if contents, err := os.ReadFile(filepath.Join(root, "CODEOWNERS")); err == nil {
		p.CodeownersFileContents = string(contents)
	}

	var tracked map[string]bool
	if s.cfg.SkipUntrackedFiles {
		if files, err := TrackedFiles(root); err == nil {
			tracked = make(map[string]bool, len(files))
			for _, f := range files {
				tracked[filepath.ToSlash(f)] = true
			}
		} else {
			s.logger.WithPath(root).Warn("skip_untracked_files is set but git is unavailable; scanning every file", "error", err)
		}
	}

	fileListQueue := make(chan *gocodewalker.File, 256)
	walker := gocodewalker.NewFileWalker(root, fileListQueue)
	walker.ExcludeDirectory = []string{".git"}
	walker.IncludeHidden = true

	walkErrChan := make(chan error, 1)
	go func() {
		walkErrChan <- walker.Start()
		close(walkErrChan)
	}()

	vendoredRoot := filepath.Join(root, s.cfg.VendoredGemsPath)

	// Classification is I/O bound (manifest reads, annotation parses),
	// so a bounded pool of workers drains fileListQueue concurrently;
	// gocodewalker.File values arrive in no particular order, and each
	// is delivered to exactly one worker. Results are funneled back
	// through a single channel so Project's slices are only ever
	// appended to from this one collecting goroutine.
	results := make(chan classified, 256)
	var firstErr error
	var errMu sync.Mutex
	recordErr := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	var wg sync.WaitGroup
	for i := 0; i < scanWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range fileListQueue {
				c, err := s.classify(f, root, vendoredRoot, tracked)
				if err != nil {
					recordErr(err)
					continue
				}
				if c != nil {
					results <- *c
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	for c := range results {
		if c.marker != nil {
			p.DirectoryMarkers = append(p.DirectoryMarkers, *c.marker)
		}
		if c.vendoredGem != nil {
			p.VendoredGems = append(p.VendoredGems, *c.vendoredGem)
		}
		if c.pkg != nil {
			p.Packages = append(p.Packages, *c.pkg)
		}
		if c.file != nil {
			p.Files = append(p.Files, *c.file)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := <-walkErrChan; err != nil {
		return nil, err
	}

	p.Packages = filterPackagePaths(p.Packages, s.cfg.RubyPackagePaths, s.cfg.JavascriptPackagePaths)

	sort.Slice(p.Files, func(i, j int) bool { return p.Files[i].Path < p.Files[j].Path })
	sort.Slice(p.Packages, func(i, j int) bool { return p.Packages[i].Path < p.Packages[j].Path })
	sort.Slice(p.DirectoryMarkers, func(i, j int) bool { return p.DirectoryMarkers[i].Path < p.DirectoryMarkers[j].Path })
	sort.Slice(p.VendoredGems, func(i, j int) bool { return p.VendoredGems[i].Path < p.VendoredGems[j].Path })

	return p, nil
}

// classify inspects a single walked file and reports what it
// contributes to the Project, if anything. A non-nil error is a hard
// failure (a malformed manifest) that aborts the whole scan.
func (s *Scanner) classify(f *gocodewalker.File, root, vendoredRoot string, tracked map[string]bool) (*classified, error) {
	rel, err := filepath.Rel(root, f.Location)
	if err != nil {
		return nil, nil
	}
	rel = filepath.ToSlash(rel)

	if tracked != nil && !tracked[rel] {
		return nil, nil
	}

	if rel == ".codeowner" || strings.HasSuffix(rel, "/.codeowner") {
		if owner, ok := readSingleLine(f.Location); ok {
			return &classified{marker: &DirectoryCodeownerMarker{Path: rel, Owner: owner}}, nil
		}
		return nil, nil
	}

	var c classified
	found := false

	if isDirectChild(f.Location, vendoredRoot) {
		c.vendoredGem = &VendoredGem{Path: f.Location, Name: filepath.Base(f.Location)}
		found = true
	}

	switch filepath.Base(rel) {
	case "package.yml":
		owner, err := rubyPackageOwner(f.Location)
		if err != nil {
			return nil, PackageManifestError(rel, err)
		}
		if owner != "" {
			c.pkg = &Package{Path: rel, Kind: PackageKindRuby, Owner: owner}
			found = true
		}
	case "package.json":
		owner, err := jsPackageOwner(f.Location)
		if err != nil {
			return nil, PackageManifestError(rel, err)
		}
		if owner != "" {
			c.pkg = &Package{Path: rel, Kind: PackageKindJavascript, Owner: owner}
			found = true
		}
	}

	if matchesAny(s.cfg.OwnedGlobs, rel) && !matchesAny(s.cfg.UnownedGlobs, rel) {
		c.file = &ProjectFile{Path: f.Location, AnnotationOwner: s.annotationOwner(f.Location)}
		found = true
	}

	if !found {
		return nil, nil
	}
	return &c, nil
}

// filterPackagePaths keeps only packages whose directory matches the
// configured ruby/javascript package path globs, per kind.
func filterPackagePaths(pkgs []Package, rubyGlobs, jsGlobs []string) []Package {
	var out []Package
	for _, pkg := range pkgs {
		var globs []string
		if pkg.Kind == PackageKindRuby {
			globs = rubyGlobs
		} else {
			globs = jsGlobs
		}
		if matchesAny(globs, pkg.Dir()) || matchesAny(globs, pkg.Dir()+"/") {
			out = append(out, pkg)
		}
	}
	return out
}

// isDirectChild reports whether childPath's parent directory is exactly parent.
func isDirectChild(childPath, parent string) bool {
	return filepath.Dir(childPath) == filepath.Clean(parent)
}

func readSingleLine(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	line := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	if line == "" {
		return "", false
	}
	return line, true
}

// rubyPackageOwner reads the `owner:` key from a package.yml manifest.
// A read failure is treated as "no owner" (the file may have vanished
// mid-walk); a parse failure is a malformed manifest and is returned to
// the caller as a hard error.
func rubyPackageOwner(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil
	}
	var manifest struct {
		Owner string `yaml:"owner"`
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return "", err
	}
	return manifest.Owner, nil
}

func jsPackageOwner(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil
	}
	var manifest struct {
		Metadata struct {
			Owner string `json:"owner"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", err
	}
	return manifest.Metadata.Owner, nil
}

// loadTeams reads every team definition file matched by TeamFileGlob.
// Patterns use doublestar syntax (the same glob dialect as every other
// match in this package), so matching goes through doublestar.Glob over
// an os.DirFS rather than filepath.Glob, which doesn't understand "**".
func (s *Scanner) loadTeams(root string) ([]Team, error) {
	rootFS := os.DirFS(root)

	var teams []Team
	for _, pattern := range s.cfg.TeamFileGlob {
		matches, err := doublestar.Glob(rootFS, pattern)
		if err != nil {
			return nil, err
		}
		for _, rel := range matches {
			rel = filepath.ToSlash(rel)

			data, err := fs.ReadFile(rootFS, rel)
			if err != nil {
				continue
			}
			var ty TeamYAML
			if err := yaml.Unmarshal(data, &ty); err != nil {
				return nil, TeamManifestError(rel, err)
			}
			if ty.Name == "" {
				continue
			}
			teams = append(teams, ty.toTeam(rel))
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}
