// Package site exports the landing page as a static site: one HTML file
// per reachable overlay state plus the static assets.
package site

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/mrbear1024/xgrowth/internal/assets"
	"github.com/mrbear1024/xgrowth/internal/content"
	"github.com/mrbear1024/xgrowth/internal/page"
	"github.com/mrbear1024/xgrowth/internal/progress"
	"github.com/mrbear1024/xgrowth/internal/view"
	"github.com/mrbear1024/xgrowth/internal/walker"
)

// StaticDir is the output subdirectory holding the assets.
const StaticDir = "static"

// Generator writes a static export of a site.
type Generator struct {
	Site      *content.Site
	OutputDir string
	Title     string

	// Assets are the include patterns selecting which asset files to copy.
	// Empty copies everything.
	Assets   []string
	// AssetDir optionally overrides embedded assets with files on disk.
	AssetDir string

	Reporter progress.Reporter
	Logger   *zap.Logger
}

// Result summarizes an export.
type Result struct {
	Pages     int
	Assets    int
	Unchanged int
}

// NewGenerator creates a Generator writing site to outputDir.
func NewGenerator(site *content.Site, outputDir string) *Generator {
	return &Generator{Site: site, OutputDir: outputDir}
}

type assetFile struct {
	fsys fs.FS
	info walker.FileInfo
}

// Generate renders every page and copies the assets. Assets whose content
// already matches the output are left untouched.
func (g *Generator) Generate() (*Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	files, err := g.collectAssets()
	if err != nil {
		return nil, err
	}
	states := page.ExportStates(g.Site)

	if err := os.MkdirAll(filepath.Join(g.OutputDir, StaticDir), 0o755); err != nil {
		return nil, err
	}

	res := &Result{}
	reporter.Start(len(states) + len(files))
	defer reporter.Finish()

	step := 0
	for _, s := range states {
		name := page.FileName(s)
		if err := g.writePage(s, filepath.Join(g.OutputDir, name)); err != nil {
			return res, fmt.Errorf("rendering %s: %w", name, err)
		}
		res.Pages++
		step++
		reporter.Update(step, name)
	}

	staticOut := filepath.Join(g.OutputDir, StaticDir)
	for _, f := range files {
		copied, err := copyIfChanged(f, staticOut)
		if err != nil {
			return res, fmt.Errorf("copying %s: %w", f.info.Path, err)
		}
		if copied {
			res.Assets++
		} else {
			res.Unchanged++
		}
		step++
		reporter.Update(step, StaticDir+"/"+f.info.Path)
	}

	logger.Info("site exported",
		zap.String("dir", g.OutputDir),
		zap.Int("pages", res.Pages),
		zap.Int("assets", res.Assets),
		zap.Int("unchanged", res.Unchanged),
	)
	return res, nil
}

func (g *Generator) writePage(s page.State, dest string) error {
	ctrl := page.New(g.Site, page.PathEncoder{})
	defer ctrl.Teardown()
	ctrl.Restore(s)

	opts := view.Options{
		Title:     g.Title,
		AssetBase: StaticDir + "/",
		Year:      time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := view.Page(g.Site, ctrl, opts).Render(&buf); err != nil {
		return err
	}
	return os.WriteFile(dest, buf.Bytes(), 0o644)
}

// collectAssets lists the embedded assets, replaced or extended by the files
// in AssetDir.
func (g *Generator) collectAssets() ([]assetFile, error) {
	sources := []fs.FS{assets.FS()}
	if g.AssetDir != "" {
		if _, err := os.Stat(g.AssetDir); err != nil {
			return nil, fmt.Errorf("asset dir: %w", err)
		}
		sources = append(sources, os.DirFS(g.AssetDir))
	}

	byPath := make(map[string]assetFile)
	var order []string
	for _, fsys := range sources {
		infos, err := walker.Walk(fsys, walker.WalkerConfig{Include: g.Assets})
		if err != nil {
			return nil, fmt.Errorf("listing assets: %w", err)
		}
		for _, info := range infos {
			if _, seen := byPath[info.Path]; !seen {
				order = append(order, info.Path)
			}
			byPath[info.Path] = assetFile{fsys: fsys, info: info}
		}
	}

	out := make([]assetFile, 0, len(order))
	for _, p := range order {
		out = append(out, byPath[p])
	}
	return out, nil
}

func copyIfChanged(f assetFile, outDir string) (bool, error) {
	if existing, err := walker.HashFile(os.DirFS(outDir), f.info.Path); err == nil && existing == f.info.ContentHash {
		return false, nil
	}

	dest := filepath.Join(outDir, filepath.FromSlash(f.info.Path))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, err
	}

	src, err := f.fsys.Open(f.info.Path)
	if err != nil {
		return false, err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return false, err
	}
	return true, out.Close()
}
