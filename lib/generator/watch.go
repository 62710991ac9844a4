package generator

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// Watch generates code for the given package patterns, then regenerates a
// package whenever one of its source files changes. Generation errors are
// logged and watching continues. Watch blocks until ctx is done.
func (g *Generator) Watch(ctx context.Context, patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, pkg := range packages {
		if err := fsw.Add(pkg); err != nil {
			return err
		}
		g.log.Debug("watching", "package", pkg)
	}
	for _, pkg := range packages {
		if err := g.generatePackage(pkg); err != nil {
			g.log.Error("generate failed", "package", pkg, "error", err)
		}
	}

	debounce := g.opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	var pending []string
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !g.relevant(event) {
				continue
			}
			if dir := filepath.Dir(event.Name); !slices.Contains(pending, dir) {
				pending = append(pending, dir)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			g.log.Error("watcher error", "error", err)

		case <-ticker.C:
			for _, pkg := range pending {
				g.log.Info("change detected", "package", pkg)
				if err := g.generatePackage(pkg); err != nil {
					g.log.Error("generate failed", "package", pkg, "error", err)
				}
			}
			pending = pending[:0]
		}
	}
}

// relevant reports whether event touches a source file the generator reads.
func (g *Generator) relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if !isSource(name) || strings.HasSuffix(name, g.opts.Suffix) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
