package viajes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Mammogram7685/maps/geo"
)

// Publisher writes the run outputs into the working repo and propagates
// them with a dated commit and push. Local writes stand on their own: a
// failed push leaves them in place and is surfaced to the caller.
type Publisher struct {
	repoPath string
	remote   string
	logger   *zap.Logger
	now      func() time.Time

	// runGit is swappable in tests; the default shells out to git.
	runGit func(args ...string) (string, error)
}

// NewPublisher creates a Publisher rooted at repoPath pushing to remote.
func NewPublisher(repoPath, remote string, now func() time.Time, logger *zap.Logger) *Publisher {
	p := &Publisher{repoPath: repoPath, remote: remote, now: now, logger: logger}
	p.runGit = func(args ...string) (string, error) {
		full := append([]string{"-C", p.repoPath}, args...)
		out, err := exec.Command("git", full...).CombinedOutput()
		return strings.TrimSpace(string(out)), err
	}
	return p
}

// WriteGeoJSON serializes the feature collection to path, 2-space indented
// UTF-8 with non-ASCII characters kept literal.
func (p *Publisher) WriteGeoJSON(path string, fc *geo.FeatureCollection) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Publish stages the given files, commits them under a dated message and
// pushes. A commit with nothing staged is not an error; a failed push is.
func (p *Publisher) Publish(files ...string) error {
	if _, err := p.runGit(append([]string{"add"}, files...)...); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	msg := fmt.Sprintf("Actualizar viajes.geojson %s", p.now().Format("2006-01-02"))
	if out, err := p.runGit("commit", "-m", msg); err != nil {
		// Nothing staged yields a non-zero exit; the push below still runs
		// so earlier unpushed commits propagate.
		p.logger.Info("Commit sin cambios", zap.String("detalle", out))
	}

	if out, err := p.runGit("push", p.remote); err != nil {
		return fmt.Errorf("git push: %s: %w", out, err)
	}
	p.logger.Info("Publicado en GitHub (push OK)")
	return nil
}
