package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"regextree/internal/regex"
)

var log = commonlog.GetLogger("regextree.render")

// Renderer turns a tree into an artifact called name and returns where it
// was written.
type Renderer interface {
	Render(ctx context.Context, root *regex.Node, name string) (string, error)
}

// DOTFile writes <Dir>/<name>.dot.
type DOTFile struct {
	Dir string
}

func (r DOTFile) Render(_ context.Context, root *regex.Node, name string) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(r.Dir, name+".dot")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteDOT(f, root); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	log.Debugf("wrote %s (%d nodes)", path, root.Size())
	return path, nil
}

// PNG pipes the DOT text through Graphviz (`dot -Tpng`) into <Dir>/<name>.png.
type PNG struct {
	Dir    string
	Binary string // defaults to "dot"
}

func (r PNG) Render(ctx context.Context, root *regex.Node, name string) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(r.Dir, name+".png")

	var graph bytes.Buffer
	if err := WriteDOT(&graph, root); err != nil {
		return "", err
	}

	bin := r.Binary
	if bin == "" {
		bin = "dot"
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-Tpng", "-o", path)
	cmd.Stdin = &graph
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s failed: %w: %s", bin, err, msg)
		}
		return "", fmt.Errorf("%s failed: %w", bin, err)
	}
	log.Debugf("rendered %s", path)
	return path, nil
}
