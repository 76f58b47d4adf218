package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/infrastructure/tracing"
	"github.com/bnema/mediaferry/internal/port"
	"go.opentelemetry.io/otel/attribute"
)

// Materializer writes the bytes behind a chat file handle to a target path.
// Local sources live under botAPIRoot on the bot API server and are read from
// the same files mounted at sharedRoot.
type Materializer struct {
	resolver   port.FileResolver
	client     *http.Client
	botAPIRoot string
	sharedRoot string
}

func NewMaterializer(resolver port.FileResolver, client *http.Client, botAPIRoot, sharedRoot string) *Materializer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Materializer{
		resolver:   resolver,
		client:     client,
		botAPIRoot: botAPIRoot,
		sharedRoot: sharedRoot,
	}
}

func (m *Materializer) Materialize(ctx context.Context, fileID, target string) error {
	ctx, span := tracing.Tracer().Start(ctx, "materializer.Materialize")
	defer span.End()
	span.SetAttributes(attribute.String("target", target))

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}

	src, err := m.resolver.ResolveFile(ctx, fileID)
	if err != nil {
		return fmt.Errorf("resolve file: %w", err)
	}
	span.SetAttributes(attribute.String("source.kind", string(src.Kind)))

	switch src.Kind {
	case domain.SourceRemote:
		err = m.download(ctx, src.Location, target)
	case domain.SourceLocal:
		err = m.copyLocal(m.sharedPath(src.Location), target)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, src.Kind)
	}
	if err != nil {
		return err
	}

	logger.Info.Printf("materialized %s", logger.SanitizeForLog(target))
	return nil
}

// sharedPath maps a bot API server path onto the shared mount.
func (m *Materializer) sharedPath(location string) string {
	if m.botAPIRoot == "" || m.sharedRoot == "" {
		return location
	}
	if rest, ok := strings.CutPrefix(location, strings.TrimSuffix(m.botAPIRoot, "/")+"/"); ok {
		return filepath.Join(m.sharedRoot, rest)
	}
	return location
}

func (m *Materializer) download(ctx context.Context, url, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", logger.RedactURLError(err))
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", logger.RedactURLError(err))
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	return writeFileAtomic(target, resp.Body)
}

func (m *Materializer) copyLocal(source, target string) error {
	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return writeFileAtomic(target, f)
}

// writeFileAtomic streams r into a temp file next to target and renames it
// into place, so a failed transfer never leaves a partial target behind.
func writeFileAtomic(target string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".mediaferry-*.part")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}
