package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/mediaferry/internal/domain"
)

// PathRoots are the storage roots a job can be filed under. Base is the media
// root shown to users with its prefix stripped.
type PathRoots struct {
	Base       string
	Movies     string
	Shows      string
	General    string
	HostPrefix string
}

func (r PathRoots) ForType(pt domain.PathType) string {
	switch pt {
	case domain.PathTypeMovies:
		return r.Movies
	case domain.PathTypeShows:
		return r.Shows
	default:
		return r.General
	}
}

// Display strips the media root from an absolute path.
func (r PathRoots) Display(path string) string {
	base := strings.TrimSuffix(r.Base, "/") + "/"
	if base != "/" && strings.HasPrefix(path, base) {
		return strings.TrimPrefix(path, base)
	}
	return strings.TrimPrefix(path, "/")
}

// ParseCustom turns a user typed path into a path relative to Base. A leading
// separator and a pasted media root are dropped; traversal out of Base is
// flattened away. The result must name a file with an extension.
func (r PathRoots) ParseCustom(input string) (string, error) {
	rel := strings.TrimSpace(input)
	rel = strings.TrimPrefix(rel, "/")

	for _, prefix := range []string{r.HostPrefix, r.Base} {
		p := strings.Trim(prefix, "/")
		if p == "" {
			continue
		}
		if after, ok := strings.CutPrefix(rel, p+"/"); ok {
			rel = after
			break
		}
	}

	rel = strings.TrimPrefix(filepath.Clean("/"+rel), "/")
	if rel == "" || filepath.Ext(rel) == "" || strings.HasSuffix(input, "/") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPath, input)
	}
	return rel, nil
}

func (r PathRoots) Join(rel string) string {
	return filepath.Join(r.Base, rel)
}
