package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/infrastructure/metrics"
	"github.com/bnema/mediaferry/internal/infrastructure/tracing"
	"github.com/bnema/mediaferry/internal/port"
	"go.opentelemetry.io/otel/attribute"
)

const latinTitleThreshold = 0.7

// Classifier proposes a storage path for an uploaded video.
type Classifier struct {
	lookup  port.TitleLookup
	roots   PathRoots
	enabled bool
	timeout time.Duration
}

func NewClassifier(lookup port.TitleLookup, roots PathRoots, enabled bool, timeout time.Duration) *Classifier {
	return &Classifier{
		lookup:  lookup,
		roots:   roots,
		enabled: enabled,
		timeout: timeout,
	}
}

// DefaultPath is where a file goes when it cannot be classified.
func (c *Classifier) DefaultPath(fileName string) string {
	return filepath.Join(c.roots.General, fileName)
}

// Classify never fails: anything it cannot make sense of lands on DefaultPath.
func (c *Classifier) Classify(ctx context.Context, fileName, caption string) (path string) {
	path = c.DefaultPath(fileName)
	if !c.enabled {
		return path
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error.Printf("classifier panic for %q: %v", logger.SanitizeForLog(fileName), r)
			path = c.DefaultPath(fileName)
		}
	}()

	ctx, span := tracing.Tracer().Start(ctx, "classifier.Classify")
	defer span.End()

	g := guessTitle(normalizeMarkers(fileName))
	if g.Title == "" && caption != "" {
		g = mergeGuess(g, guessTitle(normalizeMarkers(caption)))
	}
	if !g.resolved() {
		logger.Debug.Printf("unresolved name %q, using general path", logger.SanitizeForLog(fileName))
		return path
	}

	title := g.Title
	if latinFraction(title) <= latinTitleThreshold {
		if resolved := c.resolveTitle(ctx, g); resolved != "" {
			title = resolved
		}
	}

	title = SanitizeTitle(title)
	if title == "" {
		return path
	}

	ext := fileExt(fileName)
	if ext == "" {
		ext = ".mp4"
	}

	path = c.compose(g, title, ext)
	span.SetAttributes(attribute.String("classifier.path", path))
	return path
}

func (c *Classifier) compose(g titleGuess, title, ext string) string {
	folder := title
	if g.Year > 0 {
		folder = fmt.Sprintf("%s (%d)", title, g.Year)
	}

	if g.Kind == kindEpisode {
		season := g.Season
		if season == 0 {
			season = 1
		}
		name := fmt.Sprintf("%s S%02d", title, season)
		if g.Episode > 0 {
			name += fmt.Sprintf("E%02d", g.Episode)
		}
		return filepath.Join(c.roots.Shows, folder, fmt.Sprintf("Season %02d", season), name+ext)
	}

	return filepath.Join(c.roots.Movies, folder, folder+ext)
}

// resolveTitle walks the title ladder against the catalog matching the guess
// and returns the first hit. Lookup errors count as misses.
func (c *Classifier) resolveTitle(ctx context.Context, g titleGuess) string {
	if c.lookup == nil {
		return ""
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	catalog, search := "movie", c.lookup.SearchMovie
	if g.Kind == kindEpisode {
		catalog, search = "tv", c.lookup.SearchSeries
	}

	for _, candidate := range titleLadder(g.Title) {
		if ctx.Err() != nil {
			metrics.TitleLookupsTotal.WithLabelValues(catalog, "timeout").Inc()
			return ""
		}

		found, err := search(ctx, candidate, g.Year)
		if err != nil {
			metrics.TitleLookupsTotal.WithLabelValues(catalog, "error").Inc()
			logger.Warn.Printf("title lookup %q failed: %v", logger.SanitizeForLog(candidate), err)
			continue
		}
		if found != "" {
			metrics.TitleLookupsTotal.WithLabelValues(catalog, "hit").Inc()
			logger.Info.Printf("resolved title %q -> %q", logger.SanitizeForLog(candidate), found)
			return found
		}
		metrics.TitleLookupsTotal.WithLabelValues(catalog, "miss").Inc()
	}
	return ""
}

func mergeGuess(fromName, fromCaption titleGuess) titleGuess {
	g := fromCaption
	if fromName.Season > 0 || fromName.Episode > 0 {
		g.Season, g.Episode = fromName.Season, fromName.Episode
		g.Kind = kindEpisode
	}
	if fromName.Year > 0 {
		g.Year = fromName.Year
	}
	if g.Title == "" {
		g.Kind = kindUnknown
	}
	return g
}
