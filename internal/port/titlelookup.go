package port

import "context"

// TitleLookup returns the canonical English title for a query, or "" when the
// catalog has no match. year is ignored when zero.
type TitleLookup interface {
	SearchMovie(ctx context.Context, title string, year int) (string, error)
	SearchSeries(ctx context.Context, title string, year int) (string, error)
}
