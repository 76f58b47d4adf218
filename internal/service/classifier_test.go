package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bnema/mediaferry/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Disabled(t *testing.T) {
	c := NewClassifier(nil, testRoots(), false, time.Second)

	for _, name := range []string{"The.Matrix.1999.mkv", "Show.S01E03.mkv", "video_1700000000000.mp4", "Who Are You? (Live: 1979).mp4"} {
		assert.Equal(t, "/media-server/General/"+name, c.Classify(context.Background(), name, "caption"))
	}
}

func TestClassifier_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		caption  string
		expected string
	}{
		{
			name:     "movie with year",
			fileName: "The.Matrix.1999.mkv",
			expected: "/media-server/Movies/The Matrix (1999)/The Matrix (1999).mkv",
		},
		{
			name:     "episode without year",
			fileName: "Show.S01E03.mkv",
			expected: "/media-server/Shows/Show/Season 01/Show S01E03.mkv",
		},
		{
			name:     "episode with release noise",
			fileName: "Show.S01E03.1080p.WEB-DL.x264-GRP.mkv",
			expected: "/media-server/Shows/Show/Season 01/Show S01E03.mkv",
		},
		{
			name:     "episode with year",
			fileName: "Doctor.Who.2005.S02E10.mp4",
			expected: "/media-server/Shows/Doctor Who (2005)/Season 02/Doctor Who S02E10.mp4",
		},
		{
			name:     "season word without episode",
			fileName: "Some Show season 4.mp4",
			expected: "/media-server/Shows/Some Show/Season 04/Some Show S04.mp4",
		},
		{
			name:     "movie without year",
			fileName: "randomname.mp4",
			expected: "/media-server/Movies/randomname/randomname.mp4",
		},
		{
			name:     "movie with quality tag",
			fileName: "Heat.1995.720p.BluRay.mkv",
			expected: "/media-server/Movies/Heat (1995)/Heat (1995).mkv",
		},
		{
			name:     "title only in caption",
			fileName: "S01E03.mkv",
			caption:  "Show",
			expected: "/media-server/Shows/Show/Season 01/Show S01E03.mkv",
		},
		{
			name:     "illegal characters stripped",
			fileName: "What If?.2021.mkv",
			expected: "/media-server/Movies/What If (2021)/What If (2021).mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := mocks.NewTitleLookupMock(t)
			c := NewClassifier(lookup, testRoots(), true, time.Second)

			assert.Equal(t, tt.expected, c.Classify(context.Background(), tt.fileName, tt.caption))
		})
	}
}

func TestClassifier_NonLatinTitleResolvedBySeriesLookup(t *testing.T) {
	lookup := mocks.NewTitleLookupMock(t)
	lookup.EXPECT().SearchSeries(mock.Anything, "הסדרה", 0).Return("The Series", nil).Once()

	c := NewClassifier(lookup, testRoots(), true, time.Second)
	path := c.Classify(context.Background(), "הסדרה עונה 1 פרק 3 720p.mkv", "")

	assert.Equal(t, "/media-server/Shows/The Series/Season 01/The Series S01E03.mkv", path)
}

func TestClassifier_NonLatinMovieKeepsTitleWhenLookupFails(t *testing.T) {
	lookup := mocks.NewTitleLookupMock(t)
	lookup.EXPECT().SearchMovie(mock.Anything, mock.Anything, 2020).Return("", errors.New("connection refused"))

	c := NewClassifier(lookup, testRoots(), true, time.Second)
	path := c.Classify(context.Background(), "סרט טוב.2020.mp4", "")

	assert.Equal(t, "/media-server/Movies/סרט טוב (2020)/סרט טוב (2020).mp4", path)
}

func TestClassifier_LadderCallCount(t *testing.T) {
	tests := []struct {
		title string
		words int
	}{
		{title: "אחד", words: 1},
		{title: "אחד שתיים", words: 2},
		{title: "אחד שתיים שלוש", words: 3},
		{title: "אחד שתיים שלוש ארבע חמש", words: 5},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			lookup := mocks.NewTitleLookupMock(t)
			lookup.EXPECT().SearchMovie(mock.Anything, mock.Anything, 0).Return("", nil)

			c := NewClassifier(lookup, testRoots(), true, time.Second)
			c.Classify(context.Background(), tt.title+".mp4", "")

			fallbackCalls := 2*tt.words - 2
			lookup.AssertNumberOfCalls(t, "SearchMovie", 1+fallbackCalls)
		})
	}
}

func TestClassifier_LadderOrderAndFirstHitWins(t *testing.T) {
	var queries []string
	lookup := mocks.NewTitleLookupMock(t)
	lookup.EXPECT().SearchMovie(mock.Anything, mock.Anything, 0).
		RunAndReturn(func(_ context.Context, title string, _ int) (string, error) {
			queries = append(queries, title)
			if title == "ג ד" {
				return "Found Title", nil
			}
			return "", nil
		})

	c := NewClassifier(lookup, testRoots(), true, time.Second)
	path := c.Classify(context.Background(), "א ב ג ד.mp4", "")

	assert.Equal(t, []string{"א ב ג ד", "ב ג ד", "ג ד"}, queries)
	assert.Equal(t, "/media-server/Movies/Found Title/Found Title.mp4", path)
}

func TestClassifier_LookupTimeoutStopsLadder(t *testing.T) {
	lookup := mocks.NewTitleLookupMock(t)
	lookup.EXPECT().SearchMovie(mock.Anything, mock.Anything, 0).
		RunAndReturn(func(ctx context.Context, _ string, _ int) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}).Once()

	c := NewClassifier(lookup, testRoots(), true, 20*time.Millisecond)
	path := c.Classify(context.Background(), "א ב ג.mp4", "")

	assert.Equal(t, "/media-server/Movies/א ב ג/א ב ג.mp4", path)
}

func TestClassifier_IsTotal(t *testing.T) {
	c := NewClassifier(nil, testRoots(), true, time.Second)

	inputs := []string{"", ".", "....", "???.mkv", "S01E01", "1999", "[GRP] .mkv", "ע", strings.Repeat("א", 300) + ".mp4", "\x00\n.mp4"}
	for _, in := range inputs {
		path := c.Classify(context.Background(), in, "")
		assert.NotEmpty(t, path, "input %q", in)
		assert.True(t, strings.HasPrefix(path, "/media-server/"), "input %q -> %q", in, path)
	}
}

func TestClassifier_NoMarkersNeverLandsInShows(t *testing.T) {
	c := NewClassifier(nil, testRoots(), true, time.Second)

	for _, in := range []string{"holiday.mp4", "The.Matrix.1999.mkv", "family dinner 2023.mov", "clip (1).webm", "a.b.c.d.mp4"} {
		path := c.Classify(context.Background(), in, "")
		assert.False(t, strings.HasPrefix(path, "/media-server/Shows/"), "input %q -> %q", in, path)
	}
}

func TestNormalizeMarkers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "הסדרה עונה 2 פרק 7 720p HDTV", expected: "הסדרה season 2 episode 7"},
		{input: "הסדרה ע3פ5.mkv", expected: "הסדרה season3episode5"},
		{input: "הסדרה עונה 2", expected: "הסדרה season 2"},
		{input: "Foo   Bar  2019", expected: "Foo Bar 2019"},
		{input: "Show season 1 episode 3 [GRP]", expected: "Show season 1 episode 3"},
		{input: "עונות 1", expected: "seasons 1"},
		{input: "פרקים 4", expected: "episodes 4"},
		{input: "מעבר 3", expected: "מעבר 3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeMarkers(tt.input))
		})
	}
}

func TestGuessTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected titleGuess
	}{
		{input: "The.Matrix.1999.mkv", expected: titleGuess{Kind: kindMovie, Title: "The Matrix", Year: 1999}},
		{input: "Show.S01E03.mkv", expected: titleGuess{Kind: kindEpisode, Title: "Show", Season: 1, Episode: 3}},
		{input: "show 2x05", expected: titleGuess{Kind: kindEpisode, Title: "show", Season: 2, Episode: 5}},
		{input: "2001 A Space Odyssey 1968", expected: titleGuess{Kind: kindMovie, Title: "2001 A Space Odyssey", Year: 1968}},
		{input: "Spider-Man (2002).mp4", expected: titleGuess{Kind: kindMovie, Title: "Spider-Man", Year: 2002}},
		{input: "Anime episode 12", expected: titleGuess{Kind: kindEpisode, Title: "Anime", Episode: 12}},
		{input: "S01E01", expected: titleGuess{Kind: kindEpisode, Season: 1, Episode: 1}},
		{input: "", expected: titleGuess{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, guessTitle(tt.input))
		})
	}
}

func TestTitleLadder(t *testing.T) {
	assert.Nil(t, titleLadder("   "))
	assert.Equal(t, []string{"solo"}, titleLadder("solo"))
	assert.Equal(t, []string{
		"a b c d",
		"b c d",
		"c d",
		"d",
		"a b c",
		"a b",
		"a",
	}, titleLadder("a  b c d"))
}

func TestLatinFraction(t *testing.T) {
	assert.InDelta(t, 1.0, latinFraction("The Matrix"), 0.001)
	assert.InDelta(t, 0.0, latinFraction("הסדרה"), 0.001)
	assert.InDelta(t, 0.5, latinFraction("ab 12"), 0.001)
	assert.InDelta(t, 0.0, latinFraction(""), 0.001)
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "What If?", expected: "What If"},
		{input: `A/B\C:D*E"F<G>H|I%`, expected: "ABCDEFGHI"},
		{input: "Mr...Robot", expected: "Mr.Robot"},
		{input: "  spaced  ", expected: "spaced"},
		{input: ".:.", expected: "."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeTitle(tt.input))
		})
	}
}

func TestSanitizeTitle_Idempotent(t *testing.T) {
	inputs := []string{"", "...", ". . .", "a..:..b", " ?x? ", "Mr...Robot", `..\..`, "a. .b", "שלום...עולם", ":.:.:"}
	for _, in := range inputs {
		once := SanitizeTitle(in)
		require.Equal(t, once, SanitizeTitle(once), "input %q", in)
	}
}
