package service

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type mediaKind int

const (
	kindUnknown mediaKind = iota
	kindMovie
	kindEpisode
)

type titleGuess struct {
	Kind    mediaKind
	Title   string
	Year    int
	Season  int
	Episode int
}

func (g titleGuess) resolved() bool {
	return g.Kind != kindUnknown && g.Title != ""
}

// Hebrew season/episode markers, longest first so a short marker never eats
// part of a longer one.
var markerWords = []struct {
	word      string
	canonical string
}{
	{"עונות", "seasons"},
	{"עונת", "season"},
	{"עונה", "season"},
	{"פרקים", "episodes"},
	{"פרק", "episode"},
	{"ע", "season"},
	{"פ", "episode"},
}

var markerPatterns = compileMarkers()

func compileMarkers() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(markerWords))
	for i, m := range markerWords {
		patterns[i] = regexp.MustCompile(`(^|[^\p{L}])` + m.word + `(\s*)(\d+)`)
	}
	return patterns
}

var (
	multiSpace     = regexp.MustCompile(`\s{2,}`)
	seasonWord     = regexp.MustCompile(`(?i)season`)
	episodeWord    = regexp.MustCompile(`(?i)episode`)
	throughEpisode = regexp.MustCompile(`(?i)^(.*?episode\s*\d+)`)

	bracketTag = regexp.MustCompile(`\[[^\]]*\]`)
	separators = regexp.MustCompile(`[._()]+`)

	sxxExx      = regexp.MustCompile(`(?i)\bs(\d{1,2})[\s-]*e(\d{1,3})\b`)
	nxnn        = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{2,3})\b`)
	seasonEp    = regexp.MustCompile(`(?i)\bseason\s*(\d{1,2})(?:[\s,-]*episode\s*(\d{1,3}))?`)
	episodeOnly = regexp.MustCompile(`(?i)\b(?:episode|ep)\s*(\d{1,3})\b`)
	yearToken   = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	releaseTag  = regexp.MustCompile(`(?i)\b(2160p|1080p|720p|576p|480p|4k|uhd|hdr|bluray|blu-ray|brrip|bdrip|webrip|web-dl|webdl|hdtv|dvdrip|x264|x265|h264|h265|hevc|aac|ac3|dts|proper|repack|remux|extended|unrated)\b`)

	videoExt = regexp.MustCompile(`^\.[A-Za-z][A-Za-z0-9]{1,4}$`)
)

// normalizeMarkers rewrites Hebrew season/episode markers to English, collapses
// whitespace, and cuts everything after the episode number when both a season
// and an episode are named.
func normalizeMarkers(text string) string {
	for i, re := range markerPatterns {
		text = re.ReplaceAllString(text, "${1}"+markerWords[i].canonical+"${2}${3}")
	}
	text = strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))

	if seasonWord.MatchString(text) && episodeWord.MatchString(text) {
		if m := throughEpisode.FindStringSubmatch(text); m != nil {
			text = m[1]
		}
	}
	return text
}

// fileExt returns the extension of name when it looks like a real file
// extension rather than a dotted title segment such as ".1999".
func fileExt(name string) string {
	ext := filepath.Ext(name)
	if videoExt.MatchString(ext) {
		return ext
	}
	return ""
}

// guessTitle extracts title, year, season and episode from a release style name.
func guessTitle(name string) titleGuess {
	text := strings.TrimSuffix(name, fileExt(name))
	text = bracketTag.ReplaceAllString(text, " ")
	text = separators.ReplaceAllString(text, " ")
	text = strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))

	var g titleGuess
	cut := len(text)
	mark := func(idx int) {
		if idx < cut {
			cut = idx
		}
	}

	if m := sxxExx.FindStringSubmatchIndex(text); m != nil {
		g.Season = atoi(text[m[2]:m[3]])
		g.Episode = atoi(text[m[4]:m[5]])
		mark(m[0])
	} else if m := nxnn.FindStringSubmatchIndex(text); m != nil {
		g.Season = atoi(text[m[2]:m[3]])
		g.Episode = atoi(text[m[4]:m[5]])
		mark(m[0])
	} else if m := seasonEp.FindStringSubmatchIndex(text); m != nil {
		g.Season = atoi(text[m[2]:m[3]])
		if m[4] >= 0 {
			g.Episode = atoi(text[m[4]:m[5]])
		}
		mark(m[0])
	} else if m := episodeOnly.FindStringSubmatchIndex(text); m != nil {
		g.Episode = atoi(text[m[2]:m[3]])
		mark(m[0])
	}

	for _, m := range yearToken.FindAllStringSubmatchIndex(text, -1) {
		if m[0] == 0 {
			continue
		}
		g.Year = atoi(text[m[2]:m[3]])
		mark(m[0])
		break
	}

	if m := releaseTag.FindStringIndex(text); m != nil {
		mark(m[0])
	}

	g.Title = strings.TrimFunc(text[:cut], func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})

	switch {
	case g.Season > 0 || g.Episode > 0:
		g.Kind = kindEpisode
	case g.Title != "":
		g.Kind = kindMovie
	}
	return g
}

// latinFraction is the share of ASCII letters among non-space runes.
func latinFraction(s string) float64 {
	var latin, total int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			latin++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(latin) / float64(total)
}

// titleLadder lists the lookup candidates for a title: the full title, then
// leading words dropped one at a time, then trailing words dropped one at a time.
func titleLadder(title string) []string {
	words := strings.Fields(title)
	if len(words) == 0 {
		return nil
	}

	candidates := []string{strings.Join(words, " ")}
	for i := 1; i < len(words); i++ {
		candidates = append(candidates, strings.Join(words[i:], " "))
	}
	for i := len(words) - 1; i >= 1; i-- {
		candidates = append(candidates, strings.Join(words[:i], " "))
	}
	return candidates
}

var (
	illegalPathChars = regexp.MustCompile(`[/\\?%*:|"<>\x00-\x1f]`)
	periodRun        = regexp.MustCompile(`\.{2,}`)
)

// SanitizeTitle removes characters that are illegal in paths (control
// characters included) and collapses runs of periods.
func SanitizeTitle(s string) string {
	s = illegalPathChars.ReplaceAllString(s, "")
	s = periodRun.ReplaceAllString(s, ".")
	return strings.TrimSpace(s)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
