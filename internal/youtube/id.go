package youtube

import "regexp"

// videoIDPattern matches an 11-character video ID preceded by "v=" or "/".
// Covers watch URLs, youtu.be short links, /embed/ and /shorts/ paths.
var videoIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID pulls the video ID out of a YouTube URL.
// Returns the empty string when the URL contains no recognizable ID;
// callers must check before fetching anything.
func ExtractVideoID(url string) string {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
