package usecase

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	digitsPattern  = regexp.MustCompile(`\d+`)
	volumePattern  = regexp.MustCompile(`(?i)(\bVol\.?\s*)(\d+)`)
	episodePattern = regexp.MustCompile(`(?i)(\bEP\.?\s*)(\d+)`)
)

// ExtractEpisodeNumber returns the last run of digits in the file name without
// its extension, or "" when there is none.
func ExtractEpisodeNumber(fileName string) string {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	numbers := digitsPattern.FindAllString(name, -1)
	if len(numbers) == 0 {
		return ""
	}
	return numbers[len(numbers)-1]
}

// ReplaceEpisodeNumber swaps the number in the first "Vol.NNN" marker for n,
// or in the first "EP.NNN" marker when the title has no volume. The marker
// prefix and its spacing are kept.
func ReplaceEpisodeNumber(title, n string) string {
	if n == "" {
		return title
	}
	for _, re := range []*regexp.Regexp{volumePattern, episodePattern} {
		loc := re.FindStringSubmatchIndex(title)
		if loc == nil {
			continue
		}
		// loc[4]:loc[5] is the digit group.
		return title[:loc[4]] + n + title[loc[5]:]
	}
	return title
}

// titleFromFileName is the default title of a freshly added video.
func titleFromFileName(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
