package usecase

import (
	"strings"
	"unicode/utf8"

	"yt-uploader/domain/model"
)

// MaxTagsLength is YouTube's limit for the combined tag field.
const MaxTagsLength = 500

// SplitTags parses a comma separated tag string. Tags are trimmed and empty
// entries dropped.
func SplitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags renders tags the way the forms display them.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// TagsLength counts tags the way YouTube does: a tag containing a space is
// quoted, and tags are separated by commas.
func TagsLength(tags []string) int {
	n := 0
	for i, t := range tags {
		if i > 0 {
			n++
		}
		n += utf8.RuneCountInString(t)
		if strings.Contains(t, " ") {
			n += 2
		}
	}
	return n
}

func validateTags(tags []string) error {
	if TagsLength(tags) > MaxTagsLength {
		return model.ErrTagsTooLong
	}
	return nil
}
