package common

import (
	"errors"
	"strings"

	"github.com/gosimple/slug"
)

const maxSlugLength = 48

var ErrEmptySlug = errors.New("slug cannot be empty")

// Slugify turns a company name into its URL slug, using fallback when the
// name has no usable characters.
func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// SlugWithSuffix appends suffix to slug, trimming slug so the result still
// fits the length limit. Used to resolve collisions on companies.slug.
func SlugWithSuffix(slug, suffix string) string {
	suffix = slugify(suffix)
	if suffix == "" {
		return slug
	}
	room := maxSlugLength - len(suffix) - 1
	if len(slug) > room {
		slug = strings.TrimRight(slug[:room], "-")
	}
	return slug + "-" + suffix
}

// slugify transliterates accents ("São" becomes "sao") so Portuguese names
// keep their letters.
func slugify(s string) string {
	out := slug.Make(strings.TrimSpace(s))
	if len(out) > maxSlugLength {
		out = strings.TrimRight(out[:maxSlugLength], "-_")
	}
	return out
}
