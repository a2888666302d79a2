package twittertext

import "github.com/riverfjs/twittertext-go/internal/types"

// EntityType represents the kind of an extracted entity.
type EntityType = types.EntityType

const (
	// URL is a link, with or without protocol.
	URL = types.URL
	// Mention is an @username or @username/list reference.
	Mention = types.Mention
	// Hashtag is a #hashtag reference.
	Hashtag = types.Hashtag
	// Cashtag is a $cashtag reference.
	Cashtag = types.Cashtag
)

// ParseEntityType parses "url", "mention", "hashtag" or "cashtag".
func ParseEntityType(s string) (EntityType, error) {
	return types.ParseEntityType(s)
}
