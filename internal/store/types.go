package store

import (
	"time"

	"github.com/blackwell-systems/brewdiff/internal/manifest"
)

// Item kinds persisted in intent_items.
const (
	kindTap  = "tap"
	kindBrew = "brew"
	kindCask = "cask"
	kindMas  = "mas"
)

// IntentRecord is a persisted snapshot of the intent that was applied to
// this host, with the profile it came from.
type IntentRecord struct {
	ID         int64
	RecordedAt time.Time
	Profile    string
	Intent     *manifest.Intent
}
