package storage

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var now = func() time.Time { return time.Now().UTC() }

func newRowID() string {
	id, err := gonanoid.New()
	if err != nil {
		// crypto/rand failure; fall back to a time-based id so the write still has a key
		return now().Format("20060102T150405.000000000")
	}
	return id
}
