package storage

import "github.com/pkg/errors"

var (
	ErrNotFound            = errors.New("item not found in storage")
	ErrItemAlreadyExists   = errors.New("item already exists")
	ErrDuplicateVote       = errors.New("you already voted for this team")
	ErrDuplicatePrediction = errors.New("this employee id already submitted a prediction")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrInUse               = errors.New("item is still referenced by votes")
)

// unavailable tags a backend failure so callers can match it with errors.Is(err, ErrStoreUnavailable).
func unavailable(err error, op string) error {
	return errors.WithMessagef(ErrStoreUnavailable, "%s: %v", op, err)
}
