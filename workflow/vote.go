package workflow

import (
	"context"
	"errors"

	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
)

const (
	MinVoteScore = 1
	MaxVoteScore = 10
)

type VoteState int

const (
	VoteCheckingStatus VoteState = iota
	VoteRateable
	VoteAlreadyVoted
)

func (s VoteState) String() string {
	switch s {
	case VoteCheckingStatus:
		return "checking"
	case VoteRateable:
		return "rateable"
	case VoteAlreadyVoted:
		return "already_voted"
	}
	return "unknown"
}

type VoteGateway interface {
	HasVoted(ctx context.Context, teamID int, deviceID string) (bool, error)
	SubmitVote(ctx context.Context, teamID, score int, deviceID string) error
}

// VoteCache is the device-local list of voted teams. It is consulted only when the store cannot be reached.
type VoteCache interface {
	HasVotedLocally(teamID int) bool
	MarkVoted(teamID int) error
}

// TeamVoteFlow rates a single team from a single device.
type TeamVoteFlow struct {
	gateway  VoteGateway
	cache    VoteCache
	teamID   int
	deviceID string
	state    VoteState
	score    int
	guard    submitGuard
}

func NewTeamVoteFlow(gateway VoteGateway, cache VoteCache, teamID int, deviceID string) *TeamVoteFlow {
	return &TeamVoteFlow{
		gateway:  gateway,
		cache:    cache,
		teamID:   teamID,
		deviceID: deviceID,
	}
}

func (f *TeamVoteFlow) State() VoteState { return f.state }
func (f *TeamVoteFlow) Score() int       { return f.score }
func (f *TeamVoteFlow) TeamID() int      { return f.teamID }

// Check asks the store whether this device already rated the team.
func (f *TeamVoteFlow) Check(ctx context.Context) (VoteState, error) {
	voted, err := f.gateway.HasVoted(ctx, f.teamID, f.deviceID)
	if err != nil {
		if f.cache != nil && f.cache.HasVotedLocally(f.teamID) {
			logging.Log.Warnf("VOTE: store check failed for team %d, using local cache: %v", f.teamID, err)
			f.state = VoteAlreadyVoted
			return f.state, nil
		}
		return f.state, err
	}
	if voted {
		f.markVoted()
	} else {
		f.state = VoteRateable
	}
	return f.state, nil
}

// SetScore picks a score; 0 clears the selection.
func (f *TeamVoteFlow) SetScore(score int) error {
	if f.state != VoteRateable {
		return f.notRateable()
	}
	if score != 0 && (score < MinVoteScore || score > MaxVoteScore) {
		return invalid("score", "must be between %d and %d", MinVoteScore, MaxVoteScore)
	}
	f.score = score
	return nil
}

func (f *TeamVoteFlow) CanSubmit() bool {
	return f.state == VoteRateable && f.score > 0 && !f.guard.submitting()
}

// Submit stores the vote. A duplicate means another tab or device sharing this id got there first,
// which leaves the team voted just the same.
func (f *TeamVoteFlow) Submit(ctx context.Context) error {
	if err := f.guard.acquire(); err != nil {
		return err
	}
	defer f.guard.release()

	if f.state != VoteRateable {
		return f.notRateable()
	}
	if f.score == 0 {
		return invalid("score", "pick a score first")
	}

	err := f.gateway.SubmitVote(ctx, f.teamID, f.score, f.deviceID)
	switch {
	case err == nil:
		logging.Log.Infof("VOTE: team %d rated %d", f.teamID, f.score)
	case errors.Is(err, storage.ErrDuplicateVote):
		logging.Log.Infof("VOTE: team %d already rated by this device", f.teamID)
	default:
		return err
	}
	f.markVoted()
	return nil
}

func (f *TeamVoteFlow) markVoted() {
	f.state = VoteAlreadyVoted
	if f.cache == nil {
		return
	}
	if err := f.cache.MarkVoted(f.teamID); err != nil {
		logging.Log.Warnf("VOTE: failed to cache vote for team %d: %v", f.teamID, err)
	}
}

func (f *TeamVoteFlow) notRateable() error {
	if f.state == VoteAlreadyVoted {
		return ErrAlreadyVoted
	}
	return ErrNotReady
}
