package workflow

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/alex-pricope/hackathon-voting/logging"
)

// EmployeeIDLength is the exact length an employee id must have.
const EmployeeIDLength = 9

type PredictionState int

const (
	PredictionNotStarted PredictionState = iota
	PredictionPicking
	PredictionConfirming
	PredictionSubmitted
)

func (s PredictionState) String() string {
	switch s {
	case PredictionNotStarted:
		return "not_started"
	case PredictionPicking:
		return "picking"
	case PredictionConfirming:
		return "confirming"
	case PredictionSubmitted:
		return "submitted"
	}
	return "unknown"
}

type PredictionSubmitter interface {
	SubmitPrediction(ctx context.Context, employeeID, name string, top [3]int) error
}

// PredictionFlags is the device-local "prediction made" marker.
type PredictionFlags interface {
	PredictionMade() bool
	MarkPredictionMade() error
}

// PredictionFlow walks an attendee through picking a ranked top 3 and submitting it once.
type PredictionFlow struct {
	submitter PredictionSubmitter
	flags     PredictionFlags
	state     PredictionState
	picks     []int
	guard     submitGuard
}

func NewPredictionFlow(submitter PredictionSubmitter, flags PredictionFlags) *PredictionFlow {
	f := &PredictionFlow{submitter: submitter, flags: flags}
	if flags != nil && flags.PredictionMade() {
		f.state = PredictionSubmitted
	}
	return f
}

func (f *PredictionFlow) State() PredictionState { return f.state }

// Picks returns the selected team ids in rank order.
func (f *PredictionFlow) Picks() []int {
	return append([]int(nil), f.picks...)
}

// Toggle selects a team as the next rank, or removes it if already selected.
func (f *PredictionFlow) Toggle(teamID int) error {
	if f.state != PredictionNotStarted && f.state != PredictionPicking {
		return ErrNotReady
	}
	f.state = PredictionPicking
	for i, id := range f.picks {
		if id == teamID {
			f.picks = append(f.picks[:i], f.picks[i+1:]...)
			return nil
		}
	}
	if len(f.picks) == 3 {
		return invalid("top", "only 3 teams can be picked")
	}
	f.picks = append(f.picks, teamID)
	return nil
}

// Continue moves to the confirmation step once exactly 3 teams are picked.
func (f *PredictionFlow) Continue() error {
	if f.state != PredictionPicking {
		return ErrNotReady
	}
	if len(f.picks) != 3 {
		return invalid("top", "select %d more", 3-len(f.picks))
	}
	f.state = PredictionConfirming
	return nil
}

// Back returns from confirmation to picking, keeping the picks.
func (f *PredictionFlow) Back() {
	if f.state == PredictionConfirming {
		f.state = PredictionPicking
	}
}

// Submit stores the prediction. On any failure the flow stays in confirmation with its picks intact.
func (f *PredictionFlow) Submit(ctx context.Context, name, employeeID string) error {
	if err := f.guard.acquire(); err != nil {
		return err
	}
	defer f.guard.release()

	if f.state != PredictionConfirming {
		return ErrNotReady
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("name", "is required")
	}
	if utf8.RuneCountInString(employeeID) != EmployeeIDLength {
		return invalid("employeeId", "must be exactly %d characters", EmployeeIDLength)
	}

	top := [3]int{f.picks[0], f.picks[1], f.picks[2]}
	if err := f.submitter.SubmitPrediction(ctx, employeeID, name, top); err != nil {
		return err
	}

	f.state = PredictionSubmitted
	if f.flags != nil {
		if err := f.flags.MarkPredictionMade(); err != nil {
			logging.Log.Warnf("PREDICTION: failed to set local flag: %v", err)
		}
	}
	logging.Log.Infof("PREDICTION: employee %s predicted %v", employeeID, top)
	return nil
}

func (f *PredictionFlow) Submitting() bool { return f.guard.submitting() }
