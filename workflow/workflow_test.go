package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alex-pricope/hackathon-voting/identity"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOffline = errors.New("connection refused")

// flakyGateway fails every call while down is set.
type flakyGateway struct {
	*storage.Gateway
	down bool
}

func (g *flakyGateway) fail(op string) error {
	if g.down {
		return errors.Join(storage.ErrStoreUnavailable, errors.New(op), errOffline)
	}
	return nil
}

func (g *flakyGateway) HasVoted(ctx context.Context, teamID int, deviceID string) (bool, error) {
	if err := g.fail("has voted"); err != nil {
		return false, err
	}
	return g.Gateway.HasVoted(ctx, teamID, deviceID)
}

func (g *flakyGateway) SubmitVote(ctx context.Context, teamID, score int, deviceID string) error {
	if err := g.fail("submit vote"); err != nil {
		return err
	}
	return g.Gateway.SubmitVote(ctx, teamID, score, deviceID)
}

func (g *flakyGateway) SubmitPrediction(ctx context.Context, employeeID, name string, top [3]int) error {
	if err := g.fail("submit prediction"); err != nil {
		return err
	}
	return g.Gateway.SubmitPrediction(ctx, employeeID, name, top)
}

func (g *flakyGateway) UpsertJudgeVote(ctx context.Context, judgeID string, teamID int, rubric storage.Rubric, comments string) (*storage.JudgeVote, error) {
	if err := g.fail("upsert judge vote"); err != nil {
		return nil, err
	}
	return g.Gateway.UpsertJudgeVote(ctx, judgeID, teamID, rubric, comments)
}

func newGateway() *flakyGateway {
	return &flakyGateway{Gateway: storage.NewMemoryGateway(
		[]*storage.Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}},
		[]*storage.Judge{{ID: "J", Name: "Judy", Title: "CTO"}},
	)}
}

func pickAll(t *testing.T, f *PredictionFlow, teams ...int) {
	t.Helper()
	for _, id := range teams {
		require.NoError(t, f.Toggle(id))
	}
	require.NoError(t, f.Continue())
}

func TestPredictionFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path - pick, confirm, submit", func(t *testing.T) {
		gw := newGateway()
		device := identity.New(identity.NewMemoryStore())
		f := NewPredictionFlow(gw, device)
		assert.Equal(t, PredictionNotStarted, f.State())

		pickAll(t, f, 1, 2, 3)
		assert.Equal(t, PredictionConfirming, f.State())
		assert.Equal(t, []int{1, 2, 3}, f.Picks())

		require.NoError(t, f.Submit(ctx, "Ada", "EMP123456"))
		assert.Equal(t, PredictionSubmitted, f.State())
		assert.True(t, device.PredictionMade(), "Local flag should be set")

		assert.True(t, NewPredictionFlow(gw, device).State() == PredictionSubmitted, "Device should not see the flow again")
	})

	t.Run("Toggle removes and caps at three", func(t *testing.T) {
		f := NewPredictionFlow(newGateway(), nil)
		require.NoError(t, f.Toggle(1))
		require.NoError(t, f.Toggle(2))
		require.NoError(t, f.Toggle(1))
		assert.Equal(t, []int{2}, f.Picks())

		var verr *ValidationError
		assert.ErrorAs(t, f.Continue(), &verr, "Needs three picks")

		require.NoError(t, f.Toggle(3))
		require.NoError(t, f.Toggle(1))
		assert.ErrorAs(t, f.Toggle(4), &verr)
		assert.Equal(t, []int{2, 3, 1}, f.Picks(), "Order is the rank")
	})

	t.Run("Validation before the store", func(t *testing.T) {
		gw := newGateway()
		f := NewPredictionFlow(gw, nil)
		pickAll(t, f, 1, 2, 3)

		var verr *ValidationError
		assert.ErrorAs(t, f.Submit(ctx, "  ", "EMP123456"), &verr)
		assert.Equal(t, "name", verr.Field)
		assert.ErrorAs(t, f.Submit(ctx, "Ada", "EMP12345"), &verr)
		assert.Equal(t, "employeeId", verr.Field)
		assert.ErrorAs(t, f.Submit(ctx, "Ada", "EMP1234567"), &verr)

		all, err := gw.ListPredictions(ctx)
		require.NoError(t, err)
		assert.Empty(t, all, "Nothing should reach the store")
		assert.Equal(t, PredictionConfirming, f.State())
	})

	t.Run("Duplicate employee id stays in confirmation", func(t *testing.T) {
		gw := newGateway()
		first := NewPredictionFlow(gw, nil)
		pickAll(t, first, 1, 2, 3)
		require.NoError(t, first.Submit(ctx, "Ada", "EMP123456"))

		second := NewPredictionFlow(gw, nil)
		pickAll(t, second, 3, 1, 2)
		err := second.Submit(ctx, "Bob", "EMP123456")
		assert.ErrorIs(t, err, storage.ErrDuplicatePrediction)
		assert.Equal(t, PredictionConfirming, second.State())
		assert.Equal(t, []int{3, 1, 2}, second.Picks())

		require.NoError(t, second.Submit(ctx, "Bob", "EMP654321"), "A corrected id goes through")
	})

	t.Run("Store failure keeps the selection", func(t *testing.T) {
		gw := newGateway()
		gw.down = true
		f := NewPredictionFlow(gw, nil)
		pickAll(t, f, 2, 3, 1)

		assert.ErrorIs(t, f.Submit(ctx, "Ada", "EMP123456"), storage.ErrStoreUnavailable)
		assert.Equal(t, PredictionConfirming, f.State())

		gw.down = false
		require.NoError(t, f.Submit(ctx, "Ada", "EMP123456"))
	})

	t.Run("Submit outside confirmation", func(t *testing.T) {
		f := NewPredictionFlow(newGateway(), nil)
		assert.ErrorIs(t, f.Submit(ctx, "Ada", "EMP123456"), ErrNotReady)
	})
}

func TestTeamVoteFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path - rate then locked", func(t *testing.T) {
		gw := newGateway()
		device := identity.New(identity.NewMemoryStore())
		f := NewTeamVoteFlow(gw, device, 2, "x")

		state, err := f.Check(ctx)
		require.NoError(t, err)
		assert.Equal(t, VoteRateable, state)
		assert.False(t, f.CanSubmit(), "Score 0 cannot be submitted")

		require.NoError(t, f.SetScore(7))
		assert.True(t, f.CanSubmit())
		require.NoError(t, f.Submit(ctx))
		assert.Equal(t, VoteAlreadyVoted, f.State())
		assert.True(t, device.HasVotedLocally(2))

		again := NewTeamVoteFlow(gw, device, 2, "x")
		state, err = again.Check(ctx)
		require.NoError(t, err)
		assert.Equal(t, VoteAlreadyVoted, state)
		assert.ErrorIs(t, again.SetScore(3), ErrAlreadyVoted)
		assert.ErrorIs(t, again.Submit(ctx), ErrAlreadyVoted)
	})

	t.Run("Score range", func(t *testing.T) {
		f := NewTeamVoteFlow(newGateway(), nil, 1, "x")
		_, err := f.Check(ctx)
		require.NoError(t, err)

		var verr *ValidationError
		assert.ErrorAs(t, f.SetScore(11), &verr)
		assert.ErrorAs(t, f.SetScore(-1), &verr)
		assert.ErrorAs(t, f.Submit(ctx), &verr, "Nothing picked yet")
		assert.NoError(t, f.SetScore(10))
		assert.NoError(t, f.SetScore(0))
		assert.Equal(t, 0, f.Score())
	})

	t.Run("Duplicate is treated as voted", func(t *testing.T) {
		gw := newGateway()
		a := NewTeamVoteFlow(gw, nil, 2, "x")
		b := NewTeamVoteFlow(gw, nil, 2, "x")
		for _, f := range []*TeamVoteFlow{a, b} {
			_, err := f.Check(ctx)
			require.NoError(t, err)
			require.NoError(t, f.SetScore(7))
		}

		require.NoError(t, a.Submit(ctx))
		require.NoError(t, b.Submit(ctx), "The losing tab sees the team as voted")
		assert.Equal(t, VoteAlreadyVoted, b.State())

		votes, err := gw.ListVotes(ctx)
		require.NoError(t, err)
		assert.Len(t, votes, 1)
	})

	t.Run("Store failure keeps the score", func(t *testing.T) {
		gw := newGateway()
		f := NewTeamVoteFlow(gw, nil, 1, "x")
		_, err := f.Check(ctx)
		require.NoError(t, err)
		require.NoError(t, f.SetScore(6))

		gw.down = true
		assert.ErrorIs(t, f.Submit(ctx), storage.ErrStoreUnavailable)
		assert.Equal(t, VoteRateable, f.State())
		assert.Equal(t, 6, f.Score())

		gw.down = false
		require.NoError(t, f.Submit(ctx))
	})

	t.Run("Check falls back to the local cache", func(t *testing.T) {
		gw := newGateway()
		gw.down = true
		device := identity.New(identity.NewMemoryStore())

		_, err := NewTeamVoteFlow(gw, device, 1, "x").Check(ctx)
		assert.ErrorIs(t, err, storage.ErrStoreUnavailable, "No cache entry, error surfaces")

		require.NoError(t, device.MarkVoted(1))
		state, err := NewTeamVoteFlow(gw, device, 1, "x").Check(ctx)
		require.NoError(t, err)
		assert.Equal(t, VoteAlreadyVoted, state)
	})
}

// blockingGateway holds SubmitVote until released.
type blockingGateway struct {
	*storage.Gateway
	entered chan struct{}
	release chan struct{}
}

func (g *blockingGateway) SubmitVote(ctx context.Context, teamID, score int, deviceID string) error {
	close(g.entered)
	<-g.release
	return g.Gateway.SubmitVote(ctx, teamID, score, deviceID)
}

func TestSubmitGuard(t *testing.T) {
	ctx := context.Background()
	gw := &blockingGateway{
		Gateway: newGateway().Gateway,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	f := NewTeamVoteFlow(gw, nil, 1, "x")
	_, err := f.Check(ctx)
	require.NoError(t, err)
	require.NoError(t, f.SetScore(5))

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = f.Submit(ctx)
	}()

	<-gw.entered
	assert.ErrorIs(t, f.Submit(ctx), ErrSubmitInProgress)
	close(gw.release)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.Equal(t, VoteAlreadyVoted, f.State())
}

func scoreAll(t *testing.T, s *JudgeSession, teamID int, values [4]int) {
	t.Helper()
	for i, c := range Criteria {
		require.NoError(t, s.SetScore(teamID, c, values[i]))
	}
}

func TestJudgeSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path - score every team then finalize", func(t *testing.T) {
		gw := newGateway()
		s := NewJudgeSession(gw, "J")
		require.NoError(t, s.Load(ctx))
		assert.Equal(t, LatchOpen, s.Latch())
		require.Len(t, s.Cards(), 3)

		for _, id := range []int{1, 2, 3} {
			assert.False(t, s.CanFinalize())
			scoreAll(t, s, id, [4]int{id, id, id, id})
			require.True(t, s.CanSubmitTeam(id))
			require.NoError(t, s.SubmitTeam(ctx, id))
		}
		card, err := s.Card(3)
		require.NoError(t, err)
		assert.Equal(t, CardScored, card.State)
		assert.Equal(t, 12, card.Saved.TotalScore)

		require.True(t, s.CanFinalize())
		require.NoError(t, s.Finalize(ctx))
		assert.Equal(t, LatchFinal, s.Latch())

		j, err := gw.GetJudge(ctx, "J")
		require.NoError(t, err)
		assert.True(t, j.Submitted)
	})

	t.Run("Incomplete rubric is refused", func(t *testing.T) {
		gw := newGateway()
		s := NewJudgeSession(gw, "J")
		require.NoError(t, s.Load(ctx))

		require.NoError(t, s.SetScore(1, CriterionFeasibility, 4))
		require.NoError(t, s.SetScore(1, CriterionInnovation, 4))
		assert.False(t, s.CanSubmitTeam(1))

		var verr *ValidationError
		require.ErrorAs(t, s.SubmitTeam(ctx, 1), &verr)
		assert.Contains(t, verr.Reason, "technical_approach")
		assert.Contains(t, verr.Reason, "pitch_presentation")

		assert.ErrorAs(t, s.SetScore(1, CriterionPitchPresentation, 6), &verr)
		assert.ErrorAs(t, s.SetScore(1, Criterion("overall_impression"), 3), &verr)

		votes, err := gw.ListJudgeVotes(ctx, "J")
		require.NoError(t, err)
		assert.Empty(t, votes)
	})

	t.Run("Resubmission overwrites while open", func(t *testing.T) {
		gw := newGateway()
		s := NewJudgeSession(gw, "J")
		require.NoError(t, s.Load(ctx))

		scoreAll(t, s, 1, [4]int{1, 1, 1, 1})
		require.NoError(t, s.SubmitTeam(ctx, 1))
		require.NoError(t, s.SetScore(1, CriterionInnovation, 5))
		card, _ := s.Card(1)
		assert.Equal(t, CardScoring, card.State)
		require.NoError(t, s.SetComments(1, " solid demo "))
		require.NoError(t, s.SubmitTeam(ctx, 1))

		votes, err := gw.ListJudgeVotes(ctx, "J")
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.Equal(t, 8, votes[0].TotalScore)
		assert.Equal(t, "solid demo", votes[0].Comments)

		reloaded := NewJudgeSession(gw, "J")
		require.NoError(t, reloaded.Load(ctx))
		card, _ = reloaded.Card(1)
		assert.Equal(t, CardScored, card.State)
		assert.Equal(t, 5, card.Rubric.Innovation)
	})

	t.Run("Finalized judge is read-only even though the store allows writes", func(t *testing.T) {
		gw := newGateway()
		s := NewJudgeSession(gw, "J")
		require.NoError(t, s.Load(ctx))
		for _, id := range []int{1, 2, 3} {
			scoreAll(t, s, id, [4]int{3, 3, 3, 3})
			require.NoError(t, s.SubmitTeam(ctx, id))
		}
		require.NoError(t, s.Finalize(ctx))

		assert.ErrorIs(t, s.SetScore(1, CriterionFeasibility, 5), ErrJudgeFinalized)
		assert.ErrorIs(t, s.SubmitTeam(ctx, 1), ErrJudgeFinalized)
		assert.ErrorIs(t, s.Finalize(ctx), ErrJudgeFinalized)

		fresh := NewJudgeSession(gw, "J")
		require.NoError(t, fresh.Load(ctx))
		assert.Equal(t, LatchFinal, fresh.Latch())
		assert.ErrorIs(t, fresh.SetComments(2, "late"), ErrJudgeFinalized)
		assert.False(t, fresh.CanSubmitTeam(2))
		assert.False(t, fresh.CanFinalize())

		_, err := gw.UpsertJudgeVote(ctx, "J", 1, storage.Rubric{Feasibility: 5, TechnicalApproach: 5, Innovation: 5, PitchPresentation: 5}, "")
		assert.NoError(t, err, "The gateway itself does not enforce the latch")
	})

	t.Run("Session loaded before another one finalized cannot write", func(t *testing.T) {
		gw := newGateway()
		first := NewJudgeSession(gw, "J")
		stale := NewJudgeSession(gw, "J")
		require.NoError(t, first.Load(ctx))
		require.NoError(t, stale.Load(ctx))

		for _, id := range []int{1, 2, 3} {
			scoreAll(t, first, id, [4]int{5, 5, 5, 5})
			require.NoError(t, first.SubmitTeam(ctx, id))
		}
		require.NoError(t, first.Finalize(ctx))

		assert.Equal(t, LatchOpen, stale.Latch())
		scoreAll(t, stale, 1, [4]int{1, 1, 1, 1})
		assert.ErrorIs(t, stale.SubmitTeam(ctx, 1), ErrJudgeFinalized)
		assert.Equal(t, LatchFinal, stale.Latch())
		assert.ErrorIs(t, stale.SetScore(2, CriterionFeasibility, 1), ErrJudgeFinalized)

		votes, err := gw.ListJudgeVotes(ctx, "J")
		require.NoError(t, err)
		require.Len(t, votes, 3)
		for _, v := range votes {
			assert.Equal(t, 20, v.TotalScore)
		}
	})

	t.Run("Finalize twice from two sessions", func(t *testing.T) {
		gw := newGateway()
		a := NewJudgeSession(gw, "J")
		require.NoError(t, a.Load(ctx))
		for _, id := range []int{1, 2, 3} {
			scoreAll(t, a, id, [4]int{2, 2, 2, 2})
			require.NoError(t, a.SubmitTeam(ctx, id))
		}
		b := NewJudgeSession(gw, "J")
		require.NoError(t, b.Load(ctx))

		require.NoError(t, a.Finalize(ctx))
		assert.ErrorIs(t, b.Finalize(ctx), ErrJudgeFinalized)
		assert.Equal(t, LatchFinal, b.Latch())
	})

	t.Run("Finalize needs every team", func(t *testing.T) {
		s := NewJudgeSession(newGateway(), "J")
		require.NoError(t, s.Load(ctx))
		scoreAll(t, s, 1, [4]int{2, 2, 2, 2})
		require.NoError(t, s.SubmitTeam(ctx, 1))

		var verr *ValidationError
		assert.ErrorAs(t, s.Finalize(ctx), &verr)
		assert.Equal(t, LatchOpen, s.Latch())
	})

	t.Run("Store failure keeps the card", func(t *testing.T) {
		gw := newGateway()
		s := NewJudgeSession(gw, "J")
		require.NoError(t, s.Load(ctx))
		scoreAll(t, s, 2, [4]int{4, 4, 4, 4})

		gw.down = true
		assert.ErrorIs(t, s.SubmitTeam(ctx, 2), storage.ErrStoreUnavailable)
		card, _ := s.Card(2)
		assert.Equal(t, CardScoring, card.State)
		assert.Nil(t, card.Saved)
		assert.Equal(t, 4, card.Rubric.Feasibility)
	})

	t.Run("Unknown judge and team", func(t *testing.T) {
		gw := newGateway()
		assert.ErrorIs(t, NewJudgeSession(gw, "nobody").Load(ctx), storage.ErrNotFound)

		s := NewJudgeSession(gw, "J")
		assert.ErrorIs(t, s.SetScore(1, CriterionFeasibility, 3), ErrNotReady, "Load first")
		require.NoError(t, s.Load(ctx))
		assert.ErrorIs(t, s.SetScore(42, CriterionFeasibility, 3), storage.ErrNotFound)
	})
}
