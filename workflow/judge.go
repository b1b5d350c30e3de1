package workflow

import (
	"context"
	"strings"

	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
)

const (
	MinRubricScore = 1
	MaxRubricScore = 5
)

type Criterion string

const (
	CriterionFeasibility       Criterion = "feasibility"
	CriterionTechnicalApproach Criterion = "technical_approach"
	CriterionInnovation        Criterion = "innovation"
	CriterionPitchPresentation Criterion = "pitch_presentation"
)

// Criteria lists the rubric in display order.
var Criteria = []Criterion{
	CriterionFeasibility,
	CriterionTechnicalApproach,
	CriterionInnovation,
	CriterionPitchPresentation,
}

// Latch is the per-judge edit state. Final is terminal.
type Latch int

const (
	LatchOpen Latch = iota
	LatchFinal
)

func (l Latch) String() string {
	if l == LatchFinal {
		return "final"
	}
	return "open"
}

type CardState int

const (
	CardUnscored CardState = iota
	CardScoring
	CardScored
)

func (s CardState) String() string {
	switch s {
	case CardUnscored:
		return "unscored"
	case CardScoring:
		return "scoring"
	case CardScored:
		return "scored"
	}
	return "unknown"
}

// Scorecard is the judge's rubric for one team. A zero criterion is unset.
type Scorecard struct {
	TeamID   int
	TeamName string
	Rubric   storage.Rubric
	Comments string
	State    CardState
	// Saved is the last vote stored for this team, nil when never submitted.
	Saved *storage.JudgeVote
}

func (c *Scorecard) value(criterion Criterion) *int {
	switch criterion {
	case CriterionFeasibility:
		return &c.Rubric.Feasibility
	case CriterionTechnicalApproach:
		return &c.Rubric.TechnicalApproach
	case CriterionInnovation:
		return &c.Rubric.Innovation
	case CriterionPitchPresentation:
		return &c.Rubric.PitchPresentation
	}
	return nil
}

// Missing lists the criteria still unset.
func (c *Scorecard) Missing() []Criterion {
	var missing []Criterion
	for _, cr := range Criteria {
		if *c.value(cr) == 0 {
			missing = append(missing, cr)
		}
	}
	return missing
}

type JudgeGateway interface {
	GetJudge(ctx context.Context, judgeID string) (*storage.Judge, error)
	ListTeams(ctx context.Context) ([]*storage.Team, error)
	ListJudgeVotes(ctx context.Context, judgeID string) ([]*storage.JudgeVote, error)
	UpsertJudgeVote(ctx context.Context, judgeID string, teamID int, rubric storage.Rubric, comments string) (*storage.JudgeVote, error)
	SubmitFinal(ctx context.Context, judgeID string) error
}

// JudgeSession holds one judge's scorecards. Scores may be resubmitted any number of times
// until the judge finalizes; after that every edit is refused here, whatever the store would accept.
type JudgeSession struct {
	gateway JudgeGateway
	judgeID string
	judge   *storage.Judge
	latch   Latch
	cards   []*Scorecard
	byTeam  map[int]*Scorecard
	guard   submitGuard
}

func NewJudgeSession(gateway JudgeGateway, judgeID string) *JudgeSession {
	return &JudgeSession{gateway: gateway, judgeID: judgeID}
}

// Load reads the judge, every team and the judge's stored votes.
func (s *JudgeSession) Load(ctx context.Context) error {
	judge, err := s.gateway.GetJudge(ctx, s.judgeID)
	if err != nil {
		return err
	}
	if judge == nil {
		return storage.ErrNotFound
	}
	teams, err := s.gateway.ListTeams(ctx)
	if err != nil {
		return err
	}
	votes, err := s.gateway.ListJudgeVotes(ctx, s.judgeID)
	if err != nil {
		return err
	}

	saved := make(map[int]*storage.JudgeVote, len(votes))
	for _, v := range votes {
		saved[v.TeamID] = v
	}

	s.judge = judge
	s.latch = LatchOpen
	if judge.Submitted {
		s.latch = LatchFinal
	}
	s.cards = make([]*Scorecard, 0, len(teams))
	s.byTeam = make(map[int]*Scorecard, len(teams))
	for _, t := range teams {
		card := &Scorecard{TeamID: t.ID, TeamName: t.Name}
		if v, ok := saved[t.ID]; ok {
			card.Rubric = v.Rubric
			card.Comments = v.Comments
			card.State = CardScored
			card.Saved = v
		}
		s.cards = append(s.cards, card)
		s.byTeam[t.ID] = card
	}
	return nil
}

func (s *JudgeSession) Judge() *storage.Judge { return s.judge }
func (s *JudgeSession) Latch() Latch          { return s.latch }
func (s *JudgeSession) Cards() []*Scorecard   { return s.cards }

func (s *JudgeSession) Card(teamID int) (*Scorecard, error) {
	card, ok := s.byTeam[teamID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return card, nil
}

func (s *JudgeSession) SetScore(teamID int, criterion Criterion, value int) error {
	card, err := s.editable(teamID)
	if err != nil {
		return err
	}
	field := card.value(criterion)
	if field == nil {
		return invalid(string(criterion), "unknown criterion")
	}
	if value < MinRubricScore || value > MaxRubricScore {
		return invalid(string(criterion), "must be between %d and %d", MinRubricScore, MaxRubricScore)
	}
	*field = value
	card.State = CardScoring
	return nil
}

func (s *JudgeSession) SetComments(teamID int, comments string) error {
	card, err := s.editable(teamID)
	if err != nil {
		return err
	}
	card.Comments = strings.TrimSpace(comments)
	card.State = CardScoring
	return nil
}

func (s *JudgeSession) CanSubmitTeam(teamID int) bool {
	card, err := s.editable(teamID)
	return err == nil && len(card.Missing()) == 0 && !s.guard.submitting()
}

// SubmitTeam stores the scorecard, replacing any earlier one for the team.
// On failure the card keeps its values so it can be sent again.
func (s *JudgeSession) SubmitTeam(ctx context.Context, teamID int) error {
	if err := s.guard.acquire(); err != nil {
		return err
	}
	defer s.guard.release()

	card, err := s.editable(teamID)
	if err != nil {
		return err
	}
	if missing := card.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = string(m)
		}
		return invalid("rubric", "missing %s", strings.Join(names, ", "))
	}

	if err := s.refreshLatch(ctx); err != nil {
		return err
	}

	vote, err := s.gateway.UpsertJudgeVote(ctx, s.judgeID, teamID, card.Rubric, card.Comments)
	if err != nil {
		return err
	}
	card.Saved = vote
	card.State = CardScored
	logging.Log.Infof("JUDGE: %s scored team %d with %d", s.judgeID, teamID, vote.TotalScore)
	return nil
}

// Progress counts teams with a stored vote.
func (s *JudgeSession) Progress() (scored, total int) {
	for _, c := range s.cards {
		if c.Saved != nil {
			scored++
		}
	}
	return scored, len(s.cards)
}

// CanFinalize holds once every known team has a stored vote from this judge.
func (s *JudgeSession) CanFinalize() bool {
	scored, total := s.Progress()
	return s.judge != nil && s.latch == LatchOpen && total > 0 && scored == total && !s.guard.submitting()
}

// Finalize sets the judge's submitted latch. It is one-way.
func (s *JudgeSession) Finalize(ctx context.Context) error {
	if err := s.guard.acquire(); err != nil {
		return err
	}
	defer s.guard.release()

	if s.judge == nil {
		return ErrNotReady
	}
	if s.latch == LatchFinal {
		return ErrJudgeFinalized
	}
	if scored, total := s.Progress(); total == 0 || scored < total {
		return invalid("teams", "%d of %d teams scored", scored, total)
	}
	if err := s.refreshLatch(ctx); err != nil {
		return err
	}

	if err := s.gateway.SubmitFinal(ctx, s.judgeID); err != nil {
		return err
	}
	s.latch = LatchFinal
	s.judge.Submitted = true
	logging.Log.Infof("JUDGE: %s finalized scores", s.judgeID)
	return nil
}

// refreshLatch re-reads the judge right before a write. Another session may have finalized
// since Load; once it has, this session turns final too.
func (s *JudgeSession) refreshLatch(ctx context.Context) error {
	judge, err := s.gateway.GetJudge(ctx, s.judgeID)
	if err != nil {
		return err
	}
	if judge == nil {
		return storage.ErrNotFound
	}
	if judge.Submitted {
		s.latch = LatchFinal
		s.judge.Submitted = true
		logging.Log.Warnf("JUDGE: %s was finalized by another session", s.judgeID)
		return ErrJudgeFinalized
	}
	return nil
}

func (s *JudgeSession) editable(teamID int) (*Scorecard, error) {
	if s.judge == nil {
		return nil, ErrNotReady
	}
	if s.latch == LatchFinal {
		return nil, ErrJudgeFinalized
	}
	return s.Card(teamID)
}
