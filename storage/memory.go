package storage

import (
	"context"
	"sync"
)

// In-memory backends with the same constraints as the hosted stores. Used for local runs and tests.

type MemoryTeamStorage struct {
	mu    sync.RWMutex
	teams map[int]Team
}

func NewMemoryTeamStorage(teams ...*Team) *MemoryTeamStorage {
	s := &MemoryTeamStorage{teams: make(map[int]Team)}
	for _, t := range teams {
		s.teams[t.ID] = *t
	}
	return s
}

func (s *MemoryTeamStorage) Get(_ context.Context, id int) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *MemoryTeamStorage) GetAll(_ context.Context) ([]*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]*Team, 0, len(s.teams))
	for _, t := range s.teams {
		t := t
		teams = append(teams, &t)
	}
	sortTeams(teams)
	return teams, nil
}

func (s *MemoryTeamStorage) Create(_ context.Context, team *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[team.ID]; ok {
		return ErrItemAlreadyExists
	}
	s.teams[team.ID] = *team
	return nil
}

func (s *MemoryTeamStorage) Update(_ context.Context, team *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[team.ID]; !ok {
		return ErrNotFound
	}
	s.teams[team.ID] = *team
	return nil
}

func (s *MemoryTeamStorage) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.teams, id)
	return nil
}

type voteKey struct {
	deviceID string
	teamID   int
}

type MemoryVoteStorage struct {
	mu    sync.Mutex
	votes map[voteKey]Vote
	order []voteKey
}

func NewMemoryVoteStorage() *MemoryVoteStorage {
	return &MemoryVoteStorage{votes: make(map[voteKey]Vote)}
}

func (s *MemoryVoteStorage) Create(_ context.Context, vote *Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := voteKey{deviceID: vote.DeviceID, teamID: vote.TeamID}
	if _, ok := s.votes[key]; ok {
		return ErrDuplicateVote
	}
	prepareVote(vote)
	s.votes[key] = *vote
	s.order = append(s.order, key)
	return nil
}

func (s *MemoryVoteStorage) Exists(_ context.Context, teamID int, deviceID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.votes[voteKey{deviceID: deviceID, teamID: teamID}]
	return ok, nil
}

func (s *MemoryVoteStorage) GetAll(_ context.Context) ([]*Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	votes := make([]*Vote, 0, len(s.order))
	for _, key := range s.order {
		v := s.votes[key]
		votes = append(votes, &v)
	}
	return votes, nil
}

type MemoryPredictionStorage struct {
	mu          sync.Mutex
	predictions map[string]Prediction
	order       []string
}

func NewMemoryPredictionStorage() *MemoryPredictionStorage {
	return &MemoryPredictionStorage{predictions: make(map[string]Prediction)}
}

func (s *MemoryPredictionStorage) Create(_ context.Context, prediction *Prediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.predictions[prediction.EmployeeID]; ok {
		return ErrDuplicatePrediction
	}
	preparePrediction(prediction)
	s.predictions[prediction.EmployeeID] = *prediction
	s.order = append(s.order, prediction.EmployeeID)
	return nil
}

func (s *MemoryPredictionStorage) Exists(_ context.Context, employeeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.predictions[employeeID]
	return ok, nil
}

func (s *MemoryPredictionStorage) GetAll(_ context.Context) ([]*Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	predictions := make([]*Prediction, 0, len(s.order))
	for _, id := range s.order {
		p := s.predictions[id]
		predictions = append(predictions, &p)
	}
	sortPredictions(predictions)
	return predictions, nil
}

type MemoryJudgeStorage struct {
	mu     sync.RWMutex
	judges map[string]Judge
}

func NewMemoryJudgeStorage(judges ...*Judge) *MemoryJudgeStorage {
	s := &MemoryJudgeStorage{judges: make(map[string]Judge)}
	for _, j := range judges {
		s.judges[j.ID] = *j
	}
	return s
}

func (s *MemoryJudgeStorage) Get(_ context.Context, id string) (*Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.judges[id]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (s *MemoryJudgeStorage) GetAll(_ context.Context) ([]*Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	judges := make([]*Judge, 0, len(s.judges))
	for _, j := range s.judges {
		j := j
		judges = append(judges, &j)
	}
	// map order is random; settle equal names by id
	sortJudgesByID(judges)
	sortJudges(judges)
	return judges, nil
}

func (s *MemoryJudgeStorage) Create(_ context.Context, judge *Judge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if judge.ID == "" {
		judge.ID = newRowID()
	}
	if _, ok := s.judges[judge.ID]; ok {
		return ErrItemAlreadyExists
	}
	s.judges[judge.ID] = *judge
	return nil
}

func (s *MemoryJudgeStorage) MarkSubmitted(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.judges[id]
	if !ok {
		return ErrNotFound
	}
	j.Submitted = true
	s.judges[id] = j
	return nil
}

type judgeVoteKey struct {
	judgeID string
	teamID  int
}

type MemoryJudgeVoteStorage struct {
	Teams  TeamStorage
	Judges JudgeStorage

	mu    sync.Mutex
	votes map[judgeVoteKey]JudgeVote
	order []judgeVoteKey
}

func NewMemoryJudgeVoteStorage(teams TeamStorage, judges JudgeStorage) *MemoryJudgeVoteStorage {
	return &MemoryJudgeVoteStorage{
		Teams:  teams,
		Judges: judges,
		votes:  make(map[judgeVoteKey]JudgeVote),
	}
}

func (s *MemoryJudgeVoteStorage) Upsert(_ context.Context, vote *JudgeVote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := judgeVoteKey{judgeID: vote.JudgeID, teamID: vote.TeamID}
	if prev, ok := s.votes[key]; ok {
		vote.ID = prev.ID
		vote.CreatedAt = prev.CreatedAt
	} else {
		s.order = append(s.order, key)
	}
	prepareJudgeVote(vote)
	s.votes[key] = *vote
	return nil
}

func (s *MemoryJudgeVoteStorage) GetByJudge(_ context.Context, judgeID string) ([]*JudgeVote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var votes []*JudgeVote
	for _, key := range s.order {
		if key.judgeID != judgeID {
			continue
		}
		v := s.votes[key]
		votes = append(votes, &v)
	}
	sortJudgeVotes(votes)
	return votes, nil
}

func (s *MemoryJudgeVoteStorage) GetAllDetailed(ctx context.Context) ([]*JudgeVoteDetail, error) {
	s.mu.Lock()
	votes := make([]*JudgeVote, 0, len(s.order))
	for _, key := range s.order {
		v := s.votes[key]
		votes = append(votes, &v)
	}
	s.mu.Unlock()

	teams, err := s.Teams.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	judges, err := s.Judges.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return joinJudgeVotes(votes, teams, judges), nil
}
