package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alex-pricope/hackathon-voting/logging"
)

type PostgresTeamStorage struct {
	DB *sql.DB
}

func (s *PostgresTeamStorage) Get(ctx context.Context, id int) (*Team, error) {
	var team Team
	err := s.DB.QueryRowContext(ctx, `SELECT id, name, description FROM teams WHERE id = $1`, id).
		Scan(&team.ID, &team.Name, &team.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("TEAM: failed to get team %d: %v", id, err)
		return nil, unavailable(err, "get team")
	}
	return &team, nil
}

func (s *PostgresTeamStorage) GetAll(ctx context.Context) ([]*Team, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, description FROM teams ORDER BY id`)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to list teams: %v", err)
		return nil, unavailable(err, "list teams")
	}
	defer rows.Close()

	var teams []*Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, unavailable(err, "scan team")
		}
		teams = append(teams, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "list teams")
	}
	return teams, nil
}

func (s *PostgresTeamStorage) Create(ctx context.Context, team *Team) error {
	_, err := s.DB.ExecContext(ctx, `INSERT INTO teams (id, name, description) VALUES ($1, $2, $3)`,
		team.ID, team.Name, team.Description)
	if isUniqueViolation(err) {
		logging.Log.Warnf("TEAM: item with ID %d already exists", team.ID)
		return ErrItemAlreadyExists
	}
	if err != nil {
		logging.Log.Errorf("TEAM: failed to create team: %v", err)
		return unavailable(err, "create team")
	}
	return nil
}

func (s *PostgresTeamStorage) Update(ctx context.Context, team *Team) error {
	res, err := s.DB.ExecContext(ctx, `UPDATE teams SET name = $2, description = $3 WHERE id = $1`,
		team.ID, team.Name, team.Description)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to update team: %v", err)
		return unavailable(err, "update team")
	}
	return requireRow(res)
}

func (s *PostgresTeamStorage) Delete(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		logging.Log.Warnf("TEAM: team %d still has votes, not deleting", id)
		return ErrInUse
	}
	if err != nil {
		logging.Log.Errorf("TEAM: failed to delete team with ID %d: %v", id, err)
		return unavailable(err, "delete team")
	}
	logging.Log.Infof("TEAM: deleted team with ID %d", id)
	return nil
}

type PostgresVoteStorage struct {
	DB *sql.DB
}

func (s *PostgresVoteStorage) Create(ctx context.Context, vote *Vote) error {
	prepareVote(vote)
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO votes (id, device_id, team_id, score, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.DeviceID, vote.TeamID, vote.Score, vote.CreatedAt)
	if isUniqueViolation(err) {
		logging.Log.Warnf("VOTE: device %s already voted for team %d", vote.DeviceID, vote.TeamID)
		return ErrDuplicateVote
	}
	if err != nil {
		logging.Log.Errorf("VOTE: failed to create vote: %v", err)
		return unavailable(err, "create vote")
	}
	return nil
}

func (s *PostgresVoteStorage) Exists(ctx context.Context, teamID int, deviceID string) (bool, error) {
	var id string
	err := s.DB.QueryRowContext(ctx, `SELECT id FROM votes WHERE device_id = $1 AND team_id = $2`,
		deviceID, teamID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logging.Log.Errorf("VOTE: failed to look up vote for team %d: %v", teamID, err)
		return false, unavailable(err, "check vote")
	}
	return true, nil
}

func (s *PostgresVoteStorage) GetAll(ctx context.Context) ([]*Vote, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, device_id, team_id, score, created_at FROM votes ORDER BY team_id, created_at`)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to list votes: %v", err)
		return nil, unavailable(err, "list votes")
	}
	defer rows.Close()

	var votes []*Vote
	for rows.Next() {
		var v Vote
		if err := rows.Scan(&v.ID, &v.DeviceID, &v.TeamID, &v.Score, &v.CreatedAt); err != nil {
			return nil, unavailable(err, "scan vote")
		}
		v.SortKey = teamSortKey(v.TeamID)
		votes = append(votes, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "list votes")
	}
	return votes, nil
}

type PostgresPredictionStorage struct {
	DB *sql.DB
}

func (s *PostgresPredictionStorage) Create(ctx context.Context, p *Prediction) error {
	preparePrediction(p)
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO predictions (id, emp_id, name, top1, top2, top3, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.EmployeeID, p.Name, p.Top1, p.Top2, p.Top3, p.CreatedAt)
	if isUniqueViolation(err) {
		logging.Log.Warnf("PREDICTION: employee %s already submitted", p.EmployeeID)
		return ErrDuplicatePrediction
	}
	if err != nil {
		logging.Log.Errorf("PREDICTION: failed to create prediction: %v", err)
		return unavailable(err, "create prediction")
	}
	return nil
}

func (s *PostgresPredictionStorage) Exists(ctx context.Context, employeeID string) (bool, error) {
	var id string
	err := s.DB.QueryRowContext(ctx, `SELECT id FROM predictions WHERE emp_id = $1`, employeeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logging.Log.Errorf("PREDICTION: failed to look up %s: %v", employeeID, err)
		return false, unavailable(err, "check prediction")
	}
	return true, nil
}

func (s *PostgresPredictionStorage) GetAll(ctx context.Context) ([]*Prediction, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, emp_id, name, top1, top2, top3, created_at
		FROM predictions ORDER BY created_at ASC
	`)
	if err != nil {
		logging.Log.Errorf("PREDICTION: failed to list predictions: %v", err)
		return nil, unavailable(err, "list predictions")
	}
	defer rows.Close()

	var predictions []*Prediction
	for rows.Next() {
		var p Prediction
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Name, &p.Top1, &p.Top2, &p.Top3, &p.CreatedAt); err != nil {
			return nil, unavailable(err, "scan prediction")
		}
		predictions = append(predictions, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "list predictions")
	}
	return predictions, nil
}

type PostgresJudgeStorage struct {
	DB *sql.DB
}

func (s *PostgresJudgeStorage) Get(ctx context.Context, id string) (*Judge, error) {
	var j Judge
	err := s.DB.QueryRowContext(ctx, `SELECT id, name, title, submitted FROM judges WHERE id = $1`, id).
		Scan(&j.ID, &j.Name, &j.Title, &j.Submitted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to get judge %s: %v", id, err)
		return nil, unavailable(err, "get judge")
	}
	return &j, nil
}

func (s *PostgresJudgeStorage) GetAll(ctx context.Context) ([]*Judge, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, title, submitted FROM judges ORDER BY name`)
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to list judges: %v", err)
		return nil, unavailable(err, "list judges")
	}
	defer rows.Close()

	var judges []*Judge
	for rows.Next() {
		var j Judge
		if err := rows.Scan(&j.ID, &j.Name, &j.Title, &j.Submitted); err != nil {
			return nil, unavailable(err, "scan judge")
		}
		judges = append(judges, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "list judges")
	}
	return judges, nil
}

func (s *PostgresJudgeStorage) Create(ctx context.Context, judge *Judge) error {
	if judge.ID == "" {
		judge.ID = newRowID()
	}
	_, err := s.DB.ExecContext(ctx, `INSERT INTO judges (id, name, title, submitted) VALUES ($1, $2, $3, $4)`,
		judge.ID, judge.Name, judge.Title, judge.Submitted)
	if isUniqueViolation(err) {
		return ErrItemAlreadyExists
	}
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to create judge: %v", err)
		return unavailable(err, "create judge")
	}
	return nil
}

func (s *PostgresJudgeStorage) MarkSubmitted(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `UPDATE judges SET submitted = TRUE WHERE id = $1`, id)
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to mark %s submitted: %v", id, err)
		return unavailable(err, "submit judge")
	}
	if err := requireRow(res); err != nil {
		return err
	}
	logging.Log.Infof("JUDGE: %s submitted final scores", id)
	return nil
}

type PostgresJudgeVoteStorage struct {
	DB *sql.DB
}

func (s *PostgresJudgeVoteStorage) Upsert(ctx context.Context, vote *JudgeVote) error {
	prepareJudgeVote(vote)
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO judge_votes (id, judge_id, team_id, feasibility, technical_approach, innovation,
			pitch_presentation, comments, total_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		ON CONFLICT (judge_id, team_id) DO UPDATE SET
			feasibility = EXCLUDED.feasibility,
			technical_approach = EXCLUDED.technical_approach,
			innovation = EXCLUDED.innovation,
			pitch_presentation = EXCLUDED.pitch_presentation,
			comments = EXCLUDED.comments,
			total_score = EXCLUDED.total_score,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`, vote.ID, vote.JudgeID, vote.TeamID, vote.Feasibility, vote.TechnicalApproach, vote.Innovation,
		vote.PitchPresentation, vote.Comments, vote.TotalScore, vote.UpdatedAt).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to upsert vote of %s for team %d: %v", vote.JudgeID, vote.TeamID, err)
		return unavailable(err, "upsert judge vote")
	}
	return nil
}

const judgeVoteColumns = `v.id, v.judge_id, v.team_id, v.feasibility, v.technical_approach, v.innovation,
	v.pitch_presentation, v.comments, v.total_score, v.created_at, v.updated_at`

func scanJudgeVote(scan func(dest ...any) error, v *JudgeVote, extra ...any) error {
	dest := []any{&v.ID, &v.JudgeID, &v.TeamID, &v.Feasibility, &v.TechnicalApproach, &v.Innovation,
		&v.PitchPresentation, &v.Comments, &v.TotalScore, &v.CreatedAt, &v.UpdatedAt}
	if err := scan(append(dest, extra...)...); err != nil {
		return err
	}
	v.SortKey = teamSortKey(v.TeamID)
	return nil
}

func (s *PostgresJudgeVoteStorage) GetByJudge(ctx context.Context, judgeID string) ([]*JudgeVote, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+judgeVoteColumns+` FROM judge_votes v WHERE v.judge_id = $1 ORDER BY v.team_id`, judgeID)
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to query votes of %s: %v", judgeID, err)
		return nil, unavailable(err, "list judge votes")
	}
	defer rows.Close()

	var votes []*JudgeVote
	for rows.Next() {
		var v JudgeVote
		if err := scanJudgeVote(rows.Scan, &v); err != nil {
			return nil, unavailable(err, "scan judge vote")
		}
		votes = append(votes, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "list judge votes")
	}
	return votes, nil
}

func (s *PostgresJudgeVoteStorage) GetAllDetailed(ctx context.Context) ([]*JudgeVoteDetail, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+judgeVoteColumns+`, t.name, t.description, COALESCE(j.name, '')
		FROM judge_votes v
		INNER JOIN teams t ON t.id = v.team_id
		LEFT JOIN judges j ON j.id = v.judge_id
		ORDER BY v.created_at
	`)
	if err != nil {
		logging.Log.Errorf("RESULTS: failed to query judge votes: %v", err)
		return nil, unavailable(err, "list judge votes")
	}
	defer rows.Close()

	var details []*JudgeVoteDetail
	for rows.Next() {
		var d JudgeVoteDetail
		if err := scanJudgeVote(rows.Scan, &d.JudgeVote, &d.TeamName, &d.TeamDescription, &d.JudgeName); err != nil {
			return nil, unavailable(err, "scan judge vote")
		}
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "list judge votes")
	}
	return details, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable(err, "rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
