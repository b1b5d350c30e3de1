// Package identity keeps the per-browser state that stands in for a user account:
// an opaque device identifier plus a few flags the voting flows consult.
//
// Device identifiers are spoofable and are lost when the browser drops its storage.
// Votes tied to a lost identifier stay in the store but can no longer be matched to the device.
package identity

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

const (
	KeyDeviceID       = "hackathon-device-id"
	KeyPredictionMade = "hackathon-prediction"
	KeyVotedTeams     = "hackathon-votes"
	KeySelectedJudge  = "hackathon-selected-judge"
	KeyRole           = "hackathon-role"
)

// Store is a persistent key/value mechanism scoped to one browser or device.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

type Role string

const (
	RoleVisitor Role = "visitor"
	RoleJudge   Role = "judge"
)

// SelectedJudge is the judge profile picked on this device.
type SelectedJudge struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type Device struct {
	store Store
	newID func() string
}

func New(store Store) *Device {
	return &Device{store: store, newID: uuid.NewString}
}

// ID returns the device identifier, generating and persisting one on first use.
func (d *Device) ID() (string, error) {
	if id, ok := d.store.Get(KeyDeviceID); ok && id != "" {
		return id, nil
	}
	id := d.newID()
	if err := d.store.Set(KeyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}

func (d *Device) PredictionMade() bool {
	v, _ := d.store.Get(KeyPredictionMade)
	return v == "true"
}

func (d *Device) MarkPredictionMade() error {
	return d.store.Set(KeyPredictionMade, "true")
}

// VotedTeams is a local cache of teams voted from this device. The store stays authoritative.
func (d *Device) VotedTeams() []int {
	raw, ok := d.store.Get(KeyVotedTeams)
	if !ok {
		return nil
	}
	var teams []int
	if err := json.Unmarshal([]byte(raw), &teams); err != nil {
		return nil
	}
	return teams
}

func (d *Device) HasVotedLocally(teamID int) bool {
	for _, id := range d.VotedTeams() {
		if id == teamID {
			return true
		}
	}
	return false
}

func (d *Device) MarkVoted(teamID int) error {
	if d.HasVotedLocally(teamID) {
		return nil
	}
	teams := append(d.VotedTeams(), teamID)
	sort.Ints(teams)
	raw, err := json.Marshal(teams)
	if err != nil {
		return err
	}
	return d.store.Set(KeyVotedTeams, string(raw))
}

func (d *Device) SelectedJudge() *SelectedJudge {
	raw, ok := d.store.Get(KeySelectedJudge)
	if !ok {
		return nil
	}
	var j SelectedJudge
	if err := json.Unmarshal([]byte(raw), &j); err != nil || j.ID == "" {
		return nil
	}
	return &j
}

func (d *Device) SelectJudge(j SelectedJudge) error {
	raw, err := json.Marshal(j)
	if err != nil {
		return err
	}
	return d.store.Set(KeySelectedJudge, string(raw))
}

func (d *Device) ClearJudge() error {
	return d.store.Delete(KeySelectedJudge)
}

func (d *Device) Role() Role {
	if v, _ := d.store.Get(KeyRole); Role(v) == RoleJudge {
		return RoleJudge
	}
	return RoleVisitor
}

func (d *Device) SetRole(r Role) error {
	return d.store.Set(KeyRole, string(r))
}
