// Package triage turns a body-region selection into a confirmed injury choice.
//
// The wizard is a closed set of states with a pure Transition function; Controller
// adds the catalog lookup and activation calls around it.
package triage

import (
	"github.com/limbo/rehab/pkg/entity"
)

type Step string

const (
	StepNone        Step = ""
	StepSymptom     Step = "SYMPTOM"
	StepRedFlags    Step = "RED_FLAGS"
	StepMedicalCard Step = "MEDICAL_CARD"
)

// State is one of Idle, Symptom, RedFlags or MedicalCard.
type State interface {
	Step() Step
	isState()
}

// Idle means no selection. Referral is set when the athlete reported red-flag symptoms
// and must seek external care instead of starting a protocol.
type Idle struct {
	Referral *entity.InjuryCatalogEntry
}

type Symptom struct {
	Region     string
	Candidates []entity.InjuryCatalogEntry
}

type RedFlags struct {
	Region     string
	Candidates []entity.InjuryCatalogEntry
	Selected   entity.InjuryCatalogEntry
}

type MedicalCard struct {
	Region     string
	Candidates []entity.InjuryCatalogEntry
	Selected   entity.InjuryCatalogEntry
}

func (Idle) Step() Step        { return StepNone }
func (Symptom) Step() Step     { return StepSymptom }
func (RedFlags) Step() Step    { return StepRedFlags }
func (MedicalCard) Step() Step { return StepMedicalCard }

func (Idle) isState()        {}
func (Symptom) isState()     {}
func (RedFlags) isState()    {}
func (MedicalCard) isState() {}

// Selected returns the candidate chosen so far, if any.
func Selected(s State) (entity.InjuryCatalogEntry, bool) {
	switch st := s.(type) {
	case RedFlags:
		return st.Selected, true
	case MedicalCard:
		return st.Selected, true
	}
	return entity.InjuryCatalogEntry{}, false
}
