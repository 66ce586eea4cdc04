package triage

import (
	"fmt"

	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/pkg/entity"
)

type Event interface {
	isEvent()
}

// RegionSelected carries the catalog lookup result for a newly selected body region.
// An empty candidate list is a valid state.
type RegionSelected struct {
	Region     string
	Candidates []entity.InjuryCatalogEntry
}

type CandidatePicked struct {
	EntryID int64
}

// SafetyAffirmed is the athlete's "No, I'm safe" answer to the red flags.
type SafetyAffirmed struct{}

// SymptomsReported is the "Yes, I have these symptoms" answer. It ends the flow without activation.
type SymptomsReported struct{}

type Back struct{}

// Activated is applied after the activation gate accepted the selected entry.
type Activated struct{}

type Cancelled struct{}

func (RegionSelected) isEvent()   {}
func (CandidatePicked) isEvent()  {}
func (SafetyAffirmed) isEvent()   {}
func (SymptomsReported) isEvent() {}
func (Back) isEvent()             {}
func (Activated) isEvent()        {}
func (Cancelled) isEvent()        {}

// Transition returns the state that follows s after ev. Events that make no sense in s
// return s unchanged together with ErrInvalidTransition.
func Transition(s State, ev Event) (State, error) {
	switch e := ev.(type) {
	case RegionSelected:
		return Symptom{Region: e.Region, Candidates: e.Candidates}, nil
	case Cancelled:
		return Idle{}, nil
	}

	switch st := s.(type) {
	case Symptom:
		if e, ok := ev.(CandidatePicked); ok {
			for _, c := range st.Candidates {
				if c.ID != e.EntryID {
					continue
				}
				if c.HasRedFlags() {
					return RedFlags{Region: st.Region, Candidates: st.Candidates, Selected: c}, nil
				}
				return MedicalCard{Region: st.Region, Candidates: st.Candidates, Selected: c}, nil
			}
			return s, errorvalues.ErrCatalogEntryNotFound
		}
	case RedFlags:
		switch ev.(type) {
		case SafetyAffirmed:
			return MedicalCard{Region: st.Region, Candidates: st.Candidates, Selected: st.Selected}, nil
		case SymptomsReported:
			referral := st.Selected
			return Idle{Referral: &referral}, nil
		case Back:
			return Symptom{Region: st.Region, Candidates: st.Candidates}, nil
		}
	case MedicalCard:
		switch ev.(type) {
		case Activated:
			return Idle{}, nil
		case Back:
			return Symptom{Region: st.Region, Candidates: st.Candidates}, nil
		}
	}
	return s, fmt.Errorf("%w: %T in step %q", errorvalues.ErrInvalidTransition, ev, s.Step())
}
