package session

import (
	"burger/internal/core/domain/model/assembly"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/core/domain/model/submission"
)

// Snapshot is a consistent, read-only copy of a session taken under its lock.
type Snapshot struct {
	Base       *assembly.SelectedPart
	Fillings   []assembly.SelectedPart
	Price      kernel.Money
	Counters   map[string]int
	Submission submission.State
}

func takeSnapshot(a *assembly.Assembly, state submission.State) Snapshot {
	snap := Snapshot{
		Fillings:   a.Fillings(),
		Price:      a.Price(),
		Counters:   a.Counters(),
		Submission: state,
	}
	if base, ok := a.Base(); ok {
		snap.Base = &base
	}
	return snap
}

// EmptySnapshot is the snapshot of a session that has not been used yet.
func EmptySnapshot() Snapshot {
	return takeSnapshot(assembly.NewAssembly(), submission.NewState())
}
