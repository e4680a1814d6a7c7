package aggregator

import "github.com/jonmartinstorm/profilsnusern/internal/models"

type EventKind int

const (
	EventStarted EventKind = iota
	EventSucceeded
	EventFailed
)

// Event er én overgang for en kjøring. Generation identifiserer kjøringen.
type Event struct {
	Kind       EventKind
	Generation uint64
	Username   string
	Snapshot   models.Snapshot
	Message    string
}

// Machine er tilstanden pluss generasjonen den tilhører.
type Machine struct {
	Generation uint64
	State      models.State
}

// Reduce er den eneste måten tilstanden endres på. Started åpner en ny
// generasjon; resultater fra andre generasjoner enn den siste forkastes.
func Reduce(m Machine, ev Event) Machine {
	switch ev.Kind {
	case EventStarted:
		if ev.Generation <= m.Generation {
			return m
		}
		return Machine{Generation: ev.Generation, State: models.Loading(ev.Username)}
	case EventSucceeded:
		if ev.Generation != m.Generation || !m.State.IsLoading() {
			return m
		}
		return Machine{Generation: m.Generation, State: models.Ready(ev.Username, ev.Snapshot)}
	case EventFailed:
		if ev.Generation != m.Generation || !m.State.IsLoading() {
			return m
		}
		return Machine{Generation: m.Generation, State: models.Failed(ev.Username, ev.Message)}
	default:
		return m
	}
}
