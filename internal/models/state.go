package models

type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// State er livssyklusen til én aggregering. Bygg den kun via Loading,
// Failed og Ready slik at Data bare finnes i ready og Error bare i error.
type State struct {
	Status   Status    `json:"status"`
	Username string    `json:"username"`
	Error    string    `json:"error,omitempty"`
	Data     *Snapshot `json:"data,omitempty"`
}

func Loading(username string) State {
	return State{Status: StatusLoading, Username: username}
}

func Failed(username, message string) State {
	return State{Status: StatusError, Username: username, Error: message}
}

func Ready(username string, snap Snapshot) State {
	return State{Status: StatusReady, Username: username, Data: &snap}
}

func (s State) IsLoading() bool { return s.Status == StatusLoading }
func (s State) IsError() bool   { return s.Status == StatusError }
func (s State) IsReady() bool   { return s.Status == StatusReady && s.Data != nil }
