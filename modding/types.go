package modding

// Logger receives the lines shown in the log pane.
type Logger interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)    {}
func (nopLogger) Successf(string, ...any) {}
func (nopLogger) Errorf(string, ...any)   {}

// NopLogger discards everything.
var NopLogger Logger = nopLogger{}

// Stage identifies which part of a run a progress update belongs to.
type Stage string

const (
	StageExtract Stage = "extract"
	StageStaging Stage = "staging"
	StagePacking Stage = "packing"
	StageMoving  Stage = "moving"
)

// ProgressInfo represents progress information for a multi-step operation
type ProgressInfo struct {
	Stage     Stage  `json:"stage"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// ProgressCallback is a function type for receiving progress updates
type ProgressCallback func(progress ProgressInfo)
