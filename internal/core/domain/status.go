package domain

// UnitStage is the furthest pipeline stage a unit has reached for its current version.
type UnitStage string

const (
	// StageUninitialized means the unit has not been registered yet.
	StageUninitialized UnitStage = "uninitialized"
	// StageRegistered means the unit has an identity but no generated code.
	StageRegistered UnitStage = "registered"
	// StageGenerated means the unit holds generated code for its current version.
	StageGenerated UnitStage = "generated"
	// StageCompiled means the compiled artifact is present.
	StageCompiled UnitStage = "compiled"
	// StageEnhanced means the enhanced artifact is present.
	StageEnhanced UnitStage = "enhanced"
	// StageInstantiable means a master instance is loaded.
	StageInstantiable UnitStage = "instantiable"
)

// RunStatus represents the status of a unit during precompile.
type RunStatus string

const (
	// StatusPending indicates the unit is waiting for its parent.
	StatusPending RunStatus = "Pending"
	// StatusRunning indicates the unit is being processed.
	StatusRunning RunStatus = "Running"
	// StatusCompleted indicates the unit is instantiable.
	StatusCompleted RunStatus = "Completed"
	// StatusFailed indicates the unit failed.
	StatusFailed RunStatus = "Failed"
	// StatusSkipped indicates the unit was not processed because its parent failed.
	StatusSkipped RunStatus = "Skipped"
)

// UnitInfo is a read-only snapshot of a live unit.
type UnitInfo struct {
	Key           string
	Identity      string
	VersionedName string
	Version       int64
	Base          string
	TagName       string
	Inner         bool
	Stage         UnitStage
}
