package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateExtends is returned when a unit declares its parent more than once in one generation pass.
	ErrDuplicateExtends = zerr.New("extends already declared")

	// ErrCompileFailed is returned when the source compiler rejects generated code.
	ErrCompileFailed = zerr.New("failed to compile template unit")

	// ErrTypeCheckFailed is returned when generated code parses but does not type-check.
	ErrTypeCheckFailed = zerr.New("generated code does not type-check")

	// ErrReentrantEnhance is returned when enhance is re-entered for a unit that is already enhancing.
	ErrReentrantEnhance = zerr.New("reentrant enhance call")

	// ErrInnerExtends is returned when a nested unit declares a parent.
	ErrInnerExtends = zerr.New("inner units cannot extend another unit")

	// ErrParse is returned by the markup parser for malformed template text.
	ErrParse = zerr.New("failed to parse template")

	// ErrInvalidArgumentName is returned when an argument name is not a valid identifier.
	ErrInvalidArgumentName = zerr.New("invalid argument name")

	// ErrInvalidArgumentType is returned when an argument type is empty or malformed.
	ErrInvalidArgumentType = zerr.New("invalid argument type")

	// ErrNotGenerated is returned when a unit is compiled before any code was generated for it.
	ErrNotGenerated = zerr.New("template unit has no generated code")

	// ErrNoArtifact is returned when the compiler returned without producing an artifact.
	ErrNoArtifact = zerr.New("compiler produced no artifact")

	// ErrUnitNotFound is returned when a versioned name has no live unit.
	ErrUnitNotFound = zerr.New("template unit not found")

	// ErrTagNotFound is returned when a called tag or inner unit cannot be resolved.
	ErrTagNotFound = zerr.New("tag not found")

	// ErrResourceNotFound is returned when a template resource does not exist.
	ErrResourceNotFound = zerr.New("template resource not found")

	// ErrResourceReadFailed is returned when a template resource cannot be read.
	ErrResourceReadFailed = zerr.New("failed to read template resource")

	// ErrLoadFailed is returned when an artifact cannot be loaded into an invocable handle.
	ErrLoadFailed = zerr.New("failed to load template unit")

	// ErrConstructFailed is returned when a loaded handle fails to construct its master instance.
	ErrConstructFailed = zerr.New("failed to construct template instance")

	// ErrBindFailed is returned when render arguments cannot be bound to an instance.
	ErrBindFailed = zerr.New("failed to bind render arguments")

	// ErrRenderFailed is returned when the body-construction routine fails.
	ErrRenderFailed = zerr.New("failed to render template")

	// ErrExtendsCycle is returned when a unit inherits from itself through its extends chain.
	ErrExtendsCycle = zerr.New("extends cycle detected")

	// ErrCycleDetected is returned when the extends graph of a precompile run contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnitAlreadyExists is returned when a graph node with the same name is added twice.
	ErrUnitAlreadyExists = zerr.New("unit already exists")

	// ErrMissingParent is returned when a graph node references a parent that is not in the graph.
	ErrMissingParent = zerr.New("missing parent unit")

	// ErrPrecompileFailed is returned when at least one unit fails during precompile.
	ErrPrecompileFailed = zerr.New("precompile failed")

	// ErrUnknownEnhancer is returned when the configuration names an enhancer that is not registered.
	ErrUnknownEnhancer = zerr.New("unknown enhancer")

	// ErrEnhancerFailed is returned by an enhancer that cannot transform an artifact.
	ErrEnhancerFailed = zerr.New("enhancer failed")

	// ErrInvalidSanitizePolicy is returned when the configured sanitize policy is unknown.
	ErrInvalidSanitizePolicy = zerr.New("invalid sanitize policy, expected 'none', 'ugc' or 'strict'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreCreateFailed is returned when the artifact store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create artifact store directory")

	// ErrStoreReadFailed is returned when a stored artifact cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stored artifact")

	// ErrStoreUnmarshalFailed is returned when a stored artifact cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stored artifact")

	// ErrStoreMarshalFailed is returned when an artifact cannot be encoded for storage.
	ErrStoreMarshalFailed = zerr.New("failed to marshal artifact")

	// ErrStoreWriteFailed is returned when an artifact cannot be written to the store.
	ErrStoreWriteFailed = zerr.New("failed to write artifact")

	// ErrWalkFailed is returned when the template directory cannot be walked.
	ErrWalkFailed = zerr.New("failed to walk template directory")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start file watcher")

	// ErrInvalidArgument is returned when a CLI argument is malformed.
	ErrInvalidArgument = zerr.New("invalid argument")
)
