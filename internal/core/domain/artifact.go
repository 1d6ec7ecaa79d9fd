package domain

import "time"

// StoredArtifact is a compiled unit persisted in the artifact store.
type StoredArtifact struct {
	// Key is the digest of the generated source the artifact was compiled from.
	Key string `json:"key"`
	// Main is the compiled artifact of the outer unit.
	Main []byte `json:"main"`
	// Inners are the compiled inner units, in source order.
	Inners []InnerArtifact `json:"inners,omitempty"`
	// Timestamp records when the artifact was stored.
	Timestamp time.Time `json:"timestamp"`
}

// InnerArtifact is the compiled artifact of one inner unit.
type InnerArtifact struct {
	Local    string `json:"local"`
	Artifact []byte `json:"artifact"`
}
