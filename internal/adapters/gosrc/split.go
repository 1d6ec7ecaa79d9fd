package gosrc

import (
	"strings"

	"go.trai.ch/quill/internal/core/domain"
)

// Part is one Go file of a generated unit.
type Part struct {
	// Local is the inner unit's local name, empty for the outer unit.
	Local string
	// Source is the Go source of the file.
	Source string
}

// Split separates generated code into the outer unit and its inner units, in source order.
func Split(code string) []Part {
	chunks := strings.Split(code, "\n"+domain.InnerMarker)
	parts := make([]Part, 0, len(chunks))
	parts = append(parts, Part{Source: chunks[0]})
	for _, chunk := range chunks[1:] {
		local, src, _ := strings.Cut(chunk, "\n")
		parts = append(parts, Part{Local: strings.TrimSpace(local), Source: src})
	}
	return parts
}
