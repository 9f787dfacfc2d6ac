package editor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/wireframe/pkg/canvas"
)

// IDSource hands out element ids. Returned ids must never repeat.
type IDSource interface {
	NewID(kind canvas.Kind) canvas.ID
}

// UUIDSource generates "<kind>-<uuid>" ids.
type UUIDSource struct{}

func (UUIDSource) NewID(kind canvas.Kind) canvas.ID {
	return canvas.ID(string(kind) + "-" + uuid.NewString())
}

// Sequence generates "<kind>-<n>" ids from a single counter shared by all
// kinds, so replaying the same events always yields the same ids. The zero
// value starts at 1.
type Sequence struct {
	n int
}

func (s *Sequence) NewID(kind canvas.Kind) canvas.ID {
	s.n++
	return canvas.ID(fmt.Sprintf("%s-%d", kind, s.n))
}
