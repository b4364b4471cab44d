package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers that are unique for the lifetime of the
// generator.
type IDGenerator interface {
	NextID() string
}

const (
	IDKindSequence = "sequence"
	IDKindUUID     = "uuid"
)

// Sequence numbers items 1, 2, 3, ...
type Sequence struct {
	last uint64
}

func (s *Sequence) NextID() string {
	s.last++
	return strconv.FormatUint(s.last, 10)
}

// UUIDs issues random version 4 UUIDs.
type UUIDs struct{}

func (UUIDs) NextID() string {
	return uuid.NewString()
}

// NewIDGenerator builds the generator named by kind. An empty kind selects
// the sequence.
func NewIDGenerator(kind string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", IDKindSequence:
		return &Sequence{}, nil
	case IDKindUUID:
		return UUIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id generator %q (want %s or %s)", kind, IDKindSequence, IDKindUUID)
	}
}
