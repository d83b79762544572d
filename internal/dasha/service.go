package dasha

import "time"

// Service is the stable two-operation facade over one Assembler. Both
// operations are pure, so a single Service may serve concurrent callers.
type Service struct {
	asm *Assembler
}

// NewService wraps an Assembler.
func NewService(asm *Assembler) *Service {
	return &Service{asm: asm}
}

// ComputeSnapshot resolves the nested active periods for the request.
func (s *Service) ComputeSnapshot(req SnapshotRequest) (*Snapshot, error) {
	return s.asm.ComputeSnapshot(req)
}

// ComputeTransition builds the forward-looking summary for a target date.
func (s *Service) ComputeTransition(birth time.Time, moonLongitude float64, target time.Time) (*Transition, error) {
	return s.asm.ComputeTransition(birth, moonLongitude, target)
}
