package notebook

import (
	"time"

	"github.com/aretw0/introspection"
	"github.com/aretw0/sheaf/pkg/core"
)

// State is the observable state of a Service.
type State struct {
	Repository any        `json:"repository,omitempty"`
	DefaultTag string     `json:"default_tag"`
	SeqWidth   int        `json:"seq_width"`
	LastScan   *time.Time `json:"last_scan,omitempty"`
	Total      int        `json:"total"`
	Valid      int        `json:"valid"`
	Invalid    int        `json:"invalid"`
}

type scanStats struct {
	at    time.Time
	total int
	valid int
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{
		DefaultTag: s.defaultTag,
		SeqWidth:   s.seqWidth,
	}
	if i, ok := s.repo.(introspection.Introspectable); ok {
		st.Repository = i.State()
	}
	if s.lastScan != nil {
		at := s.lastScan.at
		st.LastScan = &at
		st.Total = s.lastScan.total
		st.Valid = s.lastScan.valid
		st.Invalid = s.lastScan.total - s.lastScan.valid
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "notebook"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)

func (s *Service) recordScan(report *core.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastScan = &scanStats{
		at:    s.now(),
		total: report.Total(),
		valid: len(report.Valid()),
	}
}
