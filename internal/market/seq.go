package market

import (
	"strconv"
	"strings"
)

// codeSeq hands out sequential, zero-padded base-36 codes ("p000001", ...).
// Sequences live on the aggregate and are carried in snapshots, so id
// assignment is deterministic without shared global state.
type codeSeq struct {
	prefix string
	next   uint64
}

func (s *codeSeq) Next() string {
	raw := strconv.FormatUint(s.next, 36)
	s.next++
	if len(raw) < 6 {
		raw = strings.Repeat("0", 6-len(raw)) + raw
	}
	return s.prefix + raw
}
