package meta

import "sync/atomic"

// Search scans for the leftmost match and returns its group spans, or nil
// when the pattern matches nowhere in the input.
func (e *Engine) Search(input []byte) Groups {
	atomic.AddUint64(&e.stats.SearchCalls, 1)

	off := 0
	for off <= len(input) {
		cand, ok := e.advance(input, off)
		if !ok {
			return nil
		}
		off = cand
		if groups, _, ok := e.matchAt(input, off); ok {
			return groups
		}
		off++
	}
	return nil
}

// SearchAll collects every non-overlapping match, left to right. After a
// match over [s, e) scanning resumes at e, or at s+1 when the match was
// empty so the scan always makes progress. Returns nil when nothing
// matches.
func (e *Engine) SearchAll(input []byte) AllGroups {
	atomic.AddUint64(&e.stats.SearchCalls, 1)

	var all AllGroups
	off := 0
	for off <= len(input) {
		cand, ok := e.advance(input, off)
		if !ok {
			break
		}
		off = cand
		groups, end, ok := e.matchAt(input, off)
		if !ok {
			off++
			continue
		}
		if all == nil {
			all = AllGroups{}
		}
		for g, span := range groups {
			all[g] = append(all[g], span)
		}
		if end == off {
			off++
		} else {
			off = end
		}
	}
	return all
}

// IsMatch reports whether the pattern matches anywhere in the input.
//
// When the prefilter's literal set is the pattern's entire language, a
// candidate hit is already an answer and the DFA never runs.
func (e *Engine) IsMatch(input []byte) bool {
	if e.pf != nil && e.pf.IsComplete() {
		atomic.AddUint64(&e.stats.PrefilterSeeks, 1)
		return e.pf.Find(input, 0) >= 0
	}
	return e.Search(input) != nil
}

// advance finds the next offset worth attempting a match at. Without a
// prefilter that is the offset itself.
func (e *Engine) advance(input []byte, off int) (int, bool) {
	if e.pf == nil {
		return off, true
	}
	atomic.AddUint64(&e.stats.PrefilterSeeks, 1)
	cand := e.pf.Find(input, off)
	if cand < 0 {
		return 0, false
	}
	return cand, true
}
