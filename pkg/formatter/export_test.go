package formatter

// RefCount returns the number of registered references, including any whose
// owners have been collected but not yet pruned.
func (f *Formatter) RefCount() int { return len(f.refs) }
