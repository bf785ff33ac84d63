package services

// appendUnique appends each value to dst unless it is already present,
// preserving first-seen order. Candidate lists lean on this to keep the
// primary pick stable at index 0.
func appendUnique(dst []string, vals ...string) []string {
	for _, v := range vals {
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}

// keepLen drops values whose length differs from n.
func keepLen(vals []string, n int) []string {
	out := vals[:0]
	for _, v := range vals {
		if len(v) == n {
			out = append(out, v)
		}
	}
	return out
}

// truncate limits vals to at most n elements.
func truncate(vals []string, n int) []string {
	if len(vals) > n {
		return vals[:n]
	}
	return vals
}
