package taxseq

// filterRecords keeps the records whose sequence length falls within the
// closed interval [minLen, maxLen], in their fetch order
//
// the interval is taken as given: a minimum above the maximum yields an
// empty result rather than an error
func filterRecords(records []Record, minLen, maxLen int) (kept []Record) {
	kept = []Record{}
	for _, r := range records {
		if l := r.Length(); minLen <= l && l <= maxLen {
			kept = append(kept, r)
		}
	}

	return kept
}
