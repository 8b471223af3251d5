package md2rtf

// Dedupe removes documents whose trimmed content is identical to an earlier
// document in the sequence. Input order is preserved; the first occurrence of
// each distinct content wins and later duplicates are dropped entirely.
// The comparison is exact string equality on the trimmed content, not a hash
// digest, so there is no false-positive risk.
func Dedupe(docs []Document) []Document {
	if len(docs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(docs))
	result := make([]Document, 0, len(docs))

	for _, doc := range docs {
		key := doc.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, doc)
	}

	return result
}
