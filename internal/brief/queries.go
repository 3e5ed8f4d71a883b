package brief

// MaxQueries bounds the number of image searches run per submission.
const MaxQueries = 3

// Queries maps the feelings and design inspiration of a submission to at most
// MaxQueries unique image search queries. Feelings are walked first so that
// emotional tone wins over style inspiration. Unknown labels contribute nothing.
func Queries(feelings []string, inspiration string) []string {
	candidates := make([]string, 0, len(feelings)*3+2)

	for _, feeling := range feelings {
		if queries, ok := FeelingQueries(feeling); ok {
			candidates = append(candidates, queries...)
		}
	}

	if queries, ok := InspirationQueries(inspiration); ok {
		candidates = append(candidates, queries...)
	}

	return firstUnique(candidates, MaxQueries)
}

func firstUnique(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, limit)

	for _, v := range values {
		if len(result) == limit {
			break
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
