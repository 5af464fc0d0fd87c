package alerts

import "github.com/Bakuzaci/zora-dash/internal/model"

// Merge folds the live buffer and the fetched snapshot into the displayed
// list. Live events come first, newest-first; snapshot entries whose
// transaction hash already appears in the buffer are dropped; the result
// is truncated to max entries.
//
// Merge is pure: it is re-derived on every render and never holds
// intermediate state that could go stale.
func Merge(buffer, snapshot []model.WhaleAlert, max int) []model.WhaleAlert {
	if max <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(buffer))
	merged := make([]model.WhaleAlert, 0, len(buffer)+len(snapshot))

	for _, a := range buffer {
		if _, dup := seen[a.TxHash]; dup {
			continue
		}
		seen[a.TxHash] = struct{}{}
		merged = append(merged, a)
	}
	for _, a := range snapshot {
		if _, dup := seen[a.TxHash]; dup {
			continue
		}
		seen[a.TxHash] = struct{}{}
		merged = append(merged, a)
	}

	if len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
