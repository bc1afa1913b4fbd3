package transfer

import "context"

// ResolvePlan turns the requested collection names into the ordered set the
// job will process. An empty request means every collection the source has,
// in the order the store returns them. A non-empty request keeps the caller's
// order and silently drops names the store does not have.
func ResolvePlan(ctx context.Context, source Store, requested []string) ([]string, error) {
	actual, err := source.ListCollections(ctx)
	if err != nil {
		return nil, &EnumerationError{Err: err}
	}
	if len(requested) == 0 {
		return actual, nil
	}

	have := make(map[string]struct{}, len(actual))
	for _, name := range actual {
		have[name] = struct{}{}
	}

	plan := make([]string, 0, len(requested))
	for _, name := range requested {
		if _, ok := have[name]; ok {
			plan = append(plan, name)
		}
	}
	return plan, nil
}
