package rules

import "log/slog"

// Router composes a Classifier with best-effort rule persistence. Keyword
// mutations save the full rule set; save and load failures are logged and
// never disturb the in-memory state, which stays authoritative.
//
// A Router is owned by one session. It does no locking; concurrent sessions
// must each construct their own.
type Router struct {
	*Classifier
	store RuleStore
}

// NewRouter builds a router around the default categories, then merges any
// previously persisted keywords from the store. Pass a nil store for a
// purely in-memory router.
func NewRouter(store RuleStore) *Router {
	r := &Router{Classifier: DefaultClassifier(), store: store}
	if store == nil {
		return r
	}

	rs, err := store.Load()
	if err != nil {
		slog.Warn("could not load persisted rules, continuing with defaults", "error", err)
		return r
	}
	if skipped := r.Merge(rs); len(skipped) > 0 {
		slog.Warn("ignored persisted categories not in the default set", "categories", skipped)
	}
	return r
}

// ModifyKeywords adds the comma-separated keywords to the named category and
// snapshots the rule set to the store. Persistence failure is logged, not
// returned: durability is best-effort and the in-memory rules remain correct.
func (r *Router) ModifyKeywords(name, commaSeparated string) (added []string, ok bool) {
	added, ok = r.Classifier.ModifyKeywords(name, commaSeparated)
	if !ok {
		return nil, false
	}

	if r.store != nil {
		if err := r.store.Save(r.Snapshot()); err != nil {
			slog.Warn("failed to persist rule set", "category", name, "error", err)
		}
	}
	return added, true
}
