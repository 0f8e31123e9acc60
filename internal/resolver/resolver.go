// Package resolver maps a postal-code prefix and an electoral tier to the
// matching constituency set. The state tier runs a precision cascade: exact
// PIN-to-district lookup first, then progressively coarser fallbacks, each
// tagged with the match quality so callers can tell a precise result from a
// broad one.
package resolver

import (
	"sort"
	"strings"

	"github.com/achantasri/JanAwaaz/internal/directory"
)

// Quality describes how precisely a result was derived from the input.
type Quality string

const (
	QualityDistrict Quality = "district"
	QualityState    Quality = "state"
)

// Entry is one resolved constituency of either tier.
type Entry struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	State    string         `json:"state"`
	District string         `json:"district,omitempty"`
	Tier     directory.Tier `json:"-"`
}

// Group is a presentation grouping of entries under a label (state, district
// or parent constituency name, depending on how the result was derived).
type Group struct {
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

// Result is a resolved, grouped constituency set.
type Result struct {
	Quality Quality `json:"matchQuality,omitempty"`
	Groups  []Group `json:"groups"`
}

func (r Result) Empty() bool { return len(r.Groups) == 0 }

// Flatten returns every entry across groups, in group order.
func (r Result) Flatten() []Entry {
	var out []Entry
	for _, g := range r.Groups {
		out = append(out, g.Entries...)
	}
	return out
}

// Normalize strips non-digit characters from raw user input and caps it at
// six digits. Callers run it before Resolve; Resolve itself assumes
// digit-only input.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 6 {
				break
			}
		}
	}
	return b.String()
}

// Resolve maps postalInput to a constituency set for the given tier. It is
// total: any 0-6 digit input yields a (possibly empty) result, never an
// error. Fewer than three digits always resolve to nothing.
func Resolve(dir *directory.Directory, tier directory.Tier, postalInput string) Result {
	if len(postalInput) < 3 {
		return Result{}
	}
	if tier == directory.TierAssembly {
		return resolveState(dir, postalInput)
	}
	return resolveNational(dir, postalInput)
}

func resolveNational(dir *directory.Directory, input string) Result {
	matches := dir.NationalByPrefix(input[:3])
	if len(matches) == 0 {
		return Result{}
	}

	byState := make(map[string][]Entry)
	for _, c := range matches {
		byState[c.State] = append(byState[c.State], Entry{
			ID: c.ID, Name: c.Name, State: c.State, Tier: c.Tier,
		})
	}
	states := make([]string, 0, len(byState))
	for s := range byState {
		states = append(states, s)
	}
	sort.Strings(states)

	groups := make([]Group, 0, len(states))
	for _, s := range states {
		entries := byState[s]
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		groups = append(groups, Group{Label: s, Entries: entries})
	}
	return Result{Quality: QualityState, Groups: groups}
}

// resolveState walks the precision cascade: district-exact, state-from-postal
// fallback, containment-derived, state-only fallback.
func resolveState(dir *directory.Directory, input string) Result {
	if len(input) == 6 {
		if rec, ok := dir.DistrictForPincode(input); ok {
			want := NormalizeDistrict(rec.District)
			var hits []directory.AssemblyConstituency
			for _, ac := range dir.AssembliesInState(rec.State) {
				if NormalizeDistrict(ac.District) == want {
					hits = append(hits, ac)
				}
			}
			if len(hits) > 0 {
				return groupByDistrict(hits)
			}
			// The two datasets disagree on the district spelling beyond
			// what normalization covers; fall back to the whole state.
			return groupByParentOrState(dir, dir.AssembliesInState(rec.State))
		}
	}

	national := dir.NationalByPrefix(input[:3])
	if len(national) == 0 {
		return Result{}
	}

	// Containment-derived: union the assembly segments of each matched
	// national seat, deduplicated by ID.
	seen := make(map[string]bool)
	var groups []Group
	for _, pc := range national {
		var entries []Entry
		for _, ac := range dir.ContainedAssemblies(pc.ID) {
			if seen[ac.ID] {
				continue
			}
			seen[ac.ID] = true
			entries = append(entries, assemblyEntry(ac))
		}
		if len(entries) > 0 {
			groups = append(groups, Group{Label: pc.Name, Entries: entries})
		}
	}
	if len(groups) > 0 {
		return Result{Quality: QualityState, Groups: groups}
	}

	// State-only fallback: every assembly seat in any state reached by the
	// national prefix matches.
	stateSeen := make(map[string]bool)
	var all []directory.AssemblyConstituency
	for _, pc := range national {
		if stateSeen[pc.State] {
			continue
		}
		stateSeen[pc.State] = true
		all = append(all, dir.AssembliesInState(pc.State)...)
	}
	return groupByParentOrState(dir, all)
}

func assemblyEntry(ac directory.AssemblyConstituency) Entry {
	return Entry{ID: ac.ID, Name: ac.Name, State: ac.State, District: ac.District, Tier: ac.Tier}
}

func groupByDistrict(acs []directory.AssemblyConstituency) Result {
	byDistrict := make(map[string][]Entry)
	for _, ac := range acs {
		byDistrict[ac.District] = append(byDistrict[ac.District], assemblyEntry(ac))
	}
	return Result{Quality: QualityDistrict, Groups: sortedGroups(byDistrict)}
}

// groupByParentOrState labels each seat with its containing national seat
// when the mapping covers it, else with its state.
func groupByParentOrState(dir *directory.Directory, acs []directory.AssemblyConstituency) Result {
	if len(acs) == 0 {
		return Result{}
	}
	byLabel := make(map[string][]Entry)
	for _, ac := range acs {
		label := ac.State
		if pc, ok := dir.ParentOf(ac.ID); ok {
			label = pc.Name
		}
		byLabel[label] = append(byLabel[label], assemblyEntry(ac))
	}
	return Result{Quality: QualityState, Groups: sortedGroups(byLabel)}
}

func sortedGroups(m map[string][]Entry) []Group {
	labels := make([]string, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	groups := make([]Group, 0, len(labels))
	for _, l := range labels {
		entries := m[l]
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		groups = append(groups, Group{Label: l, Entries: entries})
	}
	return groups
}

// NormalizeDistrict folds a district name for comparison across the two
// independently sourced datasets: uppercase, collapsed whitespace, trailing
// "DISTRICT" stripped.
func NormalizeDistrict(name string) string {
	s := strings.ToUpper(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimSuffix(s, " DISTRICT")
	return s
}

// Filter narrows a result to entries whose name, district or state contains
// the query, case-insensitively. It never changes the match quality.
func Filter(r Result, query string) Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r
	}
	out := Result{Quality: r.Quality}
	for _, g := range r.Groups {
		var kept []Entry
		for _, e := range g.Entries {
			if strings.Contains(strings.ToLower(e.Name), query) ||
				strings.Contains(strings.ToLower(e.District), query) ||
				strings.Contains(strings.ToLower(e.State), query) {
				kept = append(kept, e)
			}
		}
		if len(kept) > 0 {
			out.Groups = append(out.Groups, Group{Label: g.Label, Entries: kept})
		}
	}
	return out
}
