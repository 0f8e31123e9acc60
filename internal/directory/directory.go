// Package directory holds the static electoral reference data: national-tier
// (Lok Sabha) constituencies, state-tier (Vidhan Sabha) assembly
// constituencies, the containment mapping between the two hierarchies, and
// the PIN-code-to-district table. The data is seeded at build time and never
// mutated; every lookup runs against indexes built once by New.
package directory

import (
	"sort"
	"strings"
)

// Tier discriminates the two electoral hierarchies. It is the primary
// discriminant; the "-AC-" ID convention survives only in TierOfID.
type Tier uint8

const (
	TierNational Tier = iota + 1
	TierAssembly
)

func (t Tier) String() string {
	if t == TierAssembly {
		return "state"
	}
	return "national"
}

// Constituency is a national-tier seat. PinRanges holds the 3-digit postal
// prefixes whose area overlaps the seat.
type Constituency struct {
	ID        string
	Name      string
	State     string
	Tier      Tier
	PinRanges []string
}

// AssemblyConstituency is a state-tier seat. District may be empty where the
// source dataset had no district row for the seat.
type AssemblyConstituency struct {
	ID       string
	Name     string
	State    string
	Tier     Tier
	District string
}

// PostalRecord is the district entry for one exact 6-digit PIN code.
type PostalRecord struct {
	State    string
	District string
}

// TierOfID infers the tier from the structural ID marker. Kept as a
// compatibility shim for data imported from the old dataset; new code should
// read the Tier field.
func TierOfID(id string) Tier {
	if strings.Contains(id, "-AC-") {
		return TierAssembly
	}
	return TierNational
}

type Directory struct {
	national   []Constituency
	assemblies []AssemblyConstituency

	byID      map[string]int
	acByID    map[string]int
	byPrefix  map[string][]int
	acByState map[string][]int
	contained map[string][]string
	parent    map[string]string
	pincodes  map[string]PostalRecord
}

// New builds the directory from the seeded datasets.
func New() *Directory {
	d := &Directory{
		national:   nationalSeed,
		assemblies: assemblySeed,
		byID:       make(map[string]int),
		acByID:     make(map[string]int),
		byPrefix:   make(map[string][]int),
		acByState:  make(map[string][]int),
		contained:  containmentSeed,
		parent:     make(map[string]string),
		pincodes:   pincodeSeed,
	}
	for i := range d.national {
		d.national[i].Tier = TierNational
		d.byID[d.national[i].ID] = i
		for _, p := range d.national[i].PinRanges {
			d.byPrefix[p] = append(d.byPrefix[p], i)
		}
	}
	for i := range d.assemblies {
		d.assemblies[i].Tier = TierAssembly
		d.acByID[d.assemblies[i].ID] = i
		d.acByState[d.assemblies[i].State] = append(d.acByState[d.assemblies[i].State], i)
	}
	for pc, acs := range d.contained {
		for _, ac := range acs {
			d.parent[ac] = pc
		}
	}
	return d
}

// ByID finds a national-tier constituency.
func (d *Directory) ByID(id string) (Constituency, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Constituency{}, false
	}
	return d.national[i], true
}

// AssemblyByID finds a state-tier constituency.
func (d *Directory) AssemblyByID(id string) (AssemblyConstituency, bool) {
	i, ok := d.acByID[id]
	if !ok {
		return AssemblyConstituency{}, false
	}
	return d.assemblies[i], true
}

// NationalByPrefix returns the national-tier constituencies whose pinRanges
// contain the given 3-digit prefix.
func (d *Directory) NationalByPrefix(prefix string) []Constituency {
	idx := d.byPrefix[prefix]
	out := make([]Constituency, 0, len(idx))
	for _, i := range idx {
		out = append(out, d.national[i])
	}
	return out
}

// AssembliesInState returns every state-tier constituency of a state.
func (d *Directory) AssembliesInState(state string) []AssemblyConstituency {
	idx := d.acByState[state]
	out := make([]AssemblyConstituency, 0, len(idx))
	for _, i := range idx {
		out = append(out, d.assemblies[i])
	}
	return out
}

// ContainedAssemblies returns the state-tier constituencies composing a
// national-tier one, in mapping order. Unknown IDs in the mapping are
// skipped.
func (d *Directory) ContainedAssemblies(nationalID string) []AssemblyConstituency {
	ids := d.contained[nationalID]
	out := make([]AssemblyConstituency, 0, len(ids))
	for _, id := range ids {
		if ac, ok := d.AssemblyByID(id); ok {
			out = append(out, ac)
		}
	}
	return out
}

// ContainmentIDs exposes the raw containment rows for integrity checks.
func (d *Directory) ContainmentIDs() map[string][]string {
	return d.contained
}

// ParentOf returns the national-tier constituency containing a state-tier
// one, if the mapping covers it.
func (d *Directory) ParentOf(assemblyID string) (Constituency, bool) {
	pc, ok := d.parent[assemblyID]
	if !ok {
		return Constituency{}, false
	}
	return d.ByID(pc)
}

// DistrictForPincode looks up an exact 6-digit PIN code. The table is sparse.
func (d *Directory) DistrictForPincode(code string) (PostalRecord, bool) {
	rec, ok := d.pincodes[code]
	return rec, ok
}

// States returns every state present in the national-tier dataset, sorted.
func (d *Directory) States() []string {
	seen := make(map[string]struct{})
	for i := range d.national {
		seen[d.national[i].State] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// National returns the full national-tier dataset.
func (d *Directory) National() []Constituency {
	return d.national
}

// Assemblies returns the full state-tier dataset.
func (d *Directory) Assemblies() []AssemblyConstituency {
	return d.assemblies
}
