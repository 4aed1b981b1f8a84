// Package fname interns function names flowing in from the host LLVM
// module, so the surrounding simulator can compare and key on them by
// identity instead of paying a string comparison on every lookup. It also
// carries the one reserved name the simulator treats specially: the
// synthetic entry point "_start".
package fname

import "github.com/symlift/corelift/utils/hmap"

// entryPointName is the simulator's synthetic entry point. Every other
// function name comes from the host module; this one never does.
const entryPointName = "_start"

// FuncName is an interned function identifier. Two FuncNames obtained from
// Intern with equal underlying strings are the same *entry, so FuncName
// values are comparable with == once interned.
type FuncName struct {
	entry *entry
}

type entry struct {
	name string
}

func (n FuncName) String() string {
	if n.entry == nil {
		return ""
	}
	return n.entry.name
}

// IsEntryPoint reports whether n names the simulator's entry point.
func (n FuncName) IsEntryPoint() bool {
	return n.entry != nil && n.entry.name == entryPointName
}

type stringHasher struct{}

func (stringHasher) Hash(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func (stringHasher) Equal(a, b string) bool { return a == b }

// table is the process-global interning table. It is append-only: entries
// are never removed or mutated once inserted, so a *entry pointer handed
// out by Intern stays valid and meaningful for the life of the process.
var table = hmap.NewMap[*entry, string](stringHasher{})

// Intern returns the canonical FuncName for name, reusing the entry from a
// previous call with the same string rather than allocating a new one.
func Intern(name string) FuncName {
	if e, ok := table.GetOk(name); ok {
		return FuncName{entry: e}
	}
	e := &entry{name: name}
	table.Set(name, e)
	return FuncName{entry: e}
}

// EntryPoint returns the interned form of the reserved simulator entry
// point "_start".
func EntryPoint() FuncName {
	return Intern(entryPointName)
}
