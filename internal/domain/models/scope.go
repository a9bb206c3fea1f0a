package models

// RootSentinel is the reserved wire value meaning "no parent / top level".
// It is distinct from the parameter being omitted entirely: folder listing
// treats omission as root, image listing treats omission as unfiltered.
const RootSentinel = "null"

// ScopeKind selects how a listing is filtered by containing folder.
type ScopeKind int

const (
	// ScopeAll applies no folder filter at all.
	ScopeAll ScopeKind = iota
	// ScopeRoot matches rows with no containing folder.
	ScopeRoot
	// ScopeFolder matches direct children of one folder.
	ScopeFolder
)

// ListScope is the three-way listing selector. The variants are deliberately
// distinct from an optional id so that "root" and "unfiltered" can never be
// conflated by a nil check.
type ListScope struct {
	Kind     ScopeKind
	FolderID string // set only for ScopeFolder
}

func AllScope() ListScope  { return ListScope{Kind: ScopeAll} }
func RootScope() ListScope { return ListScope{Kind: ScopeRoot} }

func FolderScope(id string) ListScope {
	return ListScope{Kind: ScopeFolder, FolderID: id}
}

// NormalizeParent maps the root sentinel (and the empty string) to nil so
// downstream code only ever sees nil for "root level".
func NormalizeParent(id *string) *string {
	if id == nil || *id == "" || *id == RootSentinel {
		return nil
	}
	return id
}
