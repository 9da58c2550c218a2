// Package symboltable implements the flat, append-only symbol catalog used
// by the parser's semantic actions (spec §3, §4.3).
//
// Grounded on the teacher's scope-chained Symbol/SymbolTable design
// (internal/semantic/symbol_table.go in the reference DWScript compiler),
// but deliberately NOT adopting its nested-scope hash-map shape: TruPL has
// no shadowing and no nested procedures (spec §1 Non-goals), so every
// entry instead carries its own environment name and lookups scan the
// full ordered list, exactly as spec §4.3/§9 pins ("Symbol table as flat
// list with linear scan... adequate for the teaching language").
package symboltable

import (
	"fmt"
	"strings"
)

// ExpressionType is the tagged type used throughout semantic analysis
// (spec §3).
type ExpressionType int

const (
	Int ExpressionType = iota
	Bool
	Program
	Procedure
	Unknown
	No
	Garbage
)

var expressionTypeDebugNames = [...]string{
	Int:       "kInt",
	Bool:      "kBool",
	Program:   "kProgram",
	Procedure: "kProcedure",
	Unknown:   "kUnknown",
	No:        "kNo",
	Garbage:   "kGarbage",
}

// String renders the debug form used by diagnostics and Dump.
func (t ExpressionType) String() string {
	if int(t) < len(expressionTypeDebugNames) {
		return expressionTypeDebugNames[t]
	}
	return "kGarbage"
}

// NoPosition is the position value for entries that are not formal
// parameters (spec §3).
const NoPosition = -1

// Entry is a single declaration record: (identifier, environment, type,
// position), per the ordered tuple in spec §3.
type Entry struct {
	Identifier  string
	Environment string
	Type        ExpressionType
	Position    int // NoPosition unless this is a formal parameter
}

// Table is a flat, append-only, insertion-ordered catalog of Entries. The
// zero value is ready to use.
type Table struct {
	entries []Entry
}

// New returns a fresh, empty Table — one per parse (spec §3 Lifecycle).
func New() *Table {
	return &Table{}
}

// Install appends a non-parameter entry (position = NoPosition).
func (t *Table) Install(identifier, environment string, typ ExpressionType) {
	t.entries = append(t.entries, Entry{
		Identifier:  identifier,
		Environment: environment,
		Type:        typ,
		Position:    NoPosition,
	})
}

// InstallParam appends a formal-parameter entry at the given 0-based
// position within its procedure's parameter list.
func (t *Table) InstallParam(identifier, environment string, typ ExpressionType, position int) {
	t.entries = append(t.entries, Entry{
		Identifier:  identifier,
		Environment: environment,
		Type:        typ,
		Position:    position,
	})
}

// UpdateType promotes every entry whose type is Unknown to typ. It is
// expected to be called exactly once per "IDENT_LIST : STANDARD_TYPE"
// declaration group, at which point Unknown entries in the table are
// exactly that group (spec §3 invariant).
func (t *Table) UpdateType(typ ExpressionType) {
	for i := range t.entries {
		if t.entries[i].Type == Unknown {
			t.entries[i].Type = typ
		}
	}
}

// IsDeclared reports whether some entry matches identifier and environment.
func (t *Table) IsDeclared(identifier, environment string) bool {
	for _, e := range t.entries {
		if e.Identifier == identifier && e.Environment == environment {
			return true
		}
	}
	return false
}

// GetType returns the type of the first entry matching identifier and
// environment, or Garbage if there is no match.
func (t *Table) GetType(identifier, environment string) ExpressionType {
	for _, e := range t.entries {
		if e.Identifier == identifier && e.Environment == environment {
			return e.Type
		}
	}
	return Garbage
}

// GetParamType returns the type of the first entry whose environment
// equals procedureEnv and whose position equals position, or Garbage if
// there is no match. Used to look up a formal parameter's declared type
// by its ordinal position in a call's actual-parameter list.
func (t *Table) GetParamType(procedureEnv string, position int) ExpressionType {
	for _, e := range t.entries {
		if e.Environment == procedureEnv && e.Position == position {
			return e.Type
		}
	}
	return Garbage
}

// Dump renders the table's content in the insertion order the entries
// were installed, for debugging after the declaration phase (spec §4.3).
func (t *Table) Dump() string {
	var sb strings.Builder
	for _, e := range t.entries {
		sb.WriteString(dumpEntry(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func dumpEntry(e Entry) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d", e.Identifier, e.Environment, e.Type, e.Position)
}
