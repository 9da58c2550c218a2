package symboltable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpressionType_String(t *testing.T) {
	cases := []struct {
		typ  ExpressionType
		want string
	}{
		{Int, "kInt"},
		{Bool, "kBool"},
		{Program, "kProgram"},
		{Procedure, "kProcedure"},
		{Unknown, "kUnknown"},
		{No, "kNo"},
		{Garbage, "kGarbage"},
	}
	for _, tt := range cases {
		require.Equal(t, tt.want, tt.typ.String())
	}
}

func TestInstallAndIsDeclared(t *testing.T) {
	table := New()
	require.False(t, table.IsDeclared("x", "foo"))

	table.Install("x", "foo", Unknown)
	require.True(t, table.IsDeclared("x", "foo"))
	require.False(t, table.IsDeclared("x", "bar"), "same identifier in a different environment is undeclared")
}

func TestUpdateType_OnlyPromotesUnknownEntries(t *testing.T) {
	table := New()
	table.Install("prog", "_EXTERNAL", Program)
	table.Install("a", "foo", Unknown)
	table.Install("b", "foo", Unknown)

	table.UpdateType(Int)

	require.Equal(t, Program, table.GetType("prog", "_EXTERNAL"))
	require.Equal(t, Int, table.GetType("a", "foo"))
	require.Equal(t, Int, table.GetType("b", "foo"))
}

func TestGetType_UnmatchedReturnsGarbage(t *testing.T) {
	table := New()
	require.Equal(t, Garbage, table.GetType("missing", "foo"))
}

func TestInstallParam_RecordsOrdinalPosition(t *testing.T) {
	table := New()
	table.InstallParam("a", "add", Unknown, 0)
	table.InstallParam("b", "add", Unknown, 1)
	table.UpdateType(Int)

	require.Equal(t, Int, table.GetParamType("add", 0))
	require.Equal(t, Int, table.GetParamType("add", 1))
	require.Equal(t, Garbage, table.GetParamType("add", 2))
}

func TestInstall_NonParamEntriesUseNoPosition(t *testing.T) {
	table := New()
	table.Install("x", "foo", Int)
	require.Equal(t, Garbage, table.GetParamType("foo", 0), "a plain Install never occupies a formal parameter slot")
}

func TestDump_RendersInsertionOrder(t *testing.T) {
	table := New()
	table.Install("prog", "_EXTERNAL", Program)
	table.InstallParam("a", "prog", Int, 0)

	got := table.Dump()
	require.Equal(t, "prog\t_EXTERNAL\tkProgram\t-1\na\tprog\tkInt\t0\n", got)
}
