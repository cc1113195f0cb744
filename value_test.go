package ako

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTransitions(t *testing.T) {
	v := New(Null)
	require.Equal(t, Null, v.Kind())

	v.SetInt(7)
	assert.Equal(t, Int, v.Kind())
	assert.EqualValues(t, 7, v.Int())

	// Transition into a container kind acquires empty storage.
	v.SetKind(Table)
	assert.Equal(t, 0, v.TableLen())
	v.TableAdd("a", NewInt(1))
	require.Equal(t, 1, v.TableLen())

	// Transition back out of a container kind discards its children.
	v.SetKind(String)
	assert.Equal(t, "", v.Str())
	v.SetKind(Table)
	assert.Equal(t, 0, v.TableLen(), "transitioning into Table again must start empty")
}

func TestTableOrderingAndFirstMatchLookup(t *testing.T) {
	tbl := New(Table)
	tbl.TableAdd("a", NewInt(1))
	tbl.TableAdd("b", NewInt(2))
	tbl.TableAdd("a", NewInt(3)) // duplicate key: appended, not replaced

	require.Equal(t, 3, tbl.TableLen())
	assert.Equal(t, []string{"a", "b", "a"}, []string{
		tbl.TableKeyAt(0), tbl.TableKeyAt(1), tbl.TableKeyAt(2),
	})

	// Lookup returns the first match in insertion order.
	got := tbl.TableGet("a")
	require.NotNil(t, got)
	assert.EqualValues(t, 1, got.Int())
	assert.True(t, tbl.TableContains("a"))
	assert.False(t, tbl.TableContains("zzz"))
}

func TestTableRemoveTakesLastMatch(t *testing.T) {
	tbl := New(Table)
	tbl.TableAdd("a", NewInt(1))
	tbl.TableAdd("b", NewInt(2))
	tbl.TableAdd("a", NewInt(3))

	tbl.TableRemove("a")

	require.Equal(t, 2, tbl.TableLen())
	assert.Equal(t, "a", tbl.TableKeyAt(0))
	assert.EqualValues(t, 1, tbl.TableValueAt(0).Int())
	assert.Equal(t, "b", tbl.TableKeyAt(1))
}

func TestArrayOps(t *testing.T) {
	arr := New(Array)
	arr.ArrayAdd(NewInt(1))
	arr.ArrayAdd(NewInt(2))
	arr.ArrayAdd(NewInt(3))
	require.Equal(t, 3, arr.ArrayLen())

	arr.ArrayRemove(1)
	require.Equal(t, 2, arr.ArrayLen())
	assert.EqualValues(t, 1, arr.ArrayGet(0).Int())
	assert.EqualValues(t, 3, arr.ArrayGet(1).Int())
}

func TestScalarConstructorsAndGetters(t *testing.T) {
	assert.EqualValues(t, 7, NewInt(7).Int())
	assert.EqualValues(t, 1.5, NewFloat(1.5).Float())
	assert.Equal(t, "hi", NewString("hi").Str())
	assert.Equal(t, "a.b", NewShortType("a.b").ShortType())
	assert.True(t, NewBool(true).Bool())
	assert.False(t, NewBool(false).Bool())
}

func TestErrorKind(t *testing.T) {
	e := NewErrorf("boom %d", 42)
	assert.True(t, e.IsError())
	assert.Equal(t, "boom 42", e.Err())
	assert.False(t, NewInt(1).IsError())
}

func TestMismatchedAccessorsReturnZeroValue(t *testing.T) {
	v := NewString("x")
	assert.EqualValues(t, 0, v.Int())
	assert.EqualValues(t, 0, v.Float())
	assert.False(t, v.Bool())
}

func TestVersion(t *testing.T) {
	major, minor, patch := Version()
	assert.Equal(t, 0, major)
	assert.Equal(t, 1, minor)
	assert.Equal(t, 0, patch)
}
