package gdbmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fansqz/gdbmi-console/debugger"
)

func TestParseOverloadsChoicePrompt(t *testing.T) {
	entries, _, ok := ParseOverloadsChoicePrompt(overloadsPrompt0, 0)
	require.True(t, ok)
	require.Len(t, entries, 4)
	assert.Equal(t, debugger.OverloadsChoiceCancel, entries[0].Kind)
	assert.Equal(t, debugger.OverloadsChoiceAll, entries[1].Kind)
	assert.Equal(t, debugger.OverloadsChoiceLocation, entries[2].Kind)
	assert.Equal(t, 2, entries[2].Index)
	assert.Equal(t, "nemiver::GDBEngine::set_breakpoint(nemiver::common::UString const&, nemiver::common::UString const&)", entries[2].FunctionName)
	assert.Equal(t, "nmv-gdb-engine.cc", entries[2].FileName)
	assert.Equal(t, 2507, entries[2].Line)
	assert.Equal(t, 2462, entries[3].Line)

	entries, to, ok := ParseOverloadsChoicePrompt(overloadsPrompt1, 0)
	require.True(t, ok)
	assert.Equal(t, len(overloadsPrompt1), to)
	require.Len(t, entries, 4)
	assert.Equal(t, debugger.OverloadsChoiceEntry{
		Index:        3,
		Kind:         debugger.OverloadsChoiceLocation,
		FunctionName: "Person::overload()",
		FileName:     "fooprog.cc",
		Line:         59,
	}, entries[3])
	assert.Equal(t, "[2] Person::overload(int) at fooprog.cc:65", entries[2].String())
	assert.Equal(t, "[0] cancel", entries[0].String())
}

func TestParseOverloadsChoicePromptFail(t *testing.T) {
	_, _, ok := ParseOverloadsChoicePrompt("", 0)
	assert.False(t, ok)
	_, _, ok = ParseOverloadsChoicePrompt("no prompt here", 0)
	assert.False(t, ok)
	_, _, ok = ParseOverloadsChoicePrompt("[x] cancel", 0)
	assert.False(t, ok)

	// 没有位置信息的选择项
	entries, _, ok := ParseOverloadsChoicePrompt("[0] cancel\n[1] foo\n> ", 0)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "foo", entries[1].FunctionName)
	assert.Equal(t, "", entries[1].FileName)
}
