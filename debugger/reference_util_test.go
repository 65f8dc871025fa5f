package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableReference(t *testing.T) {
	refs := NewReferenceUtil()
	item := NewVariable("item", "", "struct Item")
	item.AppendMember(NewVariable("id", "1", ""))

	ref, err := refs.CreateVariableReference(NewStructReferenceStruct(0, "item"), item)
	require.Nil(t, err)
	assert.Equal(t, 1100, ref)
	// 同一个路径返回同一个引用
	again, err := refs.CreateVariableReference(NewStructReferenceStruct(0, "item"), item)
	require.Nil(t, err)
	assert.Equal(t, ref, again)

	refStruct, variable, err := refs.ParseVariableReference(ref)
	require.Nil(t, err)
	assert.Equal(t, "item", refStruct.VariableName)
	assert.Same(t, item, variable)

	refs.Reset()
	_, _, err = refs.ParseVariableReference(ref)
	assert.NotNil(t, err)
}

func TestScopeReference(t *testing.T) {
	refs := NewReferenceUtil()
	ref := refs.GetScopesReference(2)
	assert.True(t, refs.CheckIsScopeReference(ref))
	assert.False(t, refs.CheckIsScopeReference(1100))
	assert.Equal(t, 2, refs.GetFrameIDByScopeReference(ref))
}

func TestGetFieldReferenceStruct(t *testing.T) {
	root := NewStructReferenceStruct(1, "list")
	element := GetFieldReferenceStruct(root, "[0]")
	assert.Equal(t, "[0]", element.FieldPath)
	field := GetFieldReferenceStruct(element, "next")
	assert.Equal(t, "[0].next", field.FieldPath)
	assert.Equal(t, 1, field.FrameId)
	assert.Equal(t, "list", field.VariableName)
}

func TestNewDapVariables(t *testing.T) {
	refs := NewReferenceUtil()
	item := NewVariable("item", "", "struct Item")
	item.AppendMember(NewVariable("id", "1", "int"))
	count := NewVariable("count", "3", "int")

	variables, err := NewDapVariables(0, []*Variable{item, count}, nil, refs)
	require.Nil(t, err)
	require.Len(t, variables, 2)
	assert.Equal(t, "{...}", variables[0].Value)
	assert.Equal(t, 1100, variables[0].VariablesReference)
	assert.Equal(t, 1, variables[0].NamedVariables)
	assert.Equal(t, 0, variables[1].VariablesReference)

	refStruct, variable, err := refs.ParseVariableReference(variables[0].VariablesReference)
	require.Nil(t, err)
	members, err := NewDapVariables(0, variable.Members, refStruct, refs)
	require.Nil(t, err)
	assert.Equal(t, "id", members[0].Name)
	assert.Equal(t, "1", members[0].Value)
}

func TestNewStoppedEvent(t *testing.T) {
	event := NewStoppedEvent(&StopRecord{
		Reason:           "breakpoint-hit",
		HasFrame:         true,
		Frame:            Frame{FunctionName: "main", FullName: "/tmp/main.c", Line: 5},
		ThreadID:         1,
		BreakpointNumber: "2",
	})
	assert.Equal(t, "stopped", event.Event.Event)
	assert.Equal(t, "breakpoint", event.Body.Reason)
	assert.Equal(t, []int{2}, event.Body.HitBreakpointIds)
	assert.Equal(t, "main at /tmp/main.c:5", event.Body.Description)

	frame := NewStackFrame(Frame{Level: 1, FunctionName: "add", File: "add.c", FullName: "/src/add.c", Line: 3})
	assert.Equal(t, 1, frame.Id)
	assert.Equal(t, "add.c", frame.Source.Name)
	assert.Equal(t, "/src/add.c", frame.Source.Path)
	assert.Nil(t, NewStackFrame(Frame{Address: "0x1"}).Source)
}
