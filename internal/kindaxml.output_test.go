package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_FinishWithNoSpansYieldsSingleSegment(t *testing.T) {
	b := NewBuilder()
	b.EmitText("hello world")

	text, segments, markers := b.Finish()
	assert.Equal(t, "hello world", text)
	require.Len(t, segments, 1)
	assert.Equal(t, "hello world", segments[0].Text)
	assert.Empty(t, segments[0].Annotations)
	assert.Empty(t, markers)
}

func TestBuilder_AnnotateRangeSplitsSegments(t *testing.T) {
	b := NewBuilder()
	b.EmitText("abc def ghi")
	b.AnnotateRange(4, 7, Annotation{Tag: "x"})

	_, segments, _ := b.Finish()
	require.Len(t, segments, 3)
	assert.Equal(t, "abc ", segments[0].Text)
	assert.Equal(t, "def", segments[1].Text)
	assert.Equal(t, []Annotation{{Tag: "x"}}, segments[1].Annotations)
	assert.Equal(t, " ghi", segments[2].Text)
}

func TestBuilder_OverlappingSpansBindInOrder(t *testing.T) {
	b := NewBuilder()
	b.EmitText("abcdef")
	b.AnnotateRange(0, 4, Annotation{Tag: "outer"})
	b.AnnotateRange(2, 6, Annotation{Tag: "inner"})

	_, segments, _ := b.Finish()
	require.Len(t, segments, 3)
	assert.Equal(t, "ab", segments[0].Text)
	assert.Equal(t, []Annotation{{Tag: "outer"}}, segments[0].Annotations)
	assert.Equal(t, "cd", segments[1].Text)
	assert.Equal(t, []Annotation{{Tag: "outer"}, {Tag: "inner"}}, segments[1].Annotations)
	assert.Equal(t, "ef", segments[2].Text)
	assert.Equal(t, []Annotation{{Tag: "inner"}}, segments[2].Annotations)
}

func TestBuilder_EmptyRangeRecordsNoSpan(t *testing.T) {
	b := NewBuilder()
	b.EmitText("abc")
	b.AnnotateRange(1, 1, Annotation{Tag: "x"})

	_, segments, _ := b.Finish()
	require.Len(t, segments, 1)
	assert.Empty(t, segments[0].Annotations)
}

func TestBuilder_MarkersDoNotAffectSegmentation(t *testing.T) {
	b := NewBuilder()
	b.EmitText("abc")
	b.EmitMarker(Annotation{Tag: "todo"})
	b.EmitText("def")

	text, segments, markers := b.Finish()
	assert.Equal(t, "abcdef", text)
	require.Len(t, segments, 1)
	require.Len(t, markers, 1)
	assert.Equal(t, 3, markers[0].Pos)
}

func TestBuilder_EmptyBuilderYieldsNoSegments(t *testing.T) {
	b := NewBuilder()
	text, segments, markers := b.Finish()
	assert.Equal(t, "", text)
	assert.Empty(t, segments)
	assert.Empty(t, markers)
}
