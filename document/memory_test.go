package document

import (
	"testing"

	"github.com/rickchristie/apphook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_NewIsEmpty(t *testing.T) {
	doc := NewMemory(false)

	name, err := doc.FileName()

	assert.Empty(t, name)
	assert.ErrorIs(t, err, apphook.ErrNoCurrentFile)
	assert.EqualError(t, err, "file name: no current file")
	assert.True(t, doc.IsEmpty())
	assert.False(t, doc.HasModification())
	assert.False(t, doc.HasGUI())
}

func TestMemory_OpenEditSave(t *testing.T) {
	doc := NewMemory(true)

	require.NoError(t, doc.Open("/shots/010.ma", "a\n"))
	name, err := doc.FileName()
	require.NoError(t, err)
	assert.Equal(t, "/shots/010.ma", name)
	assert.False(t, doc.IsEmpty())
	assert.False(t, doc.HasModification())

	doc.Edit("a\nb\n")
	assert.True(t, doc.HasModification())

	require.NoError(t, doc.Save())
	assert.False(t, doc.HasModification())
	assert.Equal(t, "a\nb\n", doc.Content())
}

func TestMemory_EditBackToSavedIsUnmodified(t *testing.T) {
	doc := NewMemory(false)
	require.NoError(t, doc.Open("f", "x"))

	doc.Edit("y")
	doc.Edit("x")

	assert.False(t, doc.HasModification())
}

func TestMemory_SaveWithoutPath(t *testing.T) {
	doc := NewMemory(false)
	doc.Edit("draft")

	err := doc.Save()

	assert.ErrorIs(t, err, apphook.ErrNoCurrentFile)
	assert.True(t, doc.HasModification())
	assert.True(t, doc.IsEmpty())

	require.NoError(t, doc.SaveAs("/tmp/draft.ma"))
	assert.False(t, doc.IsEmpty())
	assert.False(t, doc.HasModification())
}

func TestMemory_EmptyPaths(t *testing.T) {
	doc := NewMemory(false)

	assert.Error(t, doc.Open("", "x"))
	assert.Error(t, doc.SaveAs(""))
	assert.True(t, doc.IsEmpty())
}

func TestMemory_Close(t *testing.T) {
	doc := NewMemory(false)
	require.NoError(t, doc.Open("f", "x"))
	doc.Edit("y")

	doc.Close()

	assert.True(t, doc.IsEmpty())
	assert.False(t, doc.HasModification())
	_, err := doc.FileName()
	assert.ErrorIs(t, err, apphook.ErrNoCurrentFile)
}

func TestMemory_Diff(t *testing.T) {
	doc := NewMemory(false)
	require.NoError(t, doc.Open("scene.ma", "one\ntwo\n"))

	diff, err := doc.Diff()
	require.NoError(t, err)
	assert.Empty(t, diff)

	doc.Edit("one\nthree\n")
	diff, err = doc.Diff()
	require.NoError(t, err)

	assert.Contains(t, diff, "--- scene.ma (saved)")
	assert.Contains(t, diff, "+++ scene.ma")
	assert.Contains(t, diff, "-two\n")
	assert.Contains(t, diff, "+three\n")
}

func TestMemory_SetGUI(t *testing.T) {
	doc := NewMemory(false)
	doc.SetGUI(true)

	assert.True(t, doc.HasGUI())
}
