package poster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_SortedWithStableIDs(t *testing.T) {
	descs := Templates()
	require.Len(t, descs, 5)

	for i := 1; i < len(descs); i++ {
		assert.Less(t, descs[i-1].ID, descs[i].ID)
	}

	assert.Equal(t, "template-1", descs[0].ID)
	assert.Equal(t, "Classic", descs[0].Name)
	assert.Equal(t, "template-3", descs[2].ID)
	assert.Equal(t, "Modern", descs[2].Name)
}

func TestHasTemplate(t *testing.T) {
	assert.True(t, HasTemplate("template-1"))
	assert.True(t, HasTemplate("template-5"))
	assert.False(t, HasTemplate("template-99"))
	assert.False(t, HasTemplate(""))
}

func TestRender_UnknownIDFallsBackToDefault(t *testing.T) {
	posting := testPosting()
	style := testStyle()

	fallback := Render("nonexistent-template-id", posting, style)
	def := Render(DefaultTemplateID, posting, style)
	assert.Equal(t, def, fallback)
}

func TestRender_EmptyIDFallsBackToDefault(t *testing.T) {
	posting := testPosting()
	style := testStyle()
	assert.Equal(t, Render(DefaultTemplateID, posting, style), Render("", posting, style))
}
