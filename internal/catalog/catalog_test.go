package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/vitagotchi/internal/catalog"
	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/pkg/errors"
)

func TestCatalogListing(t *testing.T) {
	cat := catalog.New()

	assert.Len(t, cat.Heads(model.SexMale), 5)
	assert.Len(t, cat.Heads(model.SexFemale), 5)
	assert.Len(t, cat.Clothes(model.SexMale), 5)
	assert.Len(t, cat.Clothes(model.SexFemale), 5)

	// Catalog order is stable; the first male head anchors it.
	assert.Equal(t, "Head M1", cat.Heads(model.SexMale)[0].Name)
	assert.Equal(t, "head_m1.png", cat.Heads(model.SexMale)[0].File)
}

func TestCatalogPartLookup(t *testing.T) {
	cat := catalog.New()

	desc, err := cat.Part(model.PartHead, model.SexFemale, "Head F3")
	require.NoError(t, err)
	assert.Equal(t, "head_f3.png", desc.File)

	_, err = cat.Part(model.PartHead, model.SexFemale, "Head Z9")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfiguration))

	_, err = cat.Part(model.PartType("hat"), model.SexMale, "Head M1")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfiguration))
}

func TestCatalogExpressionOverrides(t *testing.T) {
	cat := catalog.New()

	// M1 has no normal-table entry but appears in the sad and sick
	// tables.
	_, ok := cat.ExpressionOverride(model.ExpressionNormal, "Head M1")
	assert.False(t, ok)
	_, ok = cat.ExpressionOverride(model.ExpressionSad, "Head M1")
	assert.True(t, ok)
	_, ok = cat.ExpressionOverride(model.ExpressionSick, "Head M1")
	assert.True(t, ok)

	// M4 is adjusted in all three tables.
	for _, expr := range []model.Expression{
		model.ExpressionNormal, model.ExpressionSad, model.ExpressionSick,
	} {
		_, ok := cat.ExpressionOverride(expr, "Head M4")
		assert.True(t, ok, "expression %s", expr)
	}
}

func TestCatalogDefaultHead(t *testing.T) {
	cat := catalog.New()

	normal := cat.DefaultHead(model.ExpressionNormal)
	assert.Equal(t, model.PartConfig{Pos: model.Position{X: 283, Y: 266}, Scale: 0.63}, normal)

	// Sad and sick defaults exist even if they coincide with normal.
	assert.NotZero(t, cat.DefaultHead(model.ExpressionSad).Scale)
	assert.NotZero(t, cat.DefaultHead(model.ExpressionSick).Scale)
}

func TestCatalogHeadFile(t *testing.T) {
	cat := catalog.New()
	d := model.PartDescriptor{Name: "Head M1", File: "head_m1.png"}

	assert.Equal(t, "head_m1.png", cat.HeadFile(d, model.ExpressionNormal))
	assert.Equal(t, "head_m1_sad.png", cat.HeadFile(d, model.ExpressionSad))
	assert.Equal(t, "head_m1_sick.png", cat.HeadFile(d, model.ExpressionSick))
}
