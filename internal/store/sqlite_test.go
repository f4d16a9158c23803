package store

import (
	"context"
	"path/filepath"
	"testing"

	"resonate/internal/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DraftStore {
	t.Helper()
	s, err := NewDraftStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDraftStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := &Draft{
		Name:     "acme-2026",
		Standard: "GRI",
		Answers: questionnaire.AnswerMap{
			"company_name": "Acme",
			"industry":     "Tech",
		},
	}
	require.NoError(t, s.Save(ctx, d))
	assert.NotEmpty(t, d.ID, "save assigns an id")

	loaded, err := s.Load(ctx, "acme-2026")
	require.NoError(t, err)
	assert.Equal(t, d.ID, loaded.ID)
	assert.Equal(t, "GRI", loaded.Standard)
	assert.Equal(t, d.Answers, loaded.Answers)
}

func TestDraftStore_SaveOverwritesByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &Draft{
		Name:    "acme",
		Answers: questionnaire.AnswerMap{"industry": "Retail"},
	}))
	require.NoError(t, s.Save(ctx, &Draft{
		Name:    "acme",
		Answers: questionnaire.AnswerMap{"industry": "Energy"},
	}))

	loaded, err := s.Load(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Energy", loaded.Answers["industry"])

	drafts, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestDraftStore_LoadMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDraftStore_ListAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &Draft{Name: "a", Answers: questionnaire.AnswerMap{}}))
	require.NoError(t, s.Save(ctx, &Draft{Name: "b", Answers: questionnaire.AnswerMap{}}))

	drafts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"), "deleting a missing draft is not an error")

	drafts, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "b", drafts[0].Name)
}
