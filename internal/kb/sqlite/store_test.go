package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kb-app/internal/kb"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(path)
	require.NoError(t, err, "Open")
	t.Cleanup(func() {
		_ = store.Close()
	})

	require.NoError(t, store.InitSchema(context.Background()), "InitSchema")
	return store
}

func countRows(t *testing.T, store *Store, table string) int {
	t.Helper()

	var n int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestInitSchemaIdempotent(t *testing.T) {
	store := newTestStore(t)

	// Second run against the same file must be a no-op.
	require.NoError(t, store.InitSchema(context.Background()))
}

func TestAddContentCreatesLinkedRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.AddContent(ctx, kb.Entry{Topic: "T", Subtopic: "S", Content: "body"})
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, store, "topic"))
	assert.Equal(t, 1, countRows(t, store, "sub_topic"))
	assert.Equal(t, 1, countRows(t, store, "content"))

	text, err := store.ContentText(ctx, "T", "S")
	require.NoError(t, err)
	assert.Equal(t, "body", text)
}

func TestAddContentReusesExistingTopic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "T", Subtopic: "S1", Content: "one"}))
	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "T", Subtopic: "S2", Content: "two"}))

	assert.Equal(t, 1, countRows(t, store, "topic"))
	assert.Equal(t, 2, countRows(t, store, "sub_topic"))
}

func TestAddContentDuplicateSubtopicAcrossTopics(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "T1", Subtopic: "S", Content: "one"}))

	// sub_topic_name is unique across the whole schema, so the same name
	// under a different topic must fail at the subtopic step.
	err := store.AddContent(ctx, kb.Entry{Topic: "T2", Subtopic: "S", Content: "two"})
	require.Error(t, err)

	var addErr *kb.AddError
	require.ErrorAs(t, err, &addErr)
	assert.Equal(t, kb.StepSubtopic, addErr.Step)

	// The flow is non-transactional: the T2 topic row is left behind, but no
	// second content row exists.
	assert.Equal(t, 2, countRows(t, store, "topic"))
	assert.Equal(t, 1, countRows(t, store, "content"))
}

func TestContentTextNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ContentText(context.Background(), "missing", "missing")
	assert.True(t, errors.Is(err, kb.ErrContentNotFound), "want ErrContentNotFound, got %v", err)
}

func TestContentTextReturnsFirstRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "T", Subtopic: "S", Content: "first"}))

	// A second content row for the same subtopic, inserted directly since the
	// add flow would fail on the duplicate subtopic insert.
	_, err := store.db.ExecContext(
		ctx,
		`INSERT INTO content (content_text, sub_topic_id)
		 SELECT 'second', sub_topic_id FROM sub_topic WHERE sub_topic_name = 'S'`,
	)
	require.NoError(t, err)

	text, err := store.ContentText(ctx, "T", "S")
	require.NoError(t, err)
	assert.Equal(t, "first", text)
}

func TestTopicIndexOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "zebra", Subtopic: "z-second", Content: "x"}))
	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "apple", Subtopic: "a-only", Content: "x"}))
	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "zebra", Subtopic: "a-first", Content: "x"}))

	index, err := store.TopicIndex(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "zebra"}, index.Topics)
	// Subtopics keep insertion order, not alphabetical.
	assert.Equal(t, []string{"z-second", "a-first"}, index.Subtopics["zebra"])
}

func TestTopicIndexIncludesTopicWithoutSubtopics(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx, `INSERT INTO topic (topic_name) VALUES ('bare')`)
	require.NoError(t, err)

	index, err := store.TopicIndex(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"bare"}, index.Topics)
	assert.Empty(t, index.Subtopics["bare"])
}

func TestSubtopicsForTopic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "T", Subtopic: "S1", Content: "x"}))
	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "T", Subtopic: "S2", Content: "x"}))

	subtopics, err := store.SubtopicsForTopic(ctx, "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2"}, subtopics)

	// An unknown topic is indistinguishable from one with zero subtopics.
	subtopics, err = store.SubtopicsForTopic(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, subtopics)
}

func TestTopicNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "T1", Subtopic: "S1", Content: "x"}))
	require.NoError(t, store.AddContent(ctx, kb.Entry{Topic: "T2", Subtopic: "S2", Content: "x"}))

	names, err := store.TopicNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"T1", "T2"}, names)
}
