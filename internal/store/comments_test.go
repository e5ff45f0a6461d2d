package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Dcode36/post-comment-system/internal/schema"
)

func comment(id primitive.ObjectID, text string, at time.Time) schema.ResolvedComment {
	return schema.ResolvedComment{ID: id, Text: text, CreatedAt: at}
}

func reply(parent primitive.ObjectID, text string, at time.Time) schema.ResolvedComment {
	return schema.ResolvedComment{
		ID:        primitive.NewObjectID(),
		Text:      text,
		IsReply:   true,
		ReplyTo:   parent,
		CreatedAt: at,
	}
}

func TestBuildThreadEmpty(t *testing.T) {
	threads := BuildThread(nil)
	require.NotNil(t, threads)
	assert.Empty(t, threads)
}

func TestBuildThreadNestsRepliesUnderParent(t *testing.T) {
	now := time.Now()
	c1 := primitive.NewObjectID()
	c2 := primitive.NewObjectID()

	flat := []schema.ResolvedComment{
		comment(c1, "first", now),
		comment(c2, "second", now.Add(time.Minute)),
		reply(c1, "thanks", now.Add(2*time.Minute)),
		reply(c2, "appreciated", now.Add(3*time.Minute)),
		reply(c1, "also thanks", now.Add(4*time.Minute)),
	}

	threads := BuildThread(flat)
	require.Len(t, threads, 2)

	assert.Equal(t, "first", threads[0].Text)
	require.Len(t, threads[0].Replies, 2)
	assert.Equal(t, "thanks", threads[0].Replies[0].Text)
	assert.Equal(t, "also thanks", threads[0].Replies[1].Text)

	assert.Equal(t, "second", threads[1].Text)
	require.Len(t, threads[1].Replies, 1)
	assert.Equal(t, "appreciated", threads[1].Replies[0].Text)
}

func TestBuildThreadKeepsTopLevelOrder(t *testing.T) {
	now := time.Now()
	var flat []schema.ResolvedComment
	for i := 0; i < 5; i++ {
		flat = append(flat, comment(primitive.NewObjectID(), string(rune('a'+i)), now.Add(time.Duration(i)*time.Second)))
	}

	threads := BuildThread(flat)
	require.Len(t, threads, 5)
	for i, th := range threads {
		assert.Equal(t, string(rune('a'+i)), th.Text)
		assert.Empty(t, th.Replies)
	}
}

func TestBuildThreadDropsOrphanedReplies(t *testing.T) {
	now := time.Now()
	c1 := primitive.NewObjectID()

	flat := []schema.ResolvedComment{
		comment(c1, "present", now),
		reply(primitive.NewObjectID(), "orphan", now.Add(time.Minute)),
		reply(c1, "attached", now.Add(2*time.Minute)),
	}

	threads := BuildThread(flat)
	require.Len(t, threads, 1)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, "attached", threads[0].Replies[0].Text)
}

func TestBuildThreadRepliesOnly(t *testing.T) {
	flat := []schema.ResolvedComment{
		reply(primitive.NewObjectID(), "orphan one", time.Now()),
		reply(primitive.NewObjectID(), "orphan two", time.Now()),
	}
	assert.Empty(t, BuildThread(flat))
}
