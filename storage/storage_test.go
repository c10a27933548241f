package storage_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yatube/storage"
	"yatube/storage/db"
	"yatube/storage/models"
)

func newTestManager(t *testing.T) *storage.Manager {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	return storage.NewManager(database)
}

func createUser(t *testing.T, manager *storage.Manager, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, manager.CreateUser(context.Background(), &user))
	return user
}

func createPost(t *testing.T, manager *storage.Manager, author models.User, text string, createdAt time.Time) models.Post {
	t.Helper()

	post := models.Post{
		Text:      text,
		AuthorID:  author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, manager.CreatePost(context.Background(), &post))
	return post
}

func TestFollowIsIdempotent(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")

	require.NoError(t, manager.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, manager.Follow(ctx, alice.ID, bob.ID))

	authors, err := manager.FollowedAuthors(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []uint{bob.ID}, authors)
}

func TestFollowSelfIsRejected(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	alice := createUser(t, manager, "alice")

	err := manager.Follow(ctx, alice.ID, alice.ID)
	require.ErrorIs(t, err, storage.ErrSelfFollow)

	following, err := manager.IsFollowing(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, following)
}

func TestUnfollowIsIdempotent(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")

	require.NoError(t, manager.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, manager.Unfollow(ctx, alice.ID, bob.ID))

	following, err := manager.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, following)

	// A second unfollow on the absent edge is a no-op, not an error.
	require.NoError(t, manager.Unfollow(ctx, alice.ID, bob.ID))
}

func TestFeedContainsOnlyFollowedAuthorsNewestFirst(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")
	carol := createUser(t, manager, "carol")

	now := time.Now()
	createPost(t, manager, alice, "from alice", now.Add(-3*time.Hour))
	older := createPost(t, manager, bob, "older from bob", now.Add(-2*time.Hour))
	newer := createPost(t, manager, bob, "newer from bob", now.Add(-1*time.Hour))

	require.NoError(t, manager.Follow(ctx, carol.ID, bob.ID))

	posts, total, err := manager.FeedPage(ctx, carol.ID, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, posts, 2)
	require.Equal(t, newer.ID, posts[0].ID)
	require.Equal(t, older.ID, posts[1].ID)
}

func TestFeedScenarioAliceBobCarol(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")
	carol := createUser(t, manager, "carol")

	p1 := createPost(t, manager, bob, "P1", time.Now())
	require.NoError(t, manager.Follow(ctx, carol.ID, bob.ID))

	carolPosts, _, err := manager.FeedPage(ctx, carol.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, carolPosts, 1)
	require.Equal(t, p1.ID, carolPosts[0].ID)

	alicePosts, total, err := manager.FeedPage(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	require.Empty(t, alicePosts)
	require.EqualValues(t, 0, total)
}

func TestFeedIsEmptyWithoutFollows(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")
	createPost(t, manager, bob, "hello", time.Now())

	for _, offset := range []int{0, 10, 100} {
		posts, total, err := manager.FeedPage(ctx, alice.ID, 10, offset)
		require.NoError(t, err)
		require.Empty(t, posts)
		require.EqualValues(t, 0, total)
	}
}

func TestUnfollowRemovesFuturePostsFromFeed(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")

	require.NoError(t, manager.Follow(ctx, alice.ID, bob.ID))
	createPost(t, manager, bob, "while followed", time.Now())
	require.NoError(t, manager.Unfollow(ctx, alice.ID, bob.ID))
	createPost(t, manager, bob, "after unfollow", time.Now())

	posts, total, err := manager.FeedPage(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	require.Empty(t, posts)
	require.EqualValues(t, 0, total)
}

func TestFeedPaginationBoundary(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")
	require.NoError(t, manager.Follow(ctx, alice.ID, bob.ID))

	now := time.Now()
	for i := 0; i < 13; i++ {
		createPost(t, manager, bob, fmt.Sprintf("post %d", i), now.Add(time.Duration(i)*time.Minute))
	}

	page1, total, err := manager.FeedPage(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 13, total)
	require.Len(t, page1, 10)

	page2, _, err := manager.FeedPage(ctx, alice.ID, 10, 10)
	require.NoError(t, err)
	require.Len(t, page2, 3)

	page3, _, err := manager.FeedPage(ctx, alice.ID, 10, 20)
	require.NoError(t, err)
	require.Empty(t, page3)
}

func TestDeleteGroupDetachesPosts(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	bob := createUser(t, manager, "bob")

	group := models.Group{Title: "Go", Slug: "go", Description: "gophers"}
	require.NoError(t, manager.CreateGroup(ctx, &group))

	post := models.Post{Text: "in group", AuthorID: bob.ID, GroupID: &group.ID}
	require.NoError(t, manager.CreatePost(ctx, &post))

	require.NoError(t, manager.DeleteGroup(ctx, group.ID))

	_, err := manager.GetGroupBySlug(ctx, "go")
	require.ErrorIs(t, err, storage.ErrNotFound)

	orphaned, err := manager.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.Nil(t, orphaned.GroupID)
}

func TestDuplicateUsernameIsConflict(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()
	createUser(t, manager, "alice")

	dup := models.User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "x",
	}
	err := manager.CreateUser(ctx, &dup)
	require.ErrorIs(t, err, storage.ErrConflict)
}

func TestDeleteNeverActivated(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	stale := models.User{
		Username:     "ghost",
		Email:        "ghost@example.com",
		PasswordHash: "x",
		IsActive:     false,
		CreatedAt:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, manager.CreateUser(ctx, &stale))
	active := createUser(t, manager, "alice")

	deleted, err := manager.DeleteNeverActivated(ctx, time.Now().Add(-10*time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	_, err = manager.GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = manager.GetUser(ctx, active.ID)
	require.NoError(t, err)
}
