package feeds_test

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

	"yatube/feeds"
	"yatube/storage"
	"yatube/storage/db"
	"yatube/storage/models"
)

func newTestFeed(t *testing.T) (*feeds.Feed, *storage.Manager) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	manager := storage.NewManager(database)
	return feeds.NewFeed(manager), manager
}

func seedUser(t *testing.T, manager *storage.Manager, username string) models.User {
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

func TestGetPagePaginationMetadata(t *testing.T) {
	feed, manager := newTestFeed(t)
	ctx := context.Background()
	alice := seedUser(t, manager, "alice")
	bob := seedUser(t, manager, "bob")
	require.NoError(t, manager.Follow(ctx, alice.ID, bob.ID))

	now := time.Now()
	for i := 0; i < 13; i++ {
		post := models.Post{
			Text:      fmt.Sprintf("post %d", i),
			AuthorID:  bob.ID,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, manager.CreatePost(ctx, &post))
	}

	page1, err := feed.GetPage(ctx, alice.ID, feeds.QueryParams{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, page1.Posts, 10)
	require.Equal(t, 1, page1.Page)
	require.Equal(t, 10, page1.PageSize)
	require.Equal(t, 2, page1.TotalPages)
	require.EqualValues(t, 13, page1.TotalPosts)
	require.Equal(t, "post 12", page1.Posts[0].Text)

	page2, err := feed.GetPage(ctx, alice.ID, feeds.QueryParams{Page: 2, Size: 10})
	require.NoError(t, err)
	require.Len(t, page2.Posts, 3)
	require.Equal(t, "post 0", page2.Posts[2].Text)

	// A page past the end is empty, not an error.
	page3, err := feed.GetPage(ctx, alice.ID, feeds.QueryParams{Page: 3, Size: 10})
	require.NoError(t, err)
	require.Empty(t, page3.Posts)
	require.Equal(t, 2, page3.TotalPages)
}

func TestGetPageNormalizesParams(t *testing.T) {
	feed, manager := newTestFeed(t)
	ctx := context.Background()
	alice := seedUser(t, manager, "alice")

	response, err := feed.GetPage(ctx, alice.ID, feeds.QueryParams{Page: -1, Size: 100000})
	require.NoError(t, err)
	require.Equal(t, 1, response.Page)
	require.Equal(t, feeds.MaxPageSize, response.PageSize)
	require.Empty(t, response.Posts)
}

func TestGetPageSerializesAuthorAndGroup(t *testing.T) {
	feed, manager := newTestFeed(t)
	ctx := context.Background()
	alice := seedUser(t, manager, "alice")
	bob := seedUser(t, manager, "bob")
	require.NoError(t, manager.Follow(ctx, alice.ID, bob.ID))

	group := models.Group{Title: "Go", Slug: "go"}
	require.NoError(t, manager.CreateGroup(ctx, &group))
	post := models.Post{Text: "hi", AuthorID: bob.ID, GroupID: &group.ID}
	require.NoError(t, manager.CreatePost(ctx, &post))

	response, err := feed.GetPage(ctx, alice.ID, feeds.QueryParams{})
	require.NoError(t, err)
	require.Len(t, response.Posts, 1)
	require.Equal(t, "bob", response.Posts[0].Author)
	require.Equal(t, "go", response.Posts[0].Group)
}
