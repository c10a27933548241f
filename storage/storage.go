package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"yatube/storage/db/queries"
	"yatube/storage/models"
)

var (
	// ErrSelfFollow rejects follow edges where follower and author are the
	// same user. Backed by a schema check constraint as well, so a direct
	// write cannot sneak one in either.
	ErrSelfFollow = errors.New("users cannot follow themselves")

	ErrNotFound = errors.New("record not found")

	ErrConflict = errors.New("record already exists")
)

// Manager owns every durable-state operation. It wraps the relational store
// and maps driver errors to the package error taxonomy at this boundary.
type Manager struct {
	db *gorm.DB
}

func NewManager(database *gorm.DB) *Manager {
	return &Manager{db: database}
}

func (m *Manager) Follow(ctx context.Context, followerID uint, authorID uint) error {
	if followerID == authorID {
		return ErrSelfFollow
	}
	return queries.CreateFollow(m.db.WithContext(ctx), followerID, authorID)
}

func (m *Manager) Unfollow(ctx context.Context, followerID uint, authorID uint) error {
	return queries.DeleteFollow(m.db.WithContext(ctx), followerID, authorID)
}

func (m *Manager) IsFollowing(ctx context.Context, followerID uint, authorID uint) (bool, error) {
	return queries.FollowExists(m.db.WithContext(ctx), followerID, authorID)
}

func (m *Manager) FollowedAuthors(ctx context.Context, followerID uint) ([]uint, error) {
	return queries.GetFollowedAuthorIds(m.db.WithContext(ctx), followerID)
}

// FeedPage computes the viewer's personalized page: posts by currently
// followed authors, newest first. A viewer following nobody gets an empty
// page, and so does any page past the end.
func (m *Manager) FeedPage(ctx context.Context, viewerID uint, limit int, offset int) ([]models.Post, int64, error) {
	database := m.db.WithContext(ctx)

	authorIds, err := queries.GetFollowedAuthorIds(database, viewerID)
	if err != nil {
		return nil, 0, err
	}
	total, err := queries.CountFeedPosts(database, authorIds)
	if err != nil {
		return nil, 0, err
	}
	posts, err := queries.GetFeedPosts(database, authorIds, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (m *Manager) LatestPosts(ctx context.Context, limit int, offset int) ([]models.Post, int64, error) {
	database := m.db.WithContext(ctx)

	total, err := queries.CountPosts(database)
	if err != nil {
		return nil, 0, err
	}
	posts, err := queries.GetLatestPosts(database, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (m *Manager) AuthorPosts(ctx context.Context, authorID uint, limit int, offset int) ([]models.Post, int64, error) {
	database := m.db.WithContext(ctx)

	total, err := queries.CountAuthorPosts(database, authorID)
	if err != nil {
		return nil, 0, err
	}
	posts, err := queries.GetAuthorPosts(database, authorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (m *Manager) GroupPosts(ctx context.Context, slug string, limit int, offset int) (models.Group, []models.Post, int64, error) {
	database := m.db.WithContext(ctx)

	group, err := queries.GetGroupBySlug(database, slug)
	if err != nil {
		return models.Group{}, nil, 0, mapError(err)
	}
	total, err := queries.CountGroupPosts(database, group.ID)
	if err != nil {
		return models.Group{}, nil, 0, err
	}
	posts, err := queries.GetGroupPosts(database, group.ID, limit, offset)
	if err != nil {
		return models.Group{}, nil, 0, err
	}
	return group, posts, total, nil
}

func (m *Manager) CreatePost(ctx context.Context, post *models.Post) error {
	return queries.CreatePost(m.db.WithContext(ctx), post)
}

func (m *Manager) GetPost(ctx context.Context, id uint) (models.Post, error) {
	post, err := queries.GetPost(m.db.WithContext(ctx), id)
	return post, mapError(err)
}

func (m *Manager) UpdatePost(ctx context.Context, id uint, text string, groupID *uint, image string) error {
	return queries.UpdatePost(m.db.WithContext(ctx), id, text, groupID, image)
}

func (m *Manager) DeletePost(ctx context.Context, id uint) error {
	return queries.DeletePost(m.db.WithContext(ctx), id)
}

func (m *Manager) CreateComment(ctx context.Context, comment *models.Comment) error {
	return queries.CreateComment(m.db.WithContext(ctx), comment)
}

func (m *Manager) PostComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return queries.GetPostComments(m.db.WithContext(ctx), postID)
}

func (m *Manager) CreateUser(ctx context.Context, user *models.User) error {
	return mapError(queries.CreateUser(m.db.WithContext(ctx), user))
}

func (m *Manager) GetUser(ctx context.Context, id uint) (models.User, error) {
	user, err := queries.GetUser(m.db.WithContext(ctx), id)
	return user, mapError(err)
}

func (m *Manager) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := queries.GetUserByUsername(m.db.WithContext(ctx), username)
	return user, mapError(err)
}

func (m *Manager) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := queries.GetUserByEmail(m.db.WithContext(ctx), email)
	return user, mapError(err)
}

func (m *Manager) ActivateUser(ctx context.Context, id uint) error {
	return queries.ActivateUser(m.db.WithContext(ctx), id)
}

func (m *Manager) GetGroupBySlug(ctx context.Context, slug string) (models.Group, error) {
	group, err := queries.GetGroupBySlug(m.db.WithContext(ctx), slug)
	return group, mapError(err)
}

func (m *Manager) CreateGroup(ctx context.Context, group *models.Group) error {
	return mapError(queries.CreateGroup(m.db.WithContext(ctx), group))
}

func (m *Manager) DeleteGroup(ctx context.Context, id uint) error {
	return queries.DeleteGroup(m.db.WithContext(ctx), id)
}

func (m *Manager) CreateContact(ctx context.Context, contact *models.Contact) error {
	return queries.CreateContact(m.db.WithContext(ctx), contact)
}

// DeleteNeverActivated removes accounts created before cutoff that never
// followed their activation link.
func (m *Manager) DeleteNeverActivated(ctx context.Context, cutoff time.Time) (int64, error) {
	return queries.DeleteInactiveUsersBefore(m.db.WithContext(ctx), cutoff)
}

func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
