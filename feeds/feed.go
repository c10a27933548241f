package feeds

import (
	"context"

	"yatube/storage"
)

const DefaultPageSize = 10
const MaxPageSize = 100

type QueryParams struct {
	Page int
	Size int
}

// Feed composes a viewer's personalized timeline from the follow graph.
// Pages are computed against the current graph on every call; unfollowing
// an author removes their posts from the very next page.
type Feed struct {
	storageManager *storage.Manager
}

func NewFeed(storageManager *storage.Manager) *Feed {
	return &Feed{
		storageManager: storageManager,
	}
}

func (f *Feed) GetPage(ctx context.Context, viewerID uint, params QueryParams) (Response, error) {
	params = params.normalize()

	posts, total, err := f.storageManager.FeedPage(
		ctx,
		viewerID,
		params.Size,
		(params.Page-1)*params.Size,
	)
	if err != nil {
		return Response{}, err
	}
	return NewResponse(posts, params.Page, params.Size, total), nil
}

func (p QueryParams) normalize() QueryParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}
