package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"linkline/internal/repository"
	"linkline/model"
)

// In-memory fakes behind the same interfaces the real repositories satisfy.

type fakeUsers struct {
	mu    sync.Mutex
	users map[bson.ObjectID]*model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[bson.ObjectID]*model.User{}}
}

func (f *fakeUsers) add(name, email, hash string) *model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &model.User{ID: bson.NewObjectID(), Name: name, Email: email, PasswordHash: hash}
	f.users[u.ID] = u
	return u
}

func (f *fakeUsers) Create(_ context.Context, name, email, hash string) (*model.User, error) {
	f.mu.Lock()
	for _, u := range f.users {
		if u.Email == email {
			f.mu.Unlock()
			return nil, repository.ErrDuplicateEmail
		}
	}
	f.mu.Unlock()
	return f.add(name, email, hash), nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type fakePosts struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]*model.Post
}

func newFakePosts() *fakePosts {
	return &fakePosts{posts: map[bson.ObjectID]*model.Post{}}
}

func (f *fakePosts) Insert(_ context.Context, userID bson.ObjectID, content string, imageURL *string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &model.Post{ID: bson.NewObjectID(), UserID: userID, Content: content, ImageURL: imageURL, Likes: []bson.ObjectID{}}
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePosts) FindByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePosts) UpdateContent(_ context.Context, id bson.ObjectID, content string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Content = content
	cp := *p
	return &cp, nil
}

func (f *fakePosts) Delete(_ context.Context, id bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePosts) ToggleLike(_ context.Context, id, userID bson.ObjectID) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return 0, false, repository.ErrNotFound
	}
	for i, l := range p.Likes {
		if l == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return len(p.Likes), false, nil
		}
	}
	p.Likes = append(p.Likes, userID)
	return len(p.Likes), true, nil
}

type fakeFeed struct {
	feed []model.FeedPost
	own  []model.OwnPost
}

func (f *fakeFeed) ListFeed(context.Context, bson.ObjectID) ([]model.FeedPost, error) {
	return f.feed, nil
}

func (f *fakeFeed) ListByAuthor(context.Context, bson.ObjectID) ([]model.OwnPost, error) {
	return f.own, nil
}

type fakeComments struct {
	mu      sync.Mutex
	byPost  map[bson.ObjectID][]model.CommentView
	users   *fakeUsers
	deleted []bson.ObjectID
}

func newFakeComments(users *fakeUsers) *fakeComments {
	return &fakeComments{byPost: map[bson.ObjectID][]model.CommentView{}, users: users}
}

func (f *fakeComments) Create(_ context.Context, postID, userID bson.ObjectID, text string) (*model.CommentView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users.users[userID]
	if u == nil {
		return nil, repository.ErrNotFound
	}
	cv := model.CommentView{
		ID:     bson.NewObjectID(),
		PostID: postID,
		Text:   text,
		User:   model.AuthorSummary{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL},
	}
	f.byPost[postID] = append([]model.CommentView{cv}, f.byPost[postID]...)
	return &cv, nil
}

func (f *fakeComments) ListByPost(_ context.Context, postID bson.ObjectID) ([]model.CommentView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.byPost[postID]
	if items == nil {
		items = []model.CommentView{}
	}
	return items, nil
}

func (f *fakeComments) CountByPost(_ context.Context, postID bson.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byPost[postID])), nil
}

func (f *fakeComments) DeleteByPost(_ context.Context, postID bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byPost, postID)
	f.deleted = append(f.deleted, postID)
	return nil
}

type fakeBlob struct {
	mu        sync.Mutex
	saved     []string
	removed   []string
	removeErr error
}

func (f *fakeBlob) Save(fh *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	url := "/uploads/" + fh.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeBlob) Remove(urlPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, urlPath)
	return nil
}

var errDisk = errors.New("disk gone")
