package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"Pulse/models"

	"gorm.io/gorm"
)

// MockStore 内存版存储，测试用，模拟 mysql + redis 的行为
// 通过 UserRepo()/PostRepo()/LikeRepo()/LikeCache() 取各仓储接口的实现
type MockStore struct {
	Users  map[int64]*models.Users
	Posts  map[int64]*models.Post
	Likes  map[[2]int64]*models.Like // key: (post_id, user_id)
	Counts map[int64]int64           // 点赞数缓存

	ShouldFail bool // 模拟存储故障
}

func NewMockStore() *MockStore {
	return &MockStore{
		Users:  make(map[int64]*models.Users),
		Posts:  make(map[int64]*models.Post),
		Likes:  make(map[[2]int64]*models.Like),
		Counts: make(map[int64]int64),
	}
}

func (m *MockStore) UserRepo() UserRepository { return &mockUserRepo{m} }
func (m *MockStore) PostRepo() PostRepository { return &mockPostRepo{m} }
func (m *MockStore) LikeRepo() LikeRepository { return &mockLikeRepo{m} }
func (m *MockStore) LikeCache() LikeCountCache { return &mockLikeCache{m} }

var errMockFail = errors.New("mock: storage failure")

// --- UserRepository ---

type mockUserRepo struct{ *MockStore }

func (m *mockUserRepo) Create(ctx context.Context, user *models.Users) error {
	if m.ShouldFail {
		return errMockFail
	}
	for _, u := range m.Users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.Users[user.Id] = user
	return nil
}

func (m *mockUserRepo) FindById(ctx context.Context, id any) (*models.Users, error) {
	if m.ShouldFail {
		return nil, errMockFail
	}
	user, ok := m.Users[id.(int64)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context, order string) ([]*models.Users, error) {
	if m.ShouldFail {
		return nil, errMockFail
	}
	users := make([]*models.Users, 0, len(m.Users))
	for _, u := range m.Users {
		cp := *u
		users = append(users, &cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Id < users[j].Id })
	return users, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	for _, u := range m.Users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) IsUsernameExist(ctx context.Context, username string) bool {
	_, err := m.FindByUsername(ctx, username)
	return err == nil
}

func (m *mockUserRepo) IsEmailExist(ctx context.Context, email string) bool {
	for _, u := range m.Users {
		if u.Email == email {
			return true
		}
	}
	return false
}

func (m *mockUserRepo) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	user, ok := m.Users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range data {
		switch k {
		case "username":
			user.Username = v.(string)
		case "email":
			user.Email = v.(string)
		case "first_name":
			user.FirstName = v.(string)
		case "last_name":
			user.LastName = v.(string)
		case "password":
			user.Password = v.(string)
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (m *mockUserRepo) DeleteCascade(ctx context.Context, id int64) error {
	if _, ok := m.Users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for key, like := range m.Likes {
		if like.UserID == id {
			delete(m.Likes, key)
			continue
		}
		if post, ok := m.Posts[like.PostID]; ok && post.UserID == id {
			delete(m.Likes, key)
		}
	}
	for pid, post := range m.Posts {
		if post.UserID == id {
			delete(m.Posts, pid)
		}
	}
	delete(m.Users, id)
	return nil
}

// --- PostRepository ---

type mockPostRepo struct{ *MockStore }

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	if m.ShouldFail {
		return errMockFail
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	m.Posts[post.Id] = post
	return nil
}

func (m *mockPostRepo) FindById(ctx context.Context, id any) (*models.Post, error) {
	if m.ShouldFail {
		return nil, errMockFail
	}
	post, ok := m.Posts[id.(int64)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *post
	return &cp, nil
}

func (m *mockPostRepo) ListByUpdated(ctx context.Context) ([]*models.Post, error) {
	if m.ShouldFail {
		return nil, errMockFail
	}
	posts := make([]*models.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		cp := *p
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].UpdatedAt.Equal(posts[j].UpdatedAt) {
			return posts[i].UpdatedAt.After(posts[j].UpdatedAt)
		}
		return posts[i].Id > posts[j].Id
	})
	return posts, nil
}

func (m *mockPostRepo) UpdateById(ctx context.Context, postID int64, data map[string]any) error {
	post, ok := m.Posts[postID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range data {
		switch k {
		case "title":
			post.Title = v.(string)
		case "body":
			post.Body = v.(string)
		}
	}
	post.UpdatedAt = time.Now()
	return nil
}

func (m *mockPostRepo) DeleteWithLikes(ctx context.Context, postID int64) error {
	for key := range m.Likes {
		if key[0] == postID {
			delete(m.Likes, key)
		}
	}
	delete(m.Posts, postID)
	return nil
}

// --- LikeRepository ---

type mockLikeRepo struct{ *MockStore }

func (m *mockLikeRepo) InsertIfAbsent(ctx context.Context, postID, userID int64) (bool, error) {
	if m.ShouldFail {
		return false, errMockFail
	}
	key := [2]int64{postID, userID}
	if _, ok := m.Likes[key]; ok {
		return false, nil
	}
	m.Likes[key] = &models.Like{
		Id:        int64(len(m.Likes) + 1),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return true, nil
}

func (m *mockLikeRepo) DeleteIfPresent(ctx context.Context, postID, userID int64) (bool, error) {
	if m.ShouldFail {
		return false, errMockFail
	}
	key := [2]int64{postID, userID}
	if _, ok := m.Likes[key]; !ok {
		return false, nil
	}
	delete(m.Likes, key)
	return true, nil
}

func (m *mockLikeRepo) CountByPostID(ctx context.Context, postID int64) (int64, error) {
	var count int64
	for key := range m.Likes {
		if key[0] == postID {
			count++
		}
	}
	return count, nil
}

func (m *mockLikeRepo) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	for _, id := range postIDs {
		count, _ := m.CountByPostID(ctx, id)
		if count > 0 {
			counts[id] = count
		}
	}
	return counts, nil
}

// --- LikeCountCache ---

type mockLikeCache struct{ *MockStore }

func (m *mockLikeCache) Get(ctx context.Context, postID int64) (int64, bool) {
	count, ok := m.Counts[postID]
	return count, ok
}

func (m *mockLikeCache) Set(ctx context.Context, postID int64, count int64) error {
	m.Counts[postID] = count
	return nil
}

func (m *mockLikeCache) Del(ctx context.Context, postID int64) error {
	delete(m.Counts, postID)
	return nil
}
