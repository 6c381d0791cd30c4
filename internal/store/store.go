package store

import (
	"context"
	"errors"

	"user-admin-panel/internal/model"
)

// ErrNotFound 代表指定的使用者 ID 不在目前清單範圍內
var ErrNotFound = errors.New("user not found")

// UserStore 定義使用者清單的存取介面
// 方便測試時替換 FakeStore 實作
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	ListUsers(ctx context.Context) (model.UserList, error)
	UpdateUser(ctx context.Context, id int, u *model.User) error
	DeleteUser(ctx context.Context, id int) error
	Close()
}

type FakeStore struct {
	CreateUserFn func(ctx context.Context, u *model.User) (*model.User, error)
	ListUsersFn  func(ctx context.Context) (model.UserList, error)
	UpdateUserFn func(ctx context.Context, id int, u *model.User) error
	DeleteUserFn func(ctx context.Context, id int) error
	CloseFn      func()
}

// CreateUser 執行 Fake 設定或 panic
func (f *FakeStore) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	if f.CreateUserFn != nil {
		return f.CreateUserFn(ctx, u)
	}
	panic("unexpected CreateUser")
}

// ListUsers 執行 Fake 設定或 panic
func (f *FakeStore) ListUsers(ctx context.Context) (model.UserList, error) {
	if f.ListUsersFn != nil {
		return f.ListUsersFn(ctx)
	}
	panic("unexpected ListUsers")
}

// UpdateUser 執行 Fake 設定或 panic
func (f *FakeStore) UpdateUser(ctx context.Context, id int, u *model.User) error {
	if f.UpdateUserFn != nil {
		return f.UpdateUserFn(ctx, id, u)
	}
	panic("unexpected UpdateUser")
}

// DeleteUser 執行 Fake 設定或 panic
func (f *FakeStore) DeleteUser(ctx context.Context, id int) error {
	if f.DeleteUserFn != nil {
		return f.DeleteUserFn(ctx, id)
	}
	panic("unexpected DeleteUser")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeStore) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
