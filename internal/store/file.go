package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"user-admin-panel/internal/model"
	"user-admin-panel/internal/worker"
)

// FileStore 以單一 JSON 檔案保存整份 UserList
// 每次操作都是完整的 read-modify-write 循環
// 所有操作經由序列化佇列執行，避免並發寫入互相覆蓋
type FileStore struct {
	path  string
	queue worker.Queue
}

// NewFileStore returns a store persisting to the JSON file at path.
// The file is created on the first successful CreateUser.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, queue: worker.NewQueue()}
}

// Close stops the store's queue. Pending operations finish first.
func (s *FileStore) Close() {
	s.queue.Stop()
}

func (s *FileStore) load() (model.UserList, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var list model.UserList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return list, nil
}

func (s *FileStore) save(list model.UserList) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// CreateUser 指派 id = 目前清單長度，附加到尾端後整份存回
// 檔案不存在時視為空清單，存檔時一併建立
func (s *FileStore) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	var created *model.User
	var opErr error
	s.queue.Do(func() {
		list, err := s.load()
		if err != nil && !os.IsNotExist(err) {
			opErr = fmt.Errorf("CreateUser: %w", err)
			return
		}
		u.ID = len(list)
		list = append(list, *u)
		if err := s.save(list); err != nil {
			opErr = fmt.Errorf("CreateUser: %w", err)
			return
		}
		created = u
	})
	return created, opErr
}

// ListUsers 回傳整份清單；檔案不存在時回傳空清單而非錯誤
func (s *FileStore) ListUsers(ctx context.Context) (model.UserList, error) {
	var list model.UserList
	var opErr error
	s.queue.Do(func() {
		l, err := s.load()
		if err != nil {
			if os.IsNotExist(err) {
				list = model.UserList{}
				return
			}
			opErr = fmt.Errorf("ListUsers: %w", err)
			return
		}
		list = l
	})
	return list, opErr
}

// UpdateUser 覆寫位置 id 上除了 ID 以外的所有欄位
// id 超出 [0, len) 時回傳 ErrNotFound，檔案維持原狀
func (s *FileStore) UpdateUser(ctx context.Context, id int, u *model.User) error {
	var opErr error
	s.queue.Do(func() {
		list, err := s.load()
		if err != nil {
			opErr = fmt.Errorf("UpdateUser: %w", err)
			return
		}
		if id < 0 || id >= len(list) {
			opErr = fmt.Errorf("UpdateUser: %w", ErrNotFound)
			return
		}
		list[id].Email = u.Email
		list[id].Name = u.Name
		list[id].Lastname = u.Lastname
		list[id].Password = u.Password
		list[id].Phone = u.Phone
		list[id].Age = u.Age
		if err := s.save(list); err != nil {
			opErr = fmt.Errorf("UpdateUser: %w", err)
		}
	})
	return opErr
}

// DeleteUser 移除位置 id 上的資料並重新編號
// 刪除點之後的所有 id 都會往前遞補，舊 id 隨即失效
func (s *FileStore) DeleteUser(ctx context.Context, id int) error {
	var opErr error
	s.queue.Do(func() {
		list, err := s.load()
		if err != nil {
			opErr = fmt.Errorf("DeleteUser: %w", err)
			return
		}
		if id < 0 || id >= len(list) {
			opErr = fmt.Errorf("DeleteUser: %w", ErrNotFound)
			return
		}
		list = append(list[:id], list[id+1:]...)
		for i := range list {
			list[i].ID = i
		}
		if err := s.save(list); err != nil {
			opErr = fmt.Errorf("DeleteUser: %w", err)
		}
	})
	return opErr
}
