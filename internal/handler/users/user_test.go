package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"user-admin-panel/internal/model"
	"user-admin-panel/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/server/new_user", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newListCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/server/list_of_users", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newEditCtx(e *echo.Echo, userData string) (echo.Context, *httptest.ResponseRecorder) {
	target := "/server/edit_user/"
	if userData != "" {
		target += "?user_data=" + url.QueryEscape(userData)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newDeleteCtx(e *echo.Echo, val string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/server/delete_user/"+val, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/server/delete_user/:id")
	c.SetParamNames("id")
	c.SetParamValues(val)
	return c, rec
}

const validUserJSON = `{"email":"alice@example.com","name":"Alice","lastname":"Smith","password":"Secret123!","phone":5551234,"age":30}`

func TestCreateUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("validate error", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, validUserJSON)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "v")
	})

	t.Run("store error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		s := &store.FakeStore{
			CreateUserFn: func(context.Context, *model.User) (*model.User, error) {
				return nil, errors.New("c")
			},
		}
		ctx, rec := newJSONCtx(e, validUserJSON)
		err := CreateUserHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		e.Validator = &stubValidator{}
		var got *model.User
		s := &store.FakeStore{
			CreateUserFn: func(_ context.Context, u *model.User) (*model.User, error) {
				got = u
				u.ID = 0
				return u, nil
			},
		}
		ctx, rec := newJSONCtx(e, validUserJSON)
		err := CreateUserHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Body.String())
		require.Equal(t, "alice@example.com", got.Email)
		require.Equal(t, "Alice", got.Name)
		require.Equal(t, "Smith", got.Lastname)
		require.Equal(t, "Secret123!", got.Password)
		require.Equal(t, 5551234, got.Phone)
		require.Equal(t, 30, got.Age)
	})
}

func TestListUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		s := &store.FakeStore{
			ListUsersFn: func(context.Context) (model.UserList, error) {
				return nil, errors.New("l")
			},
		}
		ctx, rec := newListCtx(e)
		err := ListUsersHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("empty store", func(t *testing.T) {
		s := &store.FakeStore{
			ListUsersFn: func(context.Context) (model.UserList, error) {
				return model.UserList{}, nil
			},
		}
		ctx, rec := newListCtx(e)
		err := ListUsersHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("success", func(t *testing.T) {
		s := &store.FakeStore{
			ListUsersFn: func(context.Context) (model.UserList, error) {
				return model.UserList{
					{ID: 0, Email: "a@b.com", Name: "A", Lastname: "B", Password: "p", Phone: 1, Age: 20},
					{ID: 1, Email: "c@d.com", Name: "C", Lastname: "D", Password: "q", Phone: 2, Age: 30},
				}, nil
			},
		}
		ctx, rec := newListCtx(e)
		err := ListUsersHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":0`)
		require.Contains(t, rec.Body.String(), `"id":1`)
		require.Contains(t, rec.Body.String(), `"password":"p"`)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	e := echo.New()
	validUserData := `{"id":1,"email":"alice@example.com","name":"Alice","lastname":"Smith","password":"Secret123!","phone":5551234,"age":30}`

	t.Run("missing user_data", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newEditCtx(e, "")
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "missing user_data")
	})

	t.Run("invalid user_data", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newEditCtx(e, "{not json")
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid user_data")
	})

	t.Run("validate error", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newEditCtx(e, validUserData)
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		e.Validator = &stubValidator{}
		s := &store.FakeStore{
			UpdateUserFn: func(context.Context, int, *model.User) error {
				return fmt.Errorf("UpdateUser: %w", store.ErrNotFound)
			},
		}
		ctx, rec := newEditCtx(e, validUserData)
		err := UpdateUserHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "user not found")
	})

	t.Run("store error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		s := &store.FakeStore{
			UpdateUserFn: func(context.Context, int, *model.User) error {
				return errors.New("u")
			},
		}
		ctx, rec := newEditCtx(e, validUserData)
		err := UpdateUserHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		e.Validator = &stubValidator{}
		var gotID int
		var gotUser *model.User
		s := &store.FakeStore{
			UpdateUserFn: func(_ context.Context, id int, u *model.User) error {
				gotID = id
				gotUser = u
				return nil
			},
		}
		ctx, rec := newEditCtx(e, validUserData)
		err := UpdateUserHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Body.String())
		require.Equal(t, 1, gotID)
		require.Equal(t, "alice@example.com", gotUser.Email)
		require.Equal(t, 30, gotUser.Age)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		ctx, rec := newDeleteCtx(e, "abc")
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid user ID")
	})

	t.Run("not found", func(t *testing.T) {
		s := &store.FakeStore{
			DeleteUserFn: func(context.Context, int) error {
				return fmt.Errorf("DeleteUser: %w", store.ErrNotFound)
			},
		}
		ctx, rec := newDeleteCtx(e, "9")
		err := DeleteUserHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		s := &store.FakeStore{
			DeleteUserFn: func(context.Context, int) error { return errors.New("d") },
		}
		ctx, rec := newDeleteCtx(e, "1")
		err := DeleteUserHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		var gotID int
		s := &store.FakeStore{
			DeleteUserFn: func(_ context.Context, id int) error {
				gotID = id
				return nil
			},
		}
		ctx, rec := newDeleteCtx(e, "2")
		err := DeleteUserHandler(s)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Body.String())
		require.Equal(t, 2, gotID)
	})
}
