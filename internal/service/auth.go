package service

import (
	"context"
	"errors"

	"github.com/sandeepkv93/taskdesk/internal/logger"
	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/state"
	"github.com/sandeepkv93/taskdesk/internal/storage"
)

// UserStorageKey is where the last authenticated user is cached.
const UserStorageKey = "currentUser"

type Auth struct {
	users   UserRepository
	session *state.Session
	store   Store
	logger  *logger.Logger
}

func NewAuth(users UserRepository, session *state.Session, store Store, logger *logger.Logger) *Auth {
	return &Auth{
		users:   users,
		session: session,
		store:   store,
		logger:  logger,
	}
}

// Restore loads the cached user into the session. It reports whether a user
// was restored; storage failures are logged and swallowed.
func (a *Auth) Restore(ctx context.Context) bool {
	var u model.User
	if err := a.store.Get(ctx, UserStorageKey, &u); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.logger.Warn("Auth service: failed to restore cached user",
				"error", err.Error())
		}
		return false
	}
	if u.ID == "" {
		return false
	}
	a.session.SetUser(&u)
	a.logger.Debug("Auth service: restored cached user",
		"user_id", u.ID)
	return true
}

// CheckUser looks email up and logs the user in when it exists. A result
// with Exists == false leaves the session untouched.
func (a *Auth) CheckUser(ctx context.Context, email string) (model.CheckUserResult, error) {
	if err := model.ValidateEmail(email); err != nil {
		return model.CheckUserResult{}, err
	}

	a.logger.Debug("Auth service: checking user",
		"email", email)

	a.session.SetLoading(true)
	a.session.ClearError()
	defer a.session.SetLoading(false)

	res, err := a.users.CheckUserExists(ctx, email)
	if err != nil {
		a.logger.Error("Auth service: failed to check user",
			"email", email,
			"error", err.Error())
		a.session.SetError(MsgCheckUser)
		return model.CheckUserResult{}, &OperationError{Message: MsgCheckUser, Err: err}
	}

	if res.Exists && res.User != nil {
		a.authenticate(ctx, *res.User)
	}
	return res, nil
}

func (a *Auth) CreateUser(ctx context.Context, email string) (model.User, error) {
	if err := model.ValidateEmail(email); err != nil {
		return model.User{}, err
	}

	a.logger.Debug("Auth service: creating user",
		"email", email)

	a.session.SetLoading(true)
	a.session.ClearError()
	defer a.session.SetLoading(false)

	u, err := a.users.CreateUser(ctx, model.CreateUserRequest{Email: email})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		a.session.SetError(MsgCreateUser)
		return model.User{}, &OperationError{Message: MsgCreateUser, Err: err}
	}

	a.authenticate(ctx, u)
	return u, nil
}

// Logout clears the session and forgets the cached user.
func (a *Auth) Logout(ctx context.Context) {
	a.session.Clear()
	if err := a.store.Remove(ctx, UserStorageKey); err != nil {
		a.logger.Warn("Auth service: failed to remove cached user",
			"error", err.Error())
	}
	a.logger.Info("Auth service: logged out")
}

func (a *Auth) authenticate(ctx context.Context, u model.User) {
	a.session.SetUser(&u)
	if err := a.store.Set(ctx, UserStorageKey, u); err != nil {
		a.logger.Warn("Auth service: failed to cache user",
			"user_id", u.ID,
			"error", err.Error())
	}
	a.logger.Info("Auth service: user authenticated",
		"user_id", u.ID)
}
