package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

func testUser() *model.User {
	return &model.User{ID: "u-1", Email: "ana@example.com", CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)}
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
	assert.Equal(t, "", s.Email())
	_, ok := s.UserID()
	assert.False(t, ok)
	_, hasErr := s.Error()
	assert.False(t, hasErr)
	assert.False(t, s.Loading())
}

func TestSessionSetUserDerivedViews(t *testing.T) {
	s := NewSession()
	s.SetUser(testUser())

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "ana@example.com", s.Email())
	id, ok := s.UserID()
	require.True(t, ok)
	assert.Equal(t, "u-1", id)
}

func TestSessionSetUserNilLogsOut(t *testing.T) {
	s := NewSession()
	s.SetUser(testUser())
	s.SetUser(nil)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
}

func TestSessionSetUserClearsError(t *testing.T) {
	s := NewSession()
	s.SetError("x")
	msg, ok := s.Error()
	require.True(t, ok)
	assert.Equal(t, "x", msg)

	s.SetUser(testUser())
	_, ok = s.Error()
	assert.False(t, ok)
}

func TestSessionClearResetsEverything(t *testing.T) {
	s := NewSession()
	s.SetUser(testUser())
	s.SetLoading(true)
	s.SetError("boom")

	s.Clear()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.Loading())
	_, ok := s.Error()
	assert.False(t, ok)
}

func TestSessionCurrentUserIsACopy(t *testing.T) {
	s := NewSession()
	u := testUser()
	s.SetUser(u)
	u.Email = "changed@example.com"

	got := s.CurrentUser()
	require.NotNil(t, got)
	assert.Equal(t, "ana@example.com", got.Email)
	got.Email = "again@example.com"
	assert.Equal(t, "ana@example.com", s.Email())
}
