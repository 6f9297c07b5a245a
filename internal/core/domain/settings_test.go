package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettings_WithDefaults(t *testing.T) {
	s := Settings{UserID: "brandonrozek", ContentDir: "/tmp/content"}.WithDefaults()

	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Equal(t, time.Second, s.RequestInterval)
	assert.Equal(t, 30*time.Second, s.HTTPTimeout)
}

func TestSettings_WithDefaults_PreservesOverrides(t *testing.T) {
	s := Settings{
		UserID:          "brandonrozek",
		ContentDir:      "/tmp/content",
		BaseURL:         "http://localhost:8080/v1",
		RequestInterval: 10 * time.Millisecond,
		HTTPTimeout:     time.Second,
	}.WithDefaults()

	assert.Equal(t, "http://localhost:8080/v1", s.BaseURL)
	assert.Equal(t, 10*time.Millisecond, s.RequestInterval)
	assert.Equal(t, time.Second, s.HTTPTimeout)
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, Settings{UserID: "u", ContentDir: "/c"}.Validate())
	assert.ErrorIs(t, Settings{ContentDir: "/c"}.Validate(), ErrUserNotConfigured)
	assert.ErrorIs(t, Settings{UserID: "u"}.Validate(), ErrInvalidInput)
}

func TestSyncRun_Writes(t *testing.T) {
	r := SyncRun{Created: 3, Updated: 2, Unchanged: 7}
	assert.Equal(t, 5, r.Writes())
}
