package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "WORKFLOW_ID", "SANITY_PROJECT_ID", "CONTENT_FILE", "AUTH_JWT_SECRET"} {
		t.Setenv(key, "")
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		userID = ""
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSessionCommandMock(t *testing.T) {
	out, _, err := execute(t, "session", "--user", "user_7")
	require.NoError(t, err)

	var cred struct {
		SessionID string `json:"session_id"`
		User      struct {
			ID string `json:"id"`
		} `json:"user"`
		Mock bool `json:"mock"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &cred))
	assert.True(t, cred.Mock)
	assert.Equal(t, "user_7", cred.User.ID)
	assert.NotEmpty(t, cred.SessionID)
}

func TestSectionCommand(t *testing.T) {
	out, _, err := execute(t, "section", "projects")
	require.NoError(t, err)

	var projects []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	assert.NotEmpty(t, projects)
}

func TestSectionCommandUnknown(t *testing.T) {
	_, _, err := execute(t, "section", "guestbook")
	require.Error(t, err)
}

func TestSectionCommandRequiresName(t *testing.T) {
	_, _, err := execute(t, "section")
	require.Error(t, err)
}
