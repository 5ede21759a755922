package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTeamMembers(t *testing.T) {
	members, err := parseTeamMembers(`[{"id":"u1","name":"Artyom"},{"id":"u2","name":"Dima"}]`)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "u1", members[0].ID)
	assert.Equal(t, "Dima", members[1].Name)
}

func TestParseTeamMembersEmpty(t *testing.T) {
	members, err := parseTeamMembers(`[]`)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestParseTeamMembersRejectsMissingFields(t *testing.T) {
	_, err := parseTeamMembers(`[{"id":"u1"}]`)
	assert.Error(t, err)

	_, err = parseTeamMembers(`[{"name":"Artyom"}]`)
	assert.Error(t, err)
}

func TestParseTeamMembersRejectsInvalidJSON(t *testing.T) {
	_, err := parseTeamMembers(`not json`)
	assert.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TEAM_MEMBERS", `[{"id":"u1","name":"Artyom"}]`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	require.Len(t, cfg.TeamMembers, 1)
	assert.Equal(t, "Artyom", cfg.TeamMembers[0].Name)
}
