package database

import (
	"testing"
	"time"

	"github.com/devlog-app/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProjectSetsOwner(t *testing.T) {
	d := newTestDatabase(t)

	project := models.Project{Name: "App", UserID: "spoofed"}
	require.NoError(t, d.ProjectRepo().Add("alice", &project))

	assert.NotZero(t, project.ID)
	assert.Equal(t, "alice", project.UserID)
	assert.False(t, project.CreatedAt.IsZero())
}

func TestListProjectsScopedToOwnerNewestFirst(t *testing.T) {
	d := newTestDatabase(t)

	older := models.Project{Name: "older"}
	require.NoError(t, d.ProjectRepo().Add("alice", &older))
	require.NoError(t, d.ProjectRepo().GetDB().Model(&older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := models.Project{Name: "newer"}
	require.NoError(t, d.ProjectRepo().Add("alice", &newer))

	other := models.Project{Name: "bobs"}
	require.NoError(t, d.ProjectRepo().Add("bob", &other))

	projects, err := d.ProjectRepo().FindAllByOwner("alice")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "newer", projects[0].Name)
	assert.Equal(t, "older", projects[1].Name)
}

func TestFindProjectByIDIsOwnerFiltered(t *testing.T) {
	d := newTestDatabase(t)

	project := models.Project{Name: "App"}
	require.NoError(t, d.ProjectRepo().Add("alice", &project))

	got, err := d.ProjectRepo().FindByID(project.ID, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "App", got.Name)

	hidden, err := d.ProjectRepo().FindByID(project.ID, "bob")
	require.NoError(t, err)
	assert.Nil(t, hidden)
}
