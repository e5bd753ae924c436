package database

import (
	"testing"
	"time"

	"github.com/devlog-app/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEntry(t *testing.T, d Database, ownerID, content string, tagNames []string, projectIDs []uint) models.Entry {
	t.Helper()
	entry := models.Entry{Content: content, Confidence: 3}
	require.NoError(t, d.EntryRepo().Create(ownerID, &entry, tagNames, projectIDs))
	return entry
}

func TestCreateEntrySetsOwnerAndDefaults(t *testing.T) {
	d := newTestDatabase(t)

	entry := models.Entry{Content: "Learned closures", TimeSpent: 45, Confidence: 4, UserID: "spoofed"}
	require.NoError(t, d.EntryRepo().Create("alice", &entry, nil, nil))

	assert.NotZero(t, entry.ID)
	assert.Equal(t, "alice", entry.UserID, "owner id must come from the server, not the payload")
	assert.False(t, entry.Date.IsZero(), "date defaults to creation time")
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestGetEntryTagsMatchCreatedSet(t *testing.T) {
	d := newTestDatabase(t)

	entry := createEntry(t, d, "alice", "Learned closures", []string{"js", "fp", "js"}, nil)

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.ElementsMatch(t, []string{"js", "fp"}, got.Tags, "duplicate input names collapse to one link each")
}

func TestResolveReusesExistingTagRows(t *testing.T) {
	d := newTestDatabase(t)

	createEntry(t, d, "alice", "Learned closures", []string{"js", "fp"}, nil)
	createEntry(t, d, "alice", "Learned currying", []string{"js"}, nil)

	tags, err := d.TagRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, tags, 2, "resolving js twice must not create a second row")

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	assert.ElementsMatch(t, []string{"js", "fp"}, names)
}

func TestTagNamesAreCaseSensitive(t *testing.T) {
	d := newTestDatabase(t)

	createEntry(t, d, "alice", "Hooks", []string{"React"}, nil)
	createEntry(t, d, "alice", "More hooks", []string{"react"}, nil)

	tags, err := d.TagRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, tags, 2, "case variants are distinct tags")
}

func TestUpdateEmptyTagListClearsAssociations(t *testing.T) {
	d := newTestDatabase(t)

	entry := createEntry(t, d, "alice", "Learned closures", []string{"js", "fp"}, nil)

	empty := []string{}
	updated, err := d.EntryRepo().Update(entry.ID, "alice", map[string]any{}, &empty, nil)
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestUpdateOmittedTagsLeaveAssociationsUntouched(t *testing.T) {
	d := newTestDatabase(t)

	entry := createEntry(t, d, "alice", "Learned closures", []string{"js", "fp"}, nil)

	updated, err := d.EntryRepo().Update(entry.ID, "alice", map[string]any{"content": "Relearned closures"}, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Relearned closures", updated.Content)

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"js", "fp"}, got.Tags)
}

func TestUpdateEmptyProjectListClearsAssociations(t *testing.T) {
	d := newTestDatabase(t)

	project := models.Project{Name: "App"}
	require.NoError(t, d.ProjectRepo().Add("alice", &project))

	entry := createEntry(t, d, "alice", "Wired the API", nil, []uint{project.ID})

	none := []uint{}
	updated, err := d.EntryRepo().Update(entry.ID, "alice", map[string]any{}, nil, &none)
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	assert.Empty(t, got.Projects)
}

func TestUpdateByNonOwnerMatchesNothing(t *testing.T) {
	d := newTestDatabase(t)

	entry := createEntry(t, d, "alice", "Learned closures", []string{"js"}, nil)

	updated, err := d.EntryRepo().Update(entry.ID, "mallory", map[string]any{"content": "hijacked"}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, updated, "non-owner update reads as not found")

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Learned closures", got.Content)
	assert.ElementsMatch(t, []string{"js"}, got.Tags)
}

func TestDeleteEntryRemovesJoinRows(t *testing.T) {
	d := newTestDatabase(t)

	project := models.Project{Name: "App"}
	require.NoError(t, d.ProjectRepo().Add("alice", &project))

	entry := createEntry(t, d, "alice", "Learned closures", []string{"js"}, []uint{project.ID})

	require.NoError(t, d.EntryRepo().Delete(entry.ID, "alice"))

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	tagLinks, err := d.EntryTagRepo().CountForEntry(entry.ID)
	require.NoError(t, err)
	assert.Zero(t, tagLinks)

	projectLinks, err := d.EntryProjectRepo().CountForEntry(entry.ID)
	require.NoError(t, err)
	assert.Zero(t, projectLinks)
}

func TestDeleteByNonOwnerIsNoOp(t *testing.T) {
	d := newTestDatabase(t)

	entry := createEntry(t, d, "alice", "Learned closures", []string{"js"}, nil)

	require.NoError(t, d.EntryRepo().Delete(entry.ID, "mallory"))

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.ElementsMatch(t, []string{"js"}, got.Tags, "a non-owner delete must not strip associations")
}

func TestListScopedToOwnerAndOrdered(t *testing.T) {
	d := newTestDatabase(t)

	older := models.Entry{Content: "first", Date: time.Now().Add(-48 * time.Hour), Confidence: 3}
	require.NoError(t, d.EntryRepo().Create("alice", &older, nil, nil))
	newer := models.Entry{Content: "second", Date: time.Now(), Confidence: 3}
	require.NoError(t, d.EntryRepo().Create("alice", &newer, nil, nil))
	createEntry(t, d, "bob", "not alices", nil, nil)

	entries, err := d.EntryRepo().FindAllByOwner("alice")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Content, "most recent first")
	assert.Equal(t, "first", entries[1].Content)
	for _, entry := range entries {
		assert.Equal(t, "alice", entry.UserID)
	}
}

func TestGetEntryIsOwnerFiltered(t *testing.T) {
	d := newTestDatabase(t)

	entry := createEntry(t, d, "alice", "private", nil, nil)

	got, err := d.EntryRepo().FindByID(entry.ID, "bob")
	require.NoError(t, err)
	assert.Nil(t, got, "absent and not-owned are indistinguishable")
}

func TestEnrichedEntryCarriesFullProjectRecords(t *testing.T) {
	d := newTestDatabase(t)

	repoURL := "https://example.com/app.git"
	project := models.Project{Name: "App", RepoURL: &repoURL}
	require.NoError(t, d.ProjectRepo().Add("alice", &project))

	entry := createEntry(t, d, "alice", "Wired the API", nil, []uint{project.ID})

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, project.ID, got.Projects[0].ID)
	assert.Equal(t, "App", got.Projects[0].Name)
	require.NotNil(t, got.Projects[0].RepoURL)
	assert.Equal(t, repoURL, *got.Projects[0].RepoURL)
}

func TestUpdateReplacesTagSet(t *testing.T) {
	d := newTestDatabase(t)

	entry := createEntry(t, d, "alice", "Learned closures", []string{"js", "fp"}, nil)

	replacement := []string{"go", "fp"}
	updated, err := d.EntryRepo().Update(entry.ID, "alice", map[string]any{}, &replacement, nil)
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := d.EntryRepo().FindByID(entry.ID, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "fp"}, got.Tags)

	tagLinks, err := d.EntryTagRepo().CountForEntry(entry.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, tagLinks, "replacement never stacks duplicate links")
}
