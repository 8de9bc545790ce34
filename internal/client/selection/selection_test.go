package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/common"
)

func testProjects() []models.Project {
	return []models.Project{
		{ID: "p1", Work: "Irigasi", Activities: []models.Activity{
			{ID: "a1", Name: "Persiapan", SubActivities: []models.SubActivity{
				{ID: "s1", Name: "Pembersihan"},
				{ID: "s2", Name: "Pematokan"},
			}},
			{ID: "a2", Name: "Galian", SubActivities: []models.SubActivity{
				{ID: "s3", Name: "Saluran Primer"},
			}},
		}},
		{ID: "p2", Work: "Bendung", Activities: []models.Activity{
			{ID: "a3", Name: "Bongkaran"},
		}},
	}
}

// invariantHolds checks the cascade invariant: the selected activity belongs
// to the selected project and the selected sub-activity to the selected
// activity, or the lower levels are empty.
func invariantHolds(t *testing.T, c *Cascade) {
	t.Helper()
	st := c.State()
	if st.ActivityID != "" {
		found := false
		for _, a := range c.ActivitiesFor(st.ProjectID) {
			if a.ID == st.ActivityID {
				found = true
			}
		}
		require.True(t, found, "activity %q not in project %q", st.ActivityID, st.ProjectID)
	}
	if st.SubActivityID != "" {
		found := false
		for _, s := range c.SubActivitiesFor(st.ProjectID, st.ActivityID) {
			if s.ID == st.SubActivityID {
				found = true
			}
		}
		require.True(t, found, "sub-activity %q not in activity %q", st.SubActivityID, st.ActivityID)
	}
}

func TestCascade_FullSelection(t *testing.T) {
	c := NewCascade(testProjects())

	require.NoError(t, c.SetProject("p1"))
	require.NoError(t, c.SetActivity("a1"))
	require.NoError(t, c.SetSubActivity("s2"))

	st := c.State()
	assert.Equal(t, State{ProjectID: "p1", ActivityID: "a1", SubActivityID: "s2"}, st)
	invariantHolds(t, c)

	sub := c.SelectedSubActivity()
	require.NotNil(t, sub)
	assert.Equal(t, "Pematokan", sub.Name)
}

func TestCascade_ProjectChangeClearsLowerLevels(t *testing.T) {
	c := NewCascade(testProjects())
	require.NoError(t, c.SetProject("p1"))
	require.NoError(t, c.SetActivity("a1"))
	require.NoError(t, c.SetSubActivity("s1"))

	require.NoError(t, c.SetProject("p2"))
	assert.Equal(t, State{ProjectID: "p2"}, c.State())
	invariantHolds(t, c)
}

func TestCascade_ActivityChangeClearsSubActivity(t *testing.T) {
	c := NewCascade(testProjects())
	require.NoError(t, c.SetProject("p1"))
	require.NoError(t, c.SetActivity("a1"))
	require.NoError(t, c.SetSubActivity("s1"))

	require.NoError(t, c.SetActivity("a2"))
	assert.Equal(t, "", c.State().SubActivityID)
	invariantHolds(t, c)
}

func TestCascade_ReselectingSameProjectStillClears(t *testing.T) {
	c := NewCascade(testProjects())
	require.NoError(t, c.SetProject("p1"))
	require.NoError(t, c.SetActivity("a1"))
	require.NoError(t, c.SetSubActivity("s1"))

	// The clear is unconditional even for the same id.
	require.NoError(t, c.SetProject("p1"))
	assert.Equal(t, State{ProjectID: "p1"}, c.State())
}

func TestCascade_RejectsForeignIDs(t *testing.T) {
	c := NewCascade(testProjects())

	err := c.SetProject("nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, c.SetProject("p1"))
	// a3 belongs to p2, not p1.
	assert.ErrorIs(t, c.SetActivity("a3"), common.ErrorNotFound)

	require.NoError(t, c.SetActivity("a1"))
	// s3 belongs to a2, not a1.
	assert.ErrorIs(t, c.SetSubActivity("s3"), common.ErrorNotFound)
	invariantHolds(t, c)
}

func TestCascade_LookupsOnUnsetIDs(t *testing.T) {
	c := NewCascade(testProjects())
	assert.Nil(t, c.ActivitiesFor(""))
	assert.Nil(t, c.SubActivitiesFor("p1", ""))
	assert.Nil(t, c.SubActivitiesFor("", "a1"))
	assert.Nil(t, c.SelectedProject())
	assert.Nil(t, c.SelectedSubActivity())
}

func TestCascade_RandomWalkPreservesInvariant(t *testing.T) {
	c := NewCascade(testProjects())
	steps := []func(){
		func() { _ = c.SetProject("p1") },
		func() { _ = c.SetActivity("a1") },
		func() { _ = c.SetSubActivity("s1") },
		func() { _ = c.SetProject("p2") },
		func() { _ = c.SetActivity("a3") },
		func() { _ = c.SetProject("p1") },
		func() { _ = c.SetActivity("a2") },
		func() { _ = c.SetSubActivity("s3") },
		func() { _ = c.SetSubActivity("s1") }, // rejected, s1 not in a2
	}
	for _, step := range steps {
		step()
		invariantHolds(t, c)
	}
}
