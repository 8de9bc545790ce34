// Package selection maintains the project -> activity -> sub-activity
// cascade. Changing a higher level always clears everything below it, so the
// chosen activity is guaranteed to belong to the chosen project and the
// chosen sub-activity to the chosen activity.
package selection

import (
	"fmt"

	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/common"
)

// State is the current selection; empty strings mean "nothing chosen".
type State struct {
	ProjectID     string
	ActivityID    string
	SubActivityID string
}

// Cascade is pure state over a loaded catalog. It is mutated only by the
// single REPL goroutine, so it needs no locking.
type Cascade struct {
	projects []models.Project
	state    State
}

func NewCascade(projects []models.Project) *Cascade {
	return &Cascade{projects: projects}
}

func (c *Cascade) Projects() []models.Project { return c.projects }

func (c *Cascade) State() State { return c.state }

// ActivitiesFor returns the activity list of the given project, or nil when
// the id is unset or unknown.
func (c *Cascade) ActivitiesFor(projectID string) []models.Activity {
	for _, p := range c.projects {
		if p.ID == projectID {
			return p.Activities
		}
	}
	return nil
}

// SubActivitiesFor returns the sub-activities of the given activity within
// the given project, or nil when either id is unset or unknown.
func (c *Cascade) SubActivitiesFor(projectID, activityID string) []models.SubActivity {
	for _, a := range c.ActivitiesFor(projectID) {
		if a.ID == activityID {
			return a.SubActivities
		}
	}
	return nil
}

// Activities lists the activities of the currently selected project.
func (c *Cascade) Activities() []models.Activity {
	return c.ActivitiesFor(c.state.ProjectID)
}

// SubActivities lists the sub-activities of the current selection.
func (c *Cascade) SubActivities() []models.SubActivity {
	return c.SubActivitiesFor(c.state.ProjectID, c.state.ActivityID)
}

// SetProject selects a project and unconditionally clears the levels below.
func (c *Cascade) SetProject(id string) error {
	if !c.projectExists(id) {
		return fmt.Errorf("project %s: %w", id, common.ErrorNotFound)
	}
	c.state = State{ProjectID: id}
	return nil
}

// SetActivity selects an activity of the current project and clears the
// sub-activity.
func (c *Cascade) SetActivity(id string) error {
	if !containsActivity(c.Activities(), id) {
		return fmt.Errorf("activity %s: %w", id, common.ErrorNotFound)
	}
	c.state.ActivityID = id
	c.state.SubActivityID = ""
	return nil
}

// SetSubActivity selects the terminal level. The caller is responsible for
// triggering the existing-record resolver afterwards; this is the only
// cascade change with a side effect outside pure state.
func (c *Cascade) SetSubActivity(id string) error {
	if !containsSubActivity(c.SubActivities(), id) {
		return fmt.Errorf("sub-activity %s: %w", id, common.ErrorNotFound)
	}
	c.state.SubActivityID = id
	return nil
}

// SelectedProject returns the currently selected project, or nil.
func (c *Cascade) SelectedProject() *models.Project {
	for i := range c.projects {
		if c.projects[i].ID == c.state.ProjectID {
			return &c.projects[i]
		}
	}
	return nil
}

// SelectedSubActivity returns the currently selected sub-activity, or nil.
func (c *Cascade) SelectedSubActivity() *models.SubActivity {
	subs := c.SubActivities()
	for i := range subs {
		if subs[i].ID == c.state.SubActivityID {
			return &subs[i]
		}
	}
	return nil
}

func (c *Cascade) projectExists(id string) bool {
	for _, p := range c.projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

func containsActivity(activities []models.Activity, id string) bool {
	for _, a := range activities {
		if a.ID == id {
			return true
		}
	}
	return false
}

func containsSubActivity(subs []models.SubActivity, id string) bool {
	for _, s := range subs {
		if s.ID == id {
			return true
		}
	}
	return false
}
