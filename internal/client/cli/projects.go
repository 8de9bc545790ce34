package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sigerhq/fieldreport/internal/client/catalog"
	"github.com/sigerhq/fieldreport/internal/client/selection"
	"github.com/sigerhq/fieldreport/internal/client/services"
)

// Reload refreshes the project catalog and rebuilds the selection state.
// Loading never fails outright: when the API is unreachable the loader falls
// back to the cached catalog, then to the built-in demo data.
func (a *App) Reload(ctx context.Context) error {
	projects, source := a.loader.Load(ctx)
	a.cascade = selection.NewCascade(projects)
	a.source = source
	a.resetForm()
	if source != catalog.SourceLive {
		log.Printf("Catalog loaded from %s data", source)
	}
	return nil
}

// Projects lists the catalog with contract details.
func (a *App) Projects(ctx context.Context) error {
	for _, p := range a.cascade.Projects() {
		fmt.Printf("%s  %s (%s, contract %s)\n", p.ID, p.Work, p.Contractor, p.ContractValue)
	}
	return nil
}

// SelectProject prompts for a project id and makes it current. Any previous
// activity and sub-activity selection is cleared, along with the form.
func (a *App) SelectProject(ctx context.Context) error {
	for _, p := range a.cascade.Projects() {
		fmt.Printf("%s  %s\n", p.ID, p.Work)
	}
	id, err := getSimpleText(a.reader, "Enter project id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.cascade.SetProject(id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	a.resetForm()
	return nil
}

// SelectActivity prompts for an activity id within the current project.
func (a *App) SelectActivity(ctx context.Context) error {
	for _, act := range a.cascade.Activities() {
		fmt.Printf("%s  %s\n", act.ID, act.Name)
	}
	id, err := getSimpleText(a.reader, "Enter activity id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.cascade.SetActivity(id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	a.resetForm()
	return nil
}

// SelectSubActivity prompts for a sub-activity id and loads today's report
// for it: if one already exists the form switches to update mode and is
// seeded with the stored values, otherwise it starts empty in create mode.
func (a *App) SelectSubActivity(ctx context.Context) error {
	for _, sub := range a.cascade.SubActivities() {
		fmt.Printf("%s  %s (%s)\n", sub.ID, sub.Name, sub.Unit)
	}
	id, err := getSimpleText(a.reader, "Enter sub-activity id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.cascade.SetSubActivity(id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	res := a.resolver.Resolve(ctx, id, a.userID(), a.today())
	a.applyResolution(res)
	if a.mode == services.ModeUpdate {
		log.Printf("Existing report found for today, editing it")
	}
	return nil
}

// applyResolution seeds the form from a lookup result. A resolution for a
// sub-activity that is no longer selected is discarded, so a slow lookup can
// never overwrite the form the user is actually on.
func (a *App) applyResolution(res services.Resolution) {
	if res.SubActivityID != a.cascade.State().SubActivityID {
		return
	}
	a.mode = res.Mode
	a.form = services.FormFields{
		Progress:    res.Seed.Progress,
		Notes:       res.Seed.Notes,
		Coordinates: res.Seed.Coordinates,
	}
	a.attachments.Reset(res.Seed.Attachments)
}

// resetForm returns the form to an empty create-mode state.
func (a *App) resetForm() {
	a.mode = services.ModeCreate
	a.form = services.FormFields{}
	a.attachments.Reset(nil)
}
