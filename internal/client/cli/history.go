package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/sigerhq/fieldreport/internal/client/models"
)

// History lists submitted reports from the server, newest first. When a
// sub-activity is selected only its reports are shown; otherwise all of the
// current user's reports are listed.
func (a *App) History(ctx context.Context) error {
	pageText, err := getSimpleText(a.reader, "Enter page (empty for first)", os.Stdout)
	if err != nil {
		return err
	}
	page, _ := strconv.Atoi(pageText)

	params := models.ListParams{
		Page:          page,
		UserID:        a.userID(),
		SubActivityID: a.cascade.State().SubActivityID,
	}

	records, pagination, err := a.history.List(ctx, params)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, r := range records {
		name := r.SubActivityID
		if r.SubActivity != nil {
			name = r.SubActivity.Name
		}
		fmt.Printf("%s  %s  progress=%g  photos=%d  %s\n",
			r.ReportDate, name, r.Progress, len(r.Files), r.Notes)
	}
	if pagination != nil {
		fmt.Printf("Page %d of %d (%d total)\n", pagination.Page, pagination.TotalPages, pagination.Total)
	}
	return nil
}

// Journal shows the local record of recent submissions. It needs no network
// and survives an unreachable server.
func (a *App) Journal(ctx context.Context) error {
	entries, err := a.repos.Journal.Recent(ctx, 20)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No submissions recorded yet")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %s  %s (%s)\n", e.SubmittedAt, e.ReportDate, e.SubActivityID, e.Mode)
	}
	return nil
}
