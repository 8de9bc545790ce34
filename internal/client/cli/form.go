package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/sigerhq/fieldreport/internal/client/services"
)

// Form prints the current form state.
func (a *App) Form(ctx context.Context) error {
	sub := a.cascade.SelectedSubActivity()
	if sub == nil {
		fmt.Println("No sub-activity selected")
		return nil
	}

	fmt.Printf("Report for %s (%s), %s [%s]\n", sub.Name, sub.Unit, a.today(), a.mode)
	fmt.Printf("  progress: %s\n", orEmpty(a.form.Progress))
	fmt.Printf("  notes:    %s\n", orEmpty(a.form.Notes))
	if a.form.Coordinates.Latitude != 0 || a.form.Coordinates.Longitude != 0 {
		fmt.Printf("  location: %f, %f\n", a.form.Coordinates.Latitude, a.form.Coordinates.Longitude)
	} else {
		fmt.Printf("  location: -\n")
	}
	fmt.Printf("  photos:   %d\n", a.attachments.Len())
	return nil
}

// SetProgress prompts for today's realized progress. The value is kept as
// entered; anything unparsable submits as 0.
func (a *App) SetProgress(ctx context.Context) error {
	v, err := getSimpleText(a.reader, "Enter progress for today", os.Stdout)
	if err != nil {
		return err
	}
	if _, perr := strconv.ParseFloat(v, 64); perr != nil && v != "" {
		log.Printf("Not a number, will submit as 0")
	}
	a.form.Progress = v
	return nil
}

// SetNotes prompts for the activity notes.
func (a *App) SetNotes(ctx context.Context) error {
	v, err := GetMultiline(a.reader, "Enter activity notes (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}
	a.form.Notes = v
	return nil
}

// SetLocation prompts for the report coordinates.
func (a *App) SetLocation(ctx context.Context) error {
	latText, err := getSimpleText(a.reader, "Enter latitude", os.Stdout)
	if err != nil {
		return err
	}
	lonText, err := getSimpleText(a.reader, "Enter longitude", os.Stdout)
	if err != nil {
		return err
	}

	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	a.form.Coordinates.Latitude = lat
	a.form.Coordinates.Longitude = lon
	return nil
}

// Submit sends today's report. Photos still uploading or failed are left
// out of the submission; the form keeps its state on failure so the user
// can retry.
func (a *App) Submit(ctx context.Context) error {
	receipt, err := a.submitter.Submit(ctx, a.cascade.State(), a.form,
		a.attachments.Snapshot(), a.userID(), a.today(), a.mode)
	if err != nil {
		color.Red("Submission failed: %s", err.Error())
		return err
	}

	color.Green(receipt.Message())
	// The record exists now, so a repeated submit is an update.
	a.mode = services.ModeUpdate
	return nil
}

func orEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
