package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func (a *App) ListPhotos(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	timeline, err := a.photos.Timeline(ctx, a.user.ID)
	if err != nil {
		printlnFn("Failed to list photos:", err.Error())
		return err
	}
	if len(timeline) == 0 {
		printlnFn("No progress photos yet. Use 'addphoto'.")
		return nil
	}

	for i, p := range timeline {
		line := fmt.Sprintf("%2d. %s", i+1, p.Timestamp)
		if p.Note != "" {
			line += " — " + p.Note
		}
		printlnFn(line)
	}
	return nil
}

// AddPhoto records a timeline entry. The image reference is taken verbatim
// (a file path or data URI); the core never interprets image bytes.
func (a *App) AddPhoto(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	imageURL, err := GetSimpleText(a.reader, "Image reference (path or data URI)", os.Stdout)
	if err != nil {
		return err
	}
	if imageURL == "" {
		printlnFn("An image reference is required.")
		return nil
	}
	note, err := GetSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.photos.AddPhoto(ctx, a.user.ID, imageURL, note); err != nil {
		printlnFn("Failed to save photo:", err.Error())
		return err
	}
	printlnFn("Photo added to your timeline.")
	return nil
}

func (a *App) DeletePhoto(ctx context.Context, arg string) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}
	if arg == "" {
		printlnFn("Usage: delphoto <number from 'photos'>")
		return nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: delphoto <number from 'photos'>")
		return nil
	}

	timeline, err := a.photos.Timeline(ctx, a.user.ID)
	if err != nil {
		printlnFn("Failed to list photos:", err.Error())
		return err
	}
	if n < 1 || n > len(timeline) {
		printlnFn("No such photo.")
		return nil
	}

	if err := a.photos.DeletePhoto(ctx, a.user.ID, timeline[n-1].ID); err != nil {
		printlnFn("Failed to delete photo:", err.Error())
		return err
	}
	printlnFn("Photo deleted.")
	return nil
}
