package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"detectivequest/internal/journal"
)

func newJournalCmd() *cobra.Command {
	var (
		path  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Review recently journaled exploration events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd.OutOrStdout(), path, limit)
		},
	}

	defaultPath := os.Getenv("DETECTIVE_JOURNAL")
	if defaultPath == "" {
		defaultPath = journal.DefaultPath
	}
	cmd.Flags().StringVar(&path, "path", defaultPath, "sqlite journal file")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of events to show")
	return cmd
}

func runReview(out io.Writer, path string, limit int) error {
	if limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}

	j, err := journal.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer j.Close()

	entries, err := j.Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No journal entries found. Explore with --journal first!")
		return nil
	}

	fmt.Fprintf(out, "Recent events (%d):\n\n", len(entries))

	for _, e := range entries {
		fmt.Fprintf(out, "[%d] %s | %s | %-8s %-7s %s",
			e.ID,
			e.Timestamp.Format("15:04:05"),
			shortID(e.SessionID),
			e.Kind,
			e.Command,
			e.Room)
		if e.Detail != "" {
			fmt.Fprintf(out, " | %s", e.Detail)
		}
		var metadata journal.EventMetadata
		if err := json.Unmarshal([]byte(e.Metadata), &metadata); err == nil && metadata.ClueAdded {
			fmt.Fprint(out, " (new clue)")
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, strings.Repeat("-", 50))

	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
