// +build ignore

package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"docuprint/internal/config"
	"docuprint/internal/database"
)

// Quick operational check: counts pending signups and flags any that
// have been waiting longer than two days.
func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	var pending int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM signups WHERE status = 'pending_approval'`).Scan(&pending)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to count pending signups: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Pending signups: %d\n", pending)

	rows, err := db.QueryContext(ctx,
		`SELECT signup_id, full_name, community_id, created_at
		 FROM signups
		 WHERE status = 'pending_approval' AND created_at < NOW() - INTERVAL '2 days'
		 ORDER BY created_at`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to query stale signups: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	stale := 0
	for rows.Next() {
		var id, name, community, createdAt string
		if err := rows.Scan(&id, &name, &community, &createdAt); err != nil {
			fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  STALE %s  %s  %s  since %s\n", id, name, community, createdAt)
		stale++
	}
	if stale == 0 {
		fmt.Println("No signups waiting more than 2 days")
	}
}
