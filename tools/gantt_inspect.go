package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gantt-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Read-only dump of the three schedule collections. Opens the database with
// BypassLockGuard so it works while the main process holds the lock.
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	collection := flag.String("collection", "events", "events | groups | versions")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	raw, found, err := readCollection(db, *collection)
	if err != nil {
		log.Fatal(err)
	}
	if !found {
		fmt.Printf("Collection %q is empty\n", *collection)
		return
	}

	header := color.New(color.BgBlack, color.FgGreen).Render(strings.ToUpper(*collection))
	fmt.Println(header)

	switch *collection {
	case "events":
		err = renderEvents(raw)
	case "groups":
		err = renderGroups(raw)
	case "versions":
		err = renderVersions(raw)
	default:
		err = fmt.Errorf("unknown collection %q", *collection)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func readCollection(db *badger.DB, collection string) ([]byte, bool, error) {
	var raw []byte
	found := false
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("gantt:" + collection))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		raw, err = item.ValueCopy(nil)
		return err
	})
	return raw, found, err
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func renderEvents(raw []byte) error {
	var events []domain.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return err
	}
	table := newTable([]string{"ID", "Name", "Start", "End", "Group"})
	for _, e := range events {
		table.Append([]string{
			shortID(e.ID),
			e.Name,
			e.StartDate.Format("2006-01-02"),
			e.EndDate.Format("2006-01-02"),
			shortID(e.GroupID),
		})
	}
	table.Render()
	return nil
}

func renderGroups(raw []byte) error {
	var groups []domain.Group
	if err := json.Unmarshal(raw, &groups); err != nil {
		return err
	}
	table := newTable([]string{"ID", "Name", "Color", "Order", "Visible", "Default"})
	for _, g := range groups {
		table.Append([]string{
			shortID(g.ID),
			g.Name,
			g.Color,
			fmt.Sprintf("%d", g.Order),
			fmt.Sprintf("%t", g.Visible),
			fmt.Sprintf("%t", g.IsDefault),
		})
	}
	table.Render()
	return nil
}

func renderVersions(raw []byte) error {
	var versions []domain.Version
	if err := json.Unmarshal(raw, &versions); err != nil {
		return err
	}
	table := newTable([]string{"ID", "Number", "Created", "Note", "Events", "Groups"})
	for _, v := range versions {
		table.Append([]string{
			shortID(v.ID),
			fmt.Sprintf("%d", v.Number),
			v.CreatedAt.Format("2006-01-02 15:04:05"),
			v.Note,
			fmt.Sprintf("%d", len(v.Snapshot.Events)),
			fmt.Sprintf("%d", len(v.Snapshot.Groups)),
		})
	}
	table.Render()
	return nil
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
