// Package search maintains a full-text index of event names and
// descriptions, backing the keyword criterion of event filtering. The index
// is derived data: it can always be rebuilt from the events collection.
package search

import (
	"context"
	"log/slog"

	"gantt-lab/domain"

	"github.com/blugelabs/bluge"
)

// maxResults bounds one keyword lookup; the schedule is a single-user
// dataset, far below this in practice.
const maxResults = 500

type EventIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewEventIndex(writer *bluge.Writer, log *slog.Logger) *EventIndex {
	return &EventIndex{writer: writer, log: log}
}

func eventDocument(e domain.Event) *bluge.Document {
	return bluge.NewDocument(e.ID).
		AddField(bluge.NewTextField("name", e.Name)).
		AddField(bluge.NewTextField("description", e.Description))
}

// Index inserts or replaces one event document.
func (i *EventIndex) Index(e domain.Event) error {
	doc := eventDocument(e)
	return i.writer.Update(doc.ID(), doc)
}

func (i *EventIndex) Remove(id string) error {
	return i.writer.Delete(bluge.Identifier(id))
}

// Reindex replaces the documents of every given event in one batch; used to
// rebuild the index from the stored collection at startup.
func (i *EventIndex) Reindex(events []domain.Event) error {
	batch := bluge.NewBatch()
	for _, e := range events {
		doc := eventDocument(e)
		batch.Update(doc.ID(), doc)
	}
	if err := i.writer.Batch(batch); err != nil {
		return err
	}
	i.log.Debug("event index rebuilt", "events", len(events))
	return nil
}

// Search returns the ids of events matching the keyword on name or
// description.
func (i *EventIndex) Search(ctx context.Context, keyword string) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(keyword).SetField("name")).
		AddShould(bluge.NewMatchQuery(keyword).SetField("description"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(maxResults, query))
	if err != nil {
		return nil, err
	}

	ids := []string{}
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}
