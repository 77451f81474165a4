package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"huggiesd/internal/domain"
	"huggiesd/internal/infra/knowledge"
)

const answerPreviewLimit = 300

// FAQ serves the three knowledge-base tools. All reads go through the
// immutable store, so the handlers are safe for concurrent calls.
type FAQ struct {
	store    *knowledge.Store
	searcher *knowledge.Searcher
}

// NewFAQ builds the FAQ handlers over store.
func NewFAQ(store *knowledge.Store, searcher *knowledge.Searcher) *FAQ {
	return &FAQ{
		store:    store,
		searcher: searcher,
	}
}

type faqSearchArgs struct {
	Query string `json:"query"`
}

// Search ranks FAQs against the query and shapes them as widget cards. A
// blank query short-circuits with an empty card set instead of ranking; an
// empty ranking falls back to the first records in storage order.
func (f *FAQ) Search(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
	var in faqSearchArgs
	if err := decodeArgs(args, &in); err != nil {
		return domain.ToolResult{}, err
	}

	q := strings.TrimSpace(in.Query)
	if q == "" {
		text := "Query is required"
		return domain.ToolResult{
			Text: text,
			Structured: map[string]any{
				"text":    text,
				"results": []any{},
				"widget": map[string]any{
					"widget_type": "cards",
					"cards":       []any{},
				},
			},
		}, nil
	}

	matches := f.searcher.Search(q, domain.DefaultSearchTopN)
	if len(matches) == 0 {
		matches = f.store.First(domain.DefaultSearchTopN)
	}

	results := make([]map[string]any, 0, len(matches))
	cards := make([]map[string]any, 0, len(matches))
	for _, m := range matches {
		results = append(results, map[string]any{
			"id":         m.ID,
			"title":      m.Title,
			"answer":     m.Answer,
			"source_url": m.SourceURL,
			"type":       m.Type,
			"tags":       m.Tags,
		})
		cards = append(cards, map[string]any{
			"type":  "card",
			"title": m.Title,
			"text":  m.Answer,
			"meta": map[string]any{
				"id":         m.ID,
				"source_url": m.SourceURL,
			},
		})
	}

	var text string
	if len(matches) > 0 {
		text = fmt.Sprintf("%s: %s", matches[0].Title, matches[0].Answer)
	} else {
		text = fmt.Sprintf("No matching FAQ found for %q.", q)
	}

	return domain.ToolResult{
		Text: text,
		Structured: map[string]any{
			"text":    text,
			"results": results,
			"widget": map[string]any{
				"widget_type": "cards",
				"cards":       cards,
			},
		},
	}, nil
}

// List returns every record's id/title/type with a count summary.
func (f *FAQ) List(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
	records := f.store.All()
	items := make([]map[string]any, 0, len(records))
	for _, record := range records {
		items = append(items, map[string]any{
			"id":    record.ID,
			"title": record.Title,
			"type":  record.Type,
		})
	}

	text := fmt.Sprintf("%d FAQs available.", len(items))
	return domain.ToolResult{
		Text: text,
		Structured: map[string]any{
			"text":    text,
			"results": items,
		},
	}, nil
}

type faqByIDArgs struct {
	ItemID string `json:"item_id"`
}

// GetByID looks up one record by exact id. A miss is a domain error, not a
// dispatch failure.
func (f *FAQ) GetByID(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
	var in faqByIDArgs
	if err := decodeArgs(args, &in); err != nil {
		return domain.ToolResult{}, err
	}

	record, ok := f.store.FindByID(in.ItemID)
	if !ok {
		return domain.ErrorResult(fmt.Sprintf("Item with id=%s not found", in.ItemID)), nil
	}

	text := fmt.Sprintf("%s: %s...", record.Title, previewAnswer(record.Answer))
	return domain.ToolResult{
		Text: text,
		Structured: map[string]any{
			"text": text,
			"item": record,
		},
	}, nil
}

func previewAnswer(answer string) string {
	runes := []rune(answer)
	if len(runes) <= answerPreviewLimit {
		return answer
	}
	return string(runes[:answerPreviewLimit])
}
