package historylist

import (
	"fmt"

	"threadex/internal/cache"
	"threadex/internal/render"
)

// item wraps a history entry for the list component.
type item struct {
	entry cache.ThreadEntry
}

func (i item) Title() string { return i.entry.Title }

func (i item) Description() string {
	return fmt.Sprintf("%s | %d comments | fetched %s",
		i.entry.URL, i.entry.CommentCount, render.TimeAgo(i.entry.FetchedAt))
}

func (i item) FilterValue() string { return i.entry.Title + " " + i.entry.URL }
