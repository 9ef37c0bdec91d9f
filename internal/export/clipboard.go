package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"threadex/internal/thread"
)

// CopyHTML puts the rendered HTML table on the system clipboard.
func CopyHTML(records []*thread.Record, opts Options) error {
	if err := clipboard.WriteAll(HTMLTable(records, opts)); err != nil {
		return fmt.Errorf("copying HTML to clipboard: %w", err)
	}
	return nil
}

// CopyCSV puts the rendered CSV on the system clipboard.
func CopyCSV(records []*thread.Record, opts Options) error {
	if err := clipboard.WriteAll(CSV(records, opts)); err != nil {
		return fmt.Errorf("copying CSV to clipboard: %w", err)
	}
	return nil
}
