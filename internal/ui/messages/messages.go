package messages

import "threadex/internal/thread"

// View transition messages, for views whose own input handling swallows
// the global view keys.
type (
	OpenTableMsg   struct{}
	OpenTreeMsg    struct{}
	OpenHistoryMsg struct{}
)

// Preference toggles (handled by the app, which owns the config).
type (
	CycleDateFormatMsg     struct{}
	ToggleCompactMsg       struct{}
	ToggleStripNewlinesMsg struct{}
)

// StartExportMsg asks the app to fetch a thread and build a fresh export
// session from it.
type StartExportMsg struct {
	URL string
}

// ThreadLoadedMsg delivers a finished fetch. Generation identifies the
// export request that produced it; responses from superseded requests are
// dropped by the app.
type ThreadLoadedMsg struct {
	Generation int
	URL        string
	Export     *thread.Export
	Err        error
}

// StatusMsg updates the status bar.
type StatusMsg struct {
	Text    string
	IsError bool
}
