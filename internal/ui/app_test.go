package ui

import (
	"errors"
	"testing"

	"threadex/internal/config"
	"threadex/internal/thread"
	"threadex/internal/ui/messages"
)

func sampleExport() *thread.Export {
	return thread.NewExport(
		&thread.Post{Title: "a thread", Author: "op", Permalink: "/r/go/comments/x1/a_thread/"},
		[]thread.Node{{Body: "first", Author: "alice", Ups: 3}},
	)
}

func TestThreadLoadedSwitchesToTable(t *testing.T) {
	app := NewApp(config.Default(), nil, nil)

	model, _ := app.Update(messages.StartExportMsg{URL: "https://reddit.com/r/go/comments/x1/"})
	app = model.(App)

	exp := sampleExport()
	model, _ = app.Update(messages.ThreadLoadedMsg{Generation: app.generation, Export: exp})
	app = model.(App)

	if app.view != ViewTable {
		t.Fatalf("view = %v, want ViewTable", app.view)
	}
	if app.export != exp {
		t.Errorf("export session was not installed")
	}
}

func TestStaleThreadLoadedIsDropped(t *testing.T) {
	app := NewApp(config.Default(), nil, nil)

	// Two requests in flight; only the second generation counts.
	model, _ := app.Update(messages.StartExportMsg{URL: "https://reddit.com/r/go/comments/x1/"})
	app = model.(App)
	stale := app.generation
	model, _ = app.Update(messages.StartExportMsg{URL: "https://reddit.com/r/go/comments/x2/"})
	app = model.(App)

	model, _ = app.Update(messages.ThreadLoadedMsg{Generation: stale, Export: sampleExport()})
	app = model.(App)

	if app.export != nil {
		t.Errorf("stale response was installed")
	}
	if app.view != ViewInput {
		t.Errorf("view = %v, want ViewInput", app.view)
	}
}

func TestThreadLoadedErrorKeepsSession(t *testing.T) {
	app := NewApp(config.Default(), nil, nil)

	model, _ := app.Update(messages.StartExportMsg{URL: "https://reddit.com/r/go/comments/x1/"})
	app = model.(App)
	exp := sampleExport()
	model, _ = app.Update(messages.ThreadLoadedMsg{Generation: app.generation, Export: exp})
	app = model.(App)

	// A later failed fetch must not clobber the session.
	model, _ = app.Update(messages.StartExportMsg{URL: "https://reddit.com/r/go/comments/x2/"})
	app = model.(App)
	model, _ = app.Update(messages.ThreadLoadedMsg{Generation: app.generation, Err: errors.New("HTTP 404")})
	app = model.(App)

	if app.export != exp {
		t.Errorf("failed fetch replaced the export session")
	}
}

func TestDateFormatCycle(t *testing.T) {
	got := nextDateFormat(thread.DateISO8601)
	if got != thread.DateRFC1123 {
		t.Fatalf("after iso8601: %q", got)
	}
	got = nextDateFormat(got)
	if got != thread.DateUTC {
		t.Fatalf("after rfc1123: %q", got)
	}
	got = nextDateFormat(got)
	if got != thread.DateISO8601 {
		t.Fatalf("after utc: %q", got)
	}
}
