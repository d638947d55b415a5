package query_test

import (
	"context"
	"testing"
	"time"

	"impactbot/src-server/query"
)

var eventsHeader = []string{"Type", "Date", "Time", "Zoom Link", "MC", "Presenter", "Impact", "Status", "Notes"}

func TestNextEvent(t *testing.T) {
	fs := newFakeStore()
	fs.tables[query.TableEvents] = [][]string{
		eventsHeader,
		{"Webinar", "2025-03-01", "20:00", "https://zoom.us/j/1", "Asha", "Ravi", "", "Scheduled", ""},
		{"Workshop", "2025-03-12", "18:30", "https://zoom.us/j/2", "Maya", "", "", "Scheduled", ""},
		{"Webinar", "2025-03-10", "20:00", "https://zoom.us/j/3", "", "", "", "Scheduled", ""},
		{"Webinar", "not-a-date", "20:00", "", "", "", "", "Scheduled", ""},
	}
	q := newQueries(fs)

	ev, ok, err := q.NextEvent(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected an upcoming event")
	}
	// 2025-03-01 is in the past relative to the frozen clock, 2025-03-10
	// 20:00 is the same day but still ahead of 12:00.
	if ev.Date != "2025-03-10" || ev.Time != "20:00" {
		t.Errorf("wrong next event: %s %s", ev.Date, ev.Time)
	}
}

func TestNextEventNone(t *testing.T) {
	fs := newFakeStore()
	fs.tables[query.TableEvents] = [][]string{
		eventsHeader,
		{"Webinar", "2024-01-01", "20:00", "", "", "", "", "Scheduled", ""},
	}
	q := newQueries(fs)

	_, ok, err := q.NextEvent(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("no event should qualify")
	}
}

func TestUpcomingEvents(t *testing.T) {
	fs := newFakeStore()
	fs.tables[query.TableEvents] = [][]string{
		eventsHeader,
		{"Webinar", "2025-03-15", "20:00", "", "", "", "", "Scheduled", ""},
		{"Workshop", "2025-03-12", "18:30", "", "", "", "", "Scheduled", ""},
		{"Webinar", "2025-03-12", "09:00", "", "", "", "", "Scheduled", ""},
		{"Webinar", "2025-03-30", "20:00", "", "", "", "", "Scheduled", ""}, // past window
		{"Webinar", "2025-03-01", "20:00", "", "", "", "", "Scheduled", ""}, // past
		{"Webinar", "garbage", "20:00", "", "", "", "", "Scheduled", ""},
	}
	q := newQueries(fs)

	events, err := q.UpcomingEvents(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// ascending by (date, time)
	if events[0].Date != "2025-03-12" || events[0].Time != "09:00" {
		t.Errorf("wrong first event: %+v", events[0].Event)
	}
	if events[1].Date != "2025-03-12" || events[1].Time != "18:30" {
		t.Errorf("wrong second event: %+v", events[1].Event)
	}
	if events[2].Date != "2025-03-15" {
		t.Errorf("wrong third event: %+v", events[2].Event)
	}
	// sheet rows are 1-based with the header as row 1
	if events[0].Row != 4 || events[1].Row != 3 || events[2].Row != 2 {
		t.Errorf("wrong rows: %d %d %d", events[0].Row, events[1].Row, events[2].Row)
	}
}

func TestEventsOnDate(t *testing.T) {
	fs := newFakeStore()
	fs.tables[query.TableEvents] = [][]string{
		eventsHeader,
		{"Webinar", "2025-03-12", "20:00", "", "", "", "", "Scheduled", ""},
		{"Workshop", "2025-03-12", "09:00", "", "", "", "", "Scheduled", ""},
		{"Webinar", "2025-03-13", "10:00", "", "", "", "", "Scheduled", ""},
	}
	q := newQueries(fs)

	events, err := q.EventsOnDate(context.Background(), time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// ascending by time within the day
	if events[0].Time != "09:00" || events[1].Time != "20:00" {
		t.Errorf("order: %q %q", events[0].Time, events[1].Time)
	}
}

func TestSaveEvent(t *testing.T) {
	fs := newFakeStore()
	fs.tables[query.TableEvents] = [][]string{eventsHeader}
	q := newQueries(fs)

	if err := q.SaveEvent(context.Background(), query.Event{
		Type:      "Webinar",
		Date:      "2025-03-12",
		Time:      "20:30",
		ZoomLink:  "https://zoom.us/j/123456789",
		MC:        "Asha",
		Presenter: "Ravi",
		Impact:    "Maya, Dev",
		Status:    query.StatusScheduled,
	}); err != nil {
		t.Fatal(err)
	}

	rows := fs.tables[query.TableEvents]
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	got := rows[1]
	want := []string{"Webinar", "2025-03-12", "20:30", "https://zoom.us/j/123456789", "Asha", "Ravi", "Maya, Dev", "Scheduled", ""}
	if len(got) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("col %d: got %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestUpdateEventRoles(t *testing.T) {
	fs := newFakeStore()
	fs.tables[query.TableEvents] = [][]string{
		eventsHeader,
		{"Webinar", "2025-03-12", "20:00", "link", "OldMC", "OldPresenter", "OldImpact", "Scheduled", "note"},
	}
	q := newQueries(fs)

	mc := "Asha"
	impacts := []string{"Maya", "Dev"}
	if err := q.UpdateEventRoles(context.Background(), 2, query.RolePatch{
		MC:      &mc,
		Impacts: &impacts,
	}); err != nil {
		t.Fatal(err)
	}

	row := fs.tables[query.TableEvents][1]
	if row[4] != "Asha" {
		t.Errorf("MC not updated: %q", row[4])
	}
	// the presenter field was nil in the patch and must survive
	if row[5] != "OldPresenter" {
		t.Errorf("presenter clobbered: %q", row[5])
	}
	if row[6] != "Maya, Dev" {
		t.Errorf("impacts not updated: %q", row[6])
	}
	if row[8] != "note" {
		t.Errorf("notes clobbered: %q", row[8])
	}
}
