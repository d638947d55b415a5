package wizard_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"impactbot/src-server/query"
	"impactbot/src-server/store"
	"impactbot/src-server/utils"
	"impactbot/src-server/wizard"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// fakeStore is an in-memory store.Store for walking wizards end to end.
type fakeStore struct {
	tables  map[string][][]string
	failing bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][][]string{}}
}

func (f *fakeStore) ReadAll(ctx context.Context, table string) ([][]string, error) {
	if f.failing {
		return nil, store.ErrUnavailable
	}
	return f.tables[table], nil
}

func (f *fakeStore) ReadColumn(ctx context.Context, table string, col int) ([]string, error) {
	if f.failing {
		return nil, store.ErrUnavailable
	}
	var out []string
	for _, row := range f.tables[table] {
		if col >= 1 && col <= len(row) {
			out = append(out, row[col-1])
		} else {
			out = append(out, "")
		}
	}
	return out, nil
}

func (f *fakeStore) AppendRow(ctx context.Context, table string, row []string) error {
	if f.failing {
		return store.ErrUnavailable
	}
	f.tables[table] = append(f.tables[table], row)
	return nil
}

func (f *fakeStore) UpdateCell(ctx context.Context, table string, row, col int, value string) error {
	if f.failing {
		return store.ErrUnavailable
	}
	grid := f.tables[table]
	for len(grid) < row {
		grid = append(grid, nil)
	}
	for len(grid[row-1]) < col {
		grid[row-1] = append(grid[row-1], "")
	}
	grid[row-1][col-1] = value
	f.tables[table] = grid
	return nil
}

var _ store.Store = (*fakeStore)(nil)

func seedTables(fs *fakeStore) {
	fs.tables[query.TableEventTypes] = [][]string{
		{"Type"}, {"Webinar"}, {"Workshop"},
	}
	fs.tables[query.TableUserRoles] = [][]string{
		{"Admin", "MC", "Presenter", "Impact"},
		{"111", "Asha", "Ravi", "Maya"},
		{"", "Dev", "Kiran", "Dev"},
	}
	fs.tables[query.TableEvents] = [][]string{
		{"Type", "Date", "Time", "Zoom Link", "MC", "Presenter", "Impact", "Status", "Notes"},
	}
}

func newEngine(fs *fakeStore) (*wizard.Engine, *query.Queries) {
	q := query.New(fs, time.UTC)
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	e := wizard.NewEngine(wizard.NewMemoryStore())
	e.Register(wizard.SaveEvent(q, w, time.UTC))
	e.Register(wizard.AssignMC(q))
	return e, q
}

func TestRecognitionWalkthrough(t *testing.T) {
	fs := newFakeStore()
	seedTables(fs)
	fs.tables[query.TableCategories] = [][]string{
		{"Category"}, {"Gold"}, {"60%"},
	}

	q := query.New(fs, time.UTC)
	e := wizard.NewEngine(wizard.NewMemoryStore())
	e.Register(wizard.Recognition(q, utils.CleanupString))
	ctx := context.Background()

	prompt, err := e.Start(ctx, wizard.KindRecognition, "u1")
	if err != nil {
		t.Fatal(err)
	}
	sid := prompt.Session.ID

	// typed names get cleaned up
	prompt, _, err = e.HandleText(ctx, "u1", "  asha  ")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.HandleText(ctx, "u1", "ravi."); err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.HandleChoice(ctx, "u1", sid, "Gold"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.HandleChoice(ctx, "u1", sid, "Mar"); err != nil {
		t.Fatal(err)
	}
	// the last step is free text, so the commit rides on HandleText
	prompt, done, err := e.HandleText(ctx, "u1", " Great mentor ")
	if err != nil {
		t.Fatal(err)
	}
	if prompt != nil || done == nil {
		t.Fatal("expected the wizard to auto-commit")
	}

	rows := fs.tables[query.TableRecognitions]
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"Asha", "Ravi", "Gold", "Mar", "Great mentor"}
	for i := range want {
		if rows[0][i] != want[i] {
			t.Errorf("col %d: got %q, want %q", i+1, rows[0][i], want[i])
		}
	}
	if e.AwaitingText("u1") {
		t.Error("session should be deleted")
	}
}

func TestSaveEventWalkthrough(t *testing.T) {
	fs := newFakeStore()
	seedTables(fs)
	e, _ := newEngine(fs)
	ctx := context.Background()

	prompt, err := e.Start(ctx, wizard.KindSaveEvent, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if prompt.Step.Kind != wizard.StepChoice || len(prompt.Session.Options) != 2 {
		t.Fatalf("bad first prompt: %+v", prompt)
	}
	sid := prompt.Session.ID

	prompt, _, err = e.HandleChoice(ctx, "u1", sid, "Webinar")
	if err != nil {
		t.Fatal(err)
	}
	if prompt.Step.Name != "date" || !e.AwaitingText("u1") {
		t.Fatalf("expected the date step, got %q", prompt.Step.Name)
	}

	for _, text := range []string{"2025-03-12", "20:30", "https://zoom.us/j/123456789"} {
		prompt, _, err = e.HandleText(ctx, "u1", text)
		if err != nil {
			t.Fatal(err)
		}
	}
	if prompt.Step.Name != "mc" {
		t.Fatalf("expected the mc step, got %q", prompt.Step.Name)
	}

	prompt, _, err = e.HandleChoice(ctx, "u1", sid, "Asha")
	if err != nil {
		t.Fatal(err)
	}
	prompt, _, err = e.HandleChoice(ctx, "u1", sid, "Ravi")
	if err != nil {
		t.Fatal(err)
	}
	if prompt.Step.Kind != wizard.StepToggle {
		t.Fatalf("expected the toggle step, got %v", prompt.Step.Kind)
	}

	if _, err := e.ToggleChoice("u1", sid, "Maya"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ToggleChoice("u1", sid, "Dev"); err != nil {
		t.Fatal(err)
	}

	ses, err := e.Commit(ctx, "u1", sid)
	if err != nil {
		t.Fatal(err)
	}
	if ses.Values["type"] != "Webinar" {
		t.Errorf("type: %q", ses.Values["type"])
	}

	rows := fs.tables[query.TableEvents]
	if len(rows) != 2 {
		t.Fatalf("expected 1 appended row, got %d", len(rows)-1)
	}
	got := rows[1]
	want := []string{"Webinar", "2025-03-12", "20:30", "https://zoom.us/j/123456789", "Asha", "Ravi", "Maya, Dev", "Scheduled", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("col %d: got %q, want %q", i+1, got[i], want[i])
		}
	}

	// session is gone after commit
	if e.AwaitingText("u1") {
		t.Error("session should be deleted")
	}
	if _, err := e.Commit(ctx, "u1", sid); !errors.Is(err, wizard.ErrExpiredSession) {
		t.Errorf("double commit: %v", err)
	}
}

func TestTextValidation(t *testing.T) {
	fs := newFakeStore()
	seedTables(fs)
	e, _ := newEngine(fs)
	ctx := context.Background()

	prompt, err := e.Start(ctx, wizard.KindSaveEvent, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.HandleChoice(ctx, "u1", prompt.Session.ID, "Webinar"); err != nil {
		t.Fatal(err)
	}

	prompt, _, err = e.HandleText(ctx, "u1", "12/03/2025 or so, whenever")
	var verr *wizard.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	// the step did not advance
	if prompt == nil || prompt.Step.Name != "date" {
		t.Fatalf("expected to stay on the date step")
	}
	// a date buried in prose is not a date either
	if _, _, err := e.HandleText(ctx, "u1", "tomorrow maybe, not sure"); err == nil {
		t.Error("expected prose around a date to be rejected")
	}
	if _, _, err := e.HandleText(ctx, "u1", "2025-03-12"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := e.HandleText(ctx, "u1", "8 pm"); err == nil {
		t.Error("expected clock validation to reject prose")
	}
}

func TestNaturalDateInput(t *testing.T) {
	fs := newFakeStore()
	seedTables(fs)
	e, _ := newEngine(fs)
	ctx := context.Background()

	prompt, err := e.Start(ctx, wizard.KindSaveEvent, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.HandleChoice(ctx, "u1", prompt.Session.ID, "Webinar"); err != nil {
		t.Fatal(err)
	}

	prompt, _, err = e.HandleText(ctx, "u1", "tomorrow")
	if err != nil {
		t.Fatal(err)
	}
	got := prompt.Session.Values["date"]
	want := time.Now().UTC().AddDate(0, 0, 1).Format(query.DateLayout)
	if got != want {
		t.Errorf("date: got %q, want %q", got, want)
	}
}

func TestStaleMenuIsExpired(t *testing.T) {
	fs := newFakeStore()
	seedTables(fs)
	e, _ := newEngine(fs)
	ctx := context.Background()

	prompt, err := e.Start(ctx, wizard.KindSaveEvent, "u1")
	if err != nil {
		t.Fatal(err)
	}

	// a click carrying another session's nonce
	if _, _, err := e.HandleChoice(ctx, "u1", "stale-nonce", "Webinar"); !errors.Is(err, wizard.ErrExpiredSession) {
		t.Errorf("stale nonce: %v", err)
	}
	// a value outside the prompted options
	if _, _, err := e.HandleChoice(ctx, "u1", prompt.Session.ID, "NotAType"); !errors.Is(err, wizard.ErrExpiredSession) {
		t.Errorf("foreign value: %v", err)
	}
	// the live session still works
	if _, _, err := e.HandleChoice(ctx, "u1", prompt.Session.ID, "Webinar"); err != nil {
		t.Fatal(err)
	}
}

func TestCancelDiscardsEverything(t *testing.T) {
	fs := newFakeStore()
	seedTables(fs)
	e, _ := newEngine(fs)
	ctx := context.Background()

	prompt, err := e.Start(ctx, wizard.KindSaveEvent, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.HandleChoice(ctx, "u1", prompt.Session.ID, "Webinar"); err != nil {
		t.Fatal(err)
	}

	kind, ok := e.Cancel("u1")
	if !ok || kind != wizard.KindSaveEvent {
		t.Fatalf("cancel: %v %v", kind, ok)
	}
	// no partial write happened
	if len(fs.tables[query.TableEvents]) != 1 {
		t.Error("cancel must not write")
	}
	// cancelling again is a no-op
	if _, ok := e.Cancel("u1"); ok {
		t.Error("second cancel should find nothing")
	}
}

func TestFailedCommitKeepsSession(t *testing.T) {
	fs := newFakeStore()
	seedTables(fs)
	e, _ := newEngine(fs)
	ctx := context.Background()

	prompt, err := e.Start(ctx, wizard.KindSaveEvent, "u1")
	if err != nil {
		t.Fatal(err)
	}
	sid := prompt.Session.ID
	if _, _, err := e.HandleChoice(ctx, "u1", sid, "Webinar"); err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"2025-03-12", "20:30", "https://zoom.us/j/1"} {
		if _, _, err := e.HandleText(ctx, "u1", text); err != nil {
			t.Fatal(err)
		}
	}
	if _, _, err := e.HandleChoice(ctx, "u1", sid, "Asha"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.HandleChoice(ctx, "u1", sid, "Ravi"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ToggleChoice("u1", sid, "Maya"); err != nil {
		t.Fatal(err)
	}

	fs.failing = true
	if _, err := e.Commit(ctx, "u1", sid); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected the store failure, got %v", err)
	}

	// the same commit succeeds once the store is back
	fs.failing = false
	if _, err := e.Commit(ctx, "u1", sid); err != nil {
		t.Fatal(err)
	}
	if len(fs.tables[query.TableEvents]) != 2 {
		t.Error("expected exactly one appended row")
	}
}

func TestOneWizardPerUser(t *testing.T) {
	fs := newFakeStore()
	seedTables(fs)
	fs.tables[query.TableEvents] = append(fs.tables[query.TableEvents],
		[]string{"Webinar", time.Now().UTC().AddDate(0, 0, 1).Format(query.DateLayout), "20:00", "link", "", "", "", "Scheduled", ""},
	)
	e, _ := newEngine(fs)
	ctx := context.Background()

	first, err := e.Start(ctx, wizard.KindSaveEvent, "u1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Start(ctx, wizard.KindAssignMC, "u1")
	if err != nil {
		t.Fatal(err)
	}

	// the first session's menus are dead now
	if _, _, err := e.HandleChoice(ctx, "u1", first.Session.ID, "Webinar"); !errors.Is(err, wizard.ErrExpiredSession) {
		t.Errorf("old session should be expired: %v", err)
	}
	if second.Session.Kind != wizard.KindAssignMC {
		t.Errorf("active session kind: %v", second.Session.Kind)
	}
}

func TestSetupNeeded(t *testing.T) {
	fs := newFakeStore()
	// EventTypes deliberately missing
	fs.tables[query.TableUserRoles] = [][]string{
		{"Admin", "MC", "Presenter", "Impact"},
		{"111", "Asha", "Ravi", "Maya"},
	}
	e, _ := newEngine(fs)

	_, err := e.Start(context.Background(), wizard.KindSaveEvent, "u1")
	var serr *wizard.SetupNeededError
	if !errors.As(err, &serr) {
		t.Fatalf("expected a setup-needed error, got %v", err)
	}
	if !strings.Contains(serr.Msg, "EventTypes") {
		t.Errorf("message should name the sheet: %q", serr.Msg)
	}
	// no session was created
	if e.AwaitingText("u1") {
		t.Error("failed start must not leave a session")
	}
}

func TestToggleInvolution(t *testing.T) {
	ses := &wizard.Session{}
	ses.Toggle("a")
	ses.Toggle("b")
	ses.Toggle("a")
	if ses.HasSelected("a") || !ses.HasSelected("b") {
		t.Errorf("selection: %v", ses.Selected)
	}
	ses.Toggle("a")
	if len(ses.Selected) != 2 || ses.Selected[1] != "a" {
		t.Errorf("toggle order: %v", ses.Selected)
	}
}
