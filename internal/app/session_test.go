package app

import (
	"bytes"
	"strings"
	"testing"
)

// runScript feeds newline-separated menu input to a session and returns the
// output. Input is non-interactive, so menus and prompts are suppressed.
func runScript(t *testing.T, a *App, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	if err := a.RunSession(in, &out, false); err != nil {
		t.Fatalf("RunSession() error = %v", err)
	}
	return out.String()
}

func TestRunSession_AddDisplayExit(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t)

	out := runScript(t, a,
		"2", "1", "Olena", "380501112233", "pfizer", "2021-11-20", "09:00", "09:30",
		"5",
		".",
	)

	if !strings.Contains(out, "Request added.") {
		t.Errorf("output missing add confirmation:\n%s", out)
	}
	if !strings.Contains(out, "ID: 1, Name: Olena") {
		t.Errorf("output missing displayed record:\n%s", out)
	}
}

func TestRunSession_InvalidFieldAbortsAdd(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t)

	out := runScript(t, a,
		"2", "1", "Olena", "380501112233", "sputnik", // invalid vaccine ends the add
		"5",
		".",
	)

	if !strings.Contains(out, "An error occurred:") {
		t.Errorf("output missing validation error:\n%s", out)
	}
	if !strings.Contains(out, "The collection is empty") {
		t.Errorf("aborted add still committed a record:\n%s", out)
	}
}

func TestRunSession_RemoveNotFoundContinues(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t)

	out := runScript(t, a,
		"3", "99",
		"5",
		".",
	)

	if !strings.Contains(out, "An error occurred:") {
		t.Errorf("output missing not-found error:\n%s", out)
	}
	if !strings.Contains(out, "The collection is empty") {
		t.Errorf("session did not continue after error:\n%s", out)
	}
}

func TestRunSession_EditUndoScenario(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t)

	out := runScript(t, a,
		"2", "1", "Olena", "380501112233", "pfizer", "2021-11-20", "09:00", "09:30",
		"2", "2", "Taras", "380671112233", "moderna", "2021-11-21", "10:00", "10:30",
		"4", "1", "Oksana", "380501112233", "pfizer", "2021-11-20", "09:00", "09:30",
		"9", // undo the edit
		"5",
		".",
	)

	if !strings.Contains(out, "Request updated.") {
		t.Errorf("output missing edit confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Undo completed.") {
		t.Errorf("output missing undo confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Name: Olena") {
		t.Errorf("undo did not restore the original record:\n%s", out)
	}
	if strings.Contains(out[strings.LastIndex(out, "Undo completed."):], "Oksana") {
		t.Errorf("edited record survived the undo:\n%s", out)
	}
}

func TestRunSession_SaveLoad(t *testing.T) {
	t.Parallel()
	a, st, _ := newTestApp(t)

	runScript(t, a,
		"2", "1", "Olena", "380501112233", "pfizer", "2021-11-20", "09:00", "09:30",
		"6",
		".",
	)

	// A second session over the same store loads what the first saved.
	b, _, _ := newTestApp(t)
	b.store = st
	out := runScript(t, b,
		"1",
		"5",
		".",
	)

	if !strings.Contains(out, "Loaded 1 request(s), skipped 0 line(s).") {
		t.Errorf("output missing load summary:\n%s", out)
	}
	if !strings.Contains(out, "ID: 1, Name: Olena") {
		t.Errorf("output missing loaded record:\n%s", out)
	}
}

func TestRunSession_RedoAfterUndo(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t)

	out := runScript(t, a,
		"2", "1", "Olena", "380501112233", "pfizer", "2021-11-20", "09:00", "09:30",
		"2", "2", "Taras", "380671112233", "moderna", "2021-11-21", "10:00", "10:30",
		"9",  // undo drops Taras
		"10", // redo brings Taras back
		"5",
		".",
	)

	if !strings.Contains(out, "Redo completed.") {
		t.Errorf("output missing redo confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Name: Taras") {
		t.Errorf("redo did not restore the second record:\n%s", out)
	}
}

func TestRunSession_InvalidChoice(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t)

	out := runScript(t, a, "42", ".")
	if !strings.Contains(out, "Invalid choice. Please try again.") {
		t.Errorf("output missing invalid-choice notice:\n%s", out)
	}
}

func TestRunSession_EndOfInputEndsSession(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t)

	var out bytes.Buffer
	if err := a.RunSession(strings.NewReader("5\n"), &out, false); err != nil {
		t.Fatalf("RunSession() error = %v", err)
	}
}
