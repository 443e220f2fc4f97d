package vaxq_test

import (
	"errors"
	"testing"

	"vaxq-go/internal/model"
	"vaxq-go/internal/testutil"
	"vaxq-go/internal/vaxq"
)

func newCollection() *vaxq.Collection {
	return vaxq.NewCollection(vaxq.DefaultHistoryDepth, vaxq.NewNopLogger())
}

func ids(c *vaxq.Collection) []string {
	var out []string
	for _, r := range c.Requests() {
		out = append(out, r.ID())
	}
	return out
}

func TestCollection_AddKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	c := newCollection()
	c.Add(testutil.NewRequest(t, "2", "Olena"))
	c.Add(testutil.NewRequest(t, "1", "Taras"))
	c.Add(testutil.NewRequest(t, "3", "Ivan"))

	got := ids(c)
	want := []string{"2", "1", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestCollection_Remove(t *testing.T) {
	t.Run("present id removes exactly one and saves once", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		c.Add(testutil.NewRequest(t, "1", "Olena"))
		c.Add(testutil.NewRequest(t, "2", "Taras"))
		saves := c.History().Len()

		if err := c.Remove("1"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
		if got := c.History().Len(); got != saves+1 {
			t.Errorf("history grew by %d states, want 1", got-saves)
		}
	})

	t.Run("absent id leaves collection unchanged", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		c.Add(testutil.NewRequest(t, "1", "Olena"))
		saves := c.History().Len()

		err := c.Remove("9")
		var nf *vaxq.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Remove(absent) error = %v, want *NotFoundError", err)
		}
		if nf.ID != "9" {
			t.Errorf("NotFoundError.ID = %q, want %q", nf.ID, "9")
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
		if got := c.History().Len(); got != saves {
			t.Errorf("history changed on failed remove")
		}
	})

	t.Run("duplicate ids remove only the first match", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		c.Add(testutil.NewRequest(t, "1", "Olena"))
		c.Add(testutil.NewRequest(t, "1", "Taras"))

		if err := c.Remove("1"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if c.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", c.Len())
		}
		if c.Requests()[0].PatientName() != "Taras" {
			t.Errorf("remaining request = %q, want the second duplicate", c.Requests()[0].PatientName())
		}
	})
}

func TestCollection_Edit(t *testing.T) {
	t.Run("overwrites every field of the first match", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		c.Add(testutil.NewRequest(t, "1", "Olena"))
		c.Add(testutil.NewRequest(t, "2", "Taras"))

		updated := testutil.NewRequest(t, "1", "Oksana")
		if err := updated.SetVaccine("moderna"); err != nil {
			t.Fatalf("SetVaccine() error = %v", err)
		}
		if err := c.Edit("1", updated); err != nil {
			t.Fatalf("Edit() error = %v", err)
		}

		got := c.Requests()[0]
		if got.PatientName() != "Oksana" || got.Vaccine() != "moderna" {
			t.Errorf("edited request = %v, want all fields from updated", got)
		}
		if c.Requests()[1].PatientName() != "Taras" {
			t.Errorf("other request mutated by edit")
		}
	})

	t.Run("absent id returns NotFoundError, same policy as remove", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		c.Add(testutil.NewRequest(t, "1", "Olena"))

		err := c.Edit("9", testutil.NewRequest(t, "9", "Taras"))
		var nf *vaxq.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Edit(absent) error = %v, want *NotFoundError", err)
		}
	})

	t.Run("edit does not alias the updated request", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		c.Add(testutil.NewRequest(t, "1", "Olena"))

		updated := testutil.NewRequest(t, "1", "Oksana")
		if err := c.Edit("1", updated); err != nil {
			t.Fatalf("Edit() error = %v", err)
		}
		if err := updated.SetPatientName("Katria"); err != nil {
			t.Fatalf("SetPatientName() error = %v", err)
		}
		if c.Requests()[0].PatientName() != "Oksana" {
			t.Errorf("collection mutated through caller's request")
		}
	})
}

func TestCollection_Search(t *testing.T) {
	t.Parallel()

	c := newCollection()
	pf := testutil.NewRequest(t, "1", "Olena")
	md := testutil.NewRequest(t, "2", "Taras")
	if err := md.SetVaccine("moderna"); err != nil {
		t.Fatalf("SetVaccine() error = %v", err)
	}
	c.Add(pf)
	c.Add(md)

	t.Run("matches substring case-insensitively", func(t *testing.T) {
		got := c.Search("PFIZER")
		if got.Len() != 1 || got.Requests()[0].ID() != "1" {
			t.Fatalf("Search(PFIZER) ids = %v, want [1]", ids(got))
		}
	})

	t.Run("matches any field", func(t *testing.T) {
		got := c.Search("taras")
		if got.Len() != 1 || got.Requests()[0].ID() != "2" {
			t.Fatalf("Search(taras) ids = %v, want [2]", ids(got))
		}
	})

	t.Run("result has no history and does not mutate the source", func(t *testing.T) {
		got := c.Search("a")
		if got.History() != nil {
			t.Error("search result has a history, want none")
		}
		if c.Len() != 2 {
			t.Errorf("source Len() = %d after search, want 2", c.Len())
		}
	})

	t.Run("no match returns empty collection", func(t *testing.T) {
		if got := c.Search("astra"); got.Len() != 0 {
			t.Errorf("Search(astra) Len() = %d, want 0", got.Len())
		}
	})
}

func TestCollection_SortBy(t *testing.T) {
	t.Parallel()

	t.Run("stable sort by field, no history state", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		c.Add(testutil.NewRequest(t, "3", "Olena"))
		c.Add(testutil.NewRequest(t, "1", "Taras"))
		c.Add(testutil.NewRequest(t, "2", "Olena"))
		saves := c.History().Len()

		if err := c.SortBy(model.FieldID); err != nil {
			t.Fatalf("SortBy() error = %v", err)
		}

		got := ids(c)
		want := []string{"1", "2", "3"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
		if c.History().Len() != saves {
			t.Error("sort pushed a history state, want none")
		}
	})

	t.Run("equal keys keep insertion order", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		c.Add(testutil.NewRequest(t, "3", "Olena"))
		c.Add(testutil.NewRequest(t, "1", "Olena"))

		if err := c.SortBy(model.FieldName); err != nil {
			t.Fatalf("SortBy() error = %v", err)
		}
		got := ids(c)
		if got[0] != "3" || got[1] != "1" {
			t.Errorf("order = %v, want stable [3 1]", got)
		}
	})

	t.Run("unknown field is an error", func(t *testing.T) {
		t.Parallel()
		c := newCollection()
		if err := c.SortBy("surname"); err == nil {
			t.Error("SortBy(surname) = nil, want error")
		}
	})
}

func TestCollection_UndoScenario(t *testing.T) {
	t.Parallel()

	// Start empty, add A, add B, edit A, undo: the collection equals the
	// state after add(B) but before the edit.
	c := newCollection()
	a := testutil.NewRequest(t, "1", "Olena")
	b := testutil.NewRequest(t, "2", "Taras")
	c.Add(a)
	c.Add(b)

	edited := testutil.NewRequest(t, "1", "Oksana")
	if err := c.Edit("1", edited); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if c.Requests()[0].PatientName() != "Oksana" {
		t.Fatalf("PatientName = %q before undo, want %q", c.Requests()[0].PatientName(), "Oksana")
	}

	if !c.Undo() {
		t.Fatal("Undo() = false, want true")
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d after undo, want 2", c.Len())
	}
	if !c.Requests()[0].Equal(a) {
		t.Errorf("first record = %v after undo, want original %v", c.Requests()[0], a)
	}
	if !c.Requests()[1].Equal(b) {
		t.Errorf("second record = %v after undo, want %v", c.Requests()[1], b)
	}

	// And redo brings the edit back.
	if !c.Redo() {
		t.Fatal("Redo() = false, want true")
	}
	if c.Requests()[0].PatientName() != "Oksana" {
		t.Errorf("PatientName = %q after redo, want %q", c.Requests()[0].PatientName(), "Oksana")
	}
}

func TestCollection_UndoOnFreshCollectionIsNoop(t *testing.T) {
	t.Parallel()

	c := newCollection()
	if c.Undo() {
		t.Error("Undo() on empty collection = true, want false")
	}

	c.Add(testutil.NewRequest(t, "1", "Olena"))
	if c.Undo() {
		t.Error("Undo() after a single mutation = true, want false")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
