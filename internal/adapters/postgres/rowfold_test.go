package postgres

import (
	"reflect"
	"testing"
)

type joinRow struct {
	parentID int
	name     string
	child    string
}

type parent struct {
	id       int
	name     string
	children []string
}

func newParentFolder() *Folder[int, joinRow, parent] {
	return &Folder[int, joinRow, parent]{
		Key:   func(r joinRow) int { return r.parentID },
		Begin: func(r joinRow) parent { return parent{id: r.parentID, name: r.name} },
		Add: func(p *parent, r joinRow) {
			if r.child != "" {
				p.children = append(p.children, r.child)
			}
		},
	}
}

func TestFolderGroupsContiguousRows(t *testing.T) {
	f := newParentFolder()
	rows := []joinRow{
		{1, "first", "a"},
		{1, "first", "b"},
		{2, "second", ""}, // left-join null child
		{3, "third", "c"},
	}
	for _, r := range rows {
		f.Push(r)
	}

	got := f.Finish()
	want := []parent{
		{id: 1, name: "first", children: []string{"a", "b"}},
		{id: 2, name: "second"},
		{id: 3, name: "third", children: []string{"c"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Finish() = %+v, want %+v", got, want)
	}
}

func TestFolderOutputCountMatchesDistinctKeys(t *testing.T) {
	f := newParentFolder()
	for i := 0; i < 5; i++ {
		f.Push(joinRow{parentID: 7, name: "same", child: "x"})
	}
	f.Push(joinRow{parentID: 8, name: "other", child: "y"})

	got := f.Finish()
	if len(got) != 2 {
		t.Fatalf("len(Finish()) = %d, want 2", len(got))
	}
	if len(got[0].children) != 5 {
		t.Errorf("first group has %d children, want 5", len(got[0].children))
	}
}

func TestFolderDoesNotDeduplicateChildren(t *testing.T) {
	// The fold is a pure pass over rows; a repeated child row stays repeated.
	f := newParentFolder()
	f.Push(joinRow{1, "p", "dup"})
	f.Push(joinRow{1, "p", "dup"})

	got := f.Finish()
	if want := []string{"dup", "dup"}; !reflect.DeepEqual(got[0].children, want) {
		t.Fatalf("children = %v, want %v", got[0].children, want)
	}
}

func TestFolderSplitsNonContiguousKeys(t *testing.T) {
	f := newParentFolder()
	f.Push(joinRow{1, "p", "a"})
	f.Push(joinRow{2, "q", "b"})
	f.Push(joinRow{1, "p", "c"})

	got := f.Finish()
	if len(got) != 3 {
		t.Fatalf("len(Finish()) = %d, want 3 (non-contiguous keys split)", len(got))
	}
}

func TestFolderEmptyInput(t *testing.T) {
	f := newParentFolder()
	got := f.Finish()
	if got == nil {
		t.Fatal("Finish() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Fatalf("len(Finish()) = %d, want 0", len(got))
	}
}
