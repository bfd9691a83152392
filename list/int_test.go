package list

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestZeroValueCell(t *testing.T) {
	var l List[int]
	if l.cell != nil {
		t.Error("expected zero-value list to have no cell, has one")
	}
	l = Cons(7, l)
	if l.cell == nil {
		t.Fatal("expected cons to allocate a cell, didn't")
	}
	if l.cell.tail.cell != nil {
		t.Error("expected tail of ⟨7⟩ to be empty, isn't")
	}
}

func TestTailAliasing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fplist.list")
	defer teardown()
	//
	tail := Of(2, 3)
	a := Cons(1, tail)
	b := Cons(0, tail)
	if a.cell == b.cell {
		t.Error("expected distinct lists to have distinct front cells, haven't")
	}
	if a.cell.tail.cell != tail.cell {
		t.Error("expected a to alias the shared tail, doesn't")
	}
	if b.cell.tail.cell != tail.cell {
		t.Error("expected b to alias the shared tail, doesn't")
	}
	t.Logf(printList(a))
	t.Logf(printList(b))
}

func TestCombinatorsAllocateFreshSpines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fplist.list")
	defer teardown()
	//
	l := Of(1, 2, 3)
	m := Map(func(x int) int { return x }, l)
	if m.cell == l.cell {
		t.Error("expected Map to build a fresh spine, shares cells with input")
	}
	f := Filter(func(int) bool { return true }, l)
	if f.cell == l.cell {
		t.Error("expected Filter to build a fresh spine, shares cells with input")
	}
}

// --- Print list ------------------------------------------------------------

func printList[T any](l List[T]) string {
	header := fmt.Sprintf("\nList(len=%d)\n", Len(l))
	printer := tp.New()
	printCell(printer, l.cell)
	return header + printer.String() + "\n"
}

func printCell[T any](printer tp.Tree, c *cell[T]) {
	if c == nil {
		printer.AddNode("nil")
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("%v", c.head))
	printCell(branch, c.tail.cell)
}
