package index

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/havlicek/easybook/internal/tables"
)

func TestRegistry_AppendTables(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.AppendTables("1", "01-intro.html", "Intro", []tables.Record{{Number: 1, Slug: "table-1-1"}})
	r.AppendTables("2", "02-usage.html", "Usage", []tables.Record{{Number: 1, Slug: "table-2-1"}, {Number: 2, Slug: "table-2-2"}})

	want := []Entry{
		{Item: "1", Page: "01-intro.html", Title: "Intro", Record: tables.Record{Number: 1, Slug: "table-1-1"}},
		{Item: "2", Page: "02-usage.html", Title: "Usage", Record: tables.Record{Number: 1, Slug: "table-2-1"}},
		{Item: "2", Page: "02-usage.html", Title: "Usage", Record: tables.Record{Number: 2, Slug: "table-2-2"}},
	}
	if diff := cmp.Diff(want, r.Tables()); diff != "" {
		t.Errorf("Tables() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_EmptyAppendSkipped(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.AppendTables("1", "", "Intro", nil)
	r.Append(KeyTables, []Entry{})

	if r.Has(KeyTables) {
		t.Error("empty appends should not register the key")
	}
	if got := r.Tables(); got != nil {
		t.Errorf("Tables() = %v, want nil", got)
	}
	if got := r.Keys(); len(got) != 0 {
		t.Errorf("Keys() = %v, want empty", got)
	}
}

func TestRegistry_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.AppendTables("1", "", "Intro", []tables.Record{{Number: 1}})

	list := r.Tables()
	list[0].Record.Number = 99

	if r.Tables()[0].Record.Number != 1 {
		t.Error("mutating the returned list changed the registry")
	}
}

func TestRegistry_Keys(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Append("publishing.list.figures", []Entry{{Item: "1"}})
	r.Append(KeyTables, []Entry{{Item: "1"}})

	if diff := cmp.Diff([]string{"publishing.list.figures", KeyTables}, r.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ConcurrentAppend(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.AppendTables(fmt.Sprint(i), "", "", []tables.Record{{Number: 1}, {Number: 2}})
		}(i)
	}
	wg.Wait()

	if got := len(r.Tables()); got != workers*2 {
		t.Errorf("len(Tables()) = %d, want %d", got, workers*2)
	}
}
