package alerts

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Bakuzaci/zora-dash/internal/model"
)

func alert(tx string) model.WhaleAlert {
	return model.WhaleAlert{TxHash: tx, AmountUSD: 1500, Direction: "buy"}
}

func hashes(list []model.WhaleAlert) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.TxHash
	}
	return out
}

func TestMergeLiveEventsFirst(t *testing.T) {
	buffer := []model.WhaleAlert{alert("D")}
	snapshot := []model.WhaleAlert{alert("A"), alert("B"), alert("C")}

	got := hashes(Merge(buffer, snapshot, DisplayCap))
	want := []string{"D", "A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("merged = %v, want %v", got, want)
	}
}

// A trade present both in the buffer and the snapshot appears exactly
// once, at its live position.
func TestMergeDedup(t *testing.T) {
	buffer := []model.WhaleAlert{alert("D"), alert("A")}
	snapshot := []model.WhaleAlert{alert("A"), alert("B"), alert("C")}

	got := hashes(Merge(buffer, snapshot, DisplayCap))
	want := []string{"D", "A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("merged = %v, want %v", got, want)
	}
}

func TestMergeCap(t *testing.T) {
	var buffer, snapshot []model.WhaleAlert
	for i := 0; i < 30; i++ {
		buffer = append(buffer, alert(fmt.Sprintf("live-%d", i)))
		snapshot = append(snapshot, alert(fmt.Sprintf("snap-%d", i)))
	}

	got := Merge(buffer, snapshot, DisplayCap)
	if len(got) != DisplayCap {
		t.Fatalf("merged length = %d, want %d", len(got), DisplayCap)
	}
	// All live entries survive; the snapshot fills the remainder.
	if got[0].TxHash != "live-0" || got[29].TxHash != "live-29" {
		t.Errorf("live entries not ahead of snapshot: %v", hashes(got)[:3])
	}
	if got[30].TxHash != "snap-0" {
		t.Errorf("snapshot tail starts with %q", got[30].TxHash)
	}
}

// Re-deriving from the same inputs yields identical output.
func TestMergeIdempotent(t *testing.T) {
	buffer := []model.WhaleAlert{alert("D"), alert("A")}
	snapshot := []model.WhaleAlert{alert("A"), alert("B")}

	first := Merge(buffer, snapshot, DisplayCap)
	second := Merge(buffer, snapshot, DisplayCap)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("merge is not deterministic: %v vs %v", first, second)
	}
}

func TestMergeEmptyInputs(t *testing.T) {
	if got := Merge(nil, nil, DisplayCap); len(got) != 0 {
		t.Errorf("merge of empty inputs = %v", got)
	}

	snapshot := []model.WhaleAlert{alert("A")}
	got := Merge(nil, snapshot, DisplayCap)
	if len(got) != 1 || got[0].TxHash != "A" {
		t.Errorf("snapshot-only merge = %v", hashes(got))
	}
}
