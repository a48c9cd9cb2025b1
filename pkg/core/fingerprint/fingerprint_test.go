package fingerprint

import (
	"testing"
	"time"
)

func TestComputeDeterministic(t *testing.T) {
	data := []byte("balance sheet contents")
	mtime := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

	a := Compute(data, "balance.xlsx", mtime)
	b := Compute(data, "balance.xlsx", mtime)
	if a != b {
		t.Error("same inputs must produce the same fingerprint")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestComputeSensitivity(t *testing.T) {
	data := []byte("balance sheet contents")
	mtime := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	base := Compute(data, "balance.xlsx", mtime)

	if Compute([]byte("other contents"), "balance.xlsx", mtime) == base {
		t.Error("different bytes must change the fingerprint")
	}
	if Compute(data, "renamed.xlsx", mtime) == base {
		t.Error("different name must change the fingerprint")
	}
	if Compute(data, "balance.xlsx", mtime.Add(time.Second)) == base {
		t.Error("different mtime must change the fingerprint")
	}
}

func TestComputeSetStableAcrossCalls(t *testing.T) {
	names := []string{"income.xlsx", "balance.xlsx"}
	payloads := [][]byte{[]byte("income data"), []byte("balance data")}

	a := ComputeSet(names, payloads)
	b := ComputeSet(names, payloads)
	if a != b {
		t.Error("same upload set must produce the same fingerprint")
	}

	if ComputeSet([]string{"balance.xlsx", "income.xlsx"},
		[][]byte{[]byte("balance data"), []byte("income data")}) == a {
		t.Error("file order is part of the key")
	}
	if ComputeSet(names[:1], payloads[:1]) == a {
		t.Error("dropping a file must change the fingerprint")
	}
}
