package dynarray

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestScanFillsLiveSlots(t *testing.T) {
	a := NewFilled(3, 0)
	r := strings.NewReader("10 20 30")
	if err := a.Scan(r); err != nil {
		t.Fatalf("scan: %v", err)
	}
	for i, w := range []int{10, 20, 30} {
		if a.At(i) != w {
			t.Fatalf("element %d: got %d, want %d", i, a.At(i), w)
		}
	}
}

func TestScanAcrossLines(t *testing.T) {
	// newline dihitung sebagai whitespace biasa
	a := NewFilled(4, 0)
	if err := a.Scan(strings.NewReader("1 2\n3\t4\n")); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if a.At(3) != 4 {
		t.Fatalf("element 3: got %d, want 4", a.At(3))
	}
}

func TestScanNeverResizes(t *testing.T) {
	a := NewFilled(2, 0)
	// token berlebih dibiarkan di reader
	r := strings.NewReader("1 2 3 4")
	if err := a.Scan(r); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("scan changed the length: %d", a.Len())
	}
	rest := make([]byte, 8)
	n, _ := r.Read(rest)
	if !strings.Contains(string(rest[:n]), "3") {
		t.Fatalf("scan consumed more tokens than it has slots: %q", rest[:n])
	}
}

func TestScanEmptyArrayReadsNothing(t *testing.T) {
	a := New[int]()
	r := strings.NewReader("1 2 3")
	if err := a.Scan(r); err != nil {
		t.Fatalf("scan on empty array must be a no-op, got %v", err)
	}
	if r.Len() != len("1 2 3") {
		t.Fatalf("scan on empty array consumed input")
	}
}

func TestScanReportsFailingSlot(t *testing.T) {
	a := NewFilled(3, 0)
	err := a.Scan(strings.NewReader("1 bukan-angka 3"))
	if err == nil {
		t.Fatalf("expected an error for a malformed token")
	}
	if !strings.Contains(err.Error(), "element 1") {
		t.Fatalf("error must name the failing slot: %v", err)
	}
	// slot sebelum kegagalan sudah terisi
	if a.At(0) != 1 {
		t.Fatalf("element before the failure lost: %d", a.At(0))
	}
}

func TestScanShortInput(t *testing.T) {
	a := NewFilled(3, 0)
	err := a.Scan(strings.NewReader("1 2"))
	if err == nil {
		t.Fatalf("expected an error when the stream runs dry")
	}
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected a wrapped io.EOF, got %v", err)
	}
	if !strings.Contains(err.Error(), "element 2") {
		t.Fatalf("error must name slot 2: %v", err)
	}
}

func TestScanStrings(t *testing.T) {
	a := NewFilled(2, "")
	if err := a.Scan(strings.NewReader("halo dunia")); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if a.At(0) != "halo" || a.At(1) != "dunia" {
		t.Fatalf("unexpected tokens: %v", a.Slice())
	}
}

func TestPrintFormat(t *testing.T) {
	var sb strings.Builder
	a := Of(1, 2, 3)
	if err := a.Print(&sb); err != nil {
		t.Fatalf("print: %v", err)
	}
	if got := sb.String(); got != "1 2 3\n" {
		t.Fatalf("print output %q, want %q", got, "1 2 3\n")
	}
}

func TestPrintEmpty(t *testing.T) {
	var sb strings.Builder
	if err := New[int]().Print(&sb); err != nil {
		t.Fatalf("print: %v", err)
	}
	if got := sb.String(); got != "\n" {
		t.Fatalf("empty array must print a bare line terminator, got %q", got)
	}
}

func TestStringMatchesPrint(t *testing.T) {
	a := Of("x", "y")
	var sb strings.Builder
	if err := a.Print(&sb); err != nil {
		t.Fatalf("print: %v", err)
	}
	if a.String() != sb.String() {
		t.Fatalf("String() %q differs from Print output %q", a.String(), sb.String())
	}
}

func TestScanPrintRoundTrip(t *testing.T) {
	src := Of(5, 10, 15, 20)
	dst := NewFilled(src.Len(), 0)
	if err := dst.Scan(strings.NewReader(src.String())); err != nil {
		t.Fatalf("round trip scan: %v", err)
	}
	if !Equal(src, dst) {
		t.Fatalf("round trip mismatch: %v vs %v", src.Slice(), dst.Slice())
	}
}
