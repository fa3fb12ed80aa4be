package dynarray

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors returned by the recoverable access variants (TryAt,
// TryFront, TryBack). Match with errors.Is.
var (
	// ErrOutOfRange menandai indeks di luar [0, Len()).
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmpty menandai akses elemen pada Array kosong.
	ErrEmpty = errors.New("empty array")
)

// Jalur fatal: pelanggaran prasyarat terperiksa (indeks di luar jangkauan
// pada At, akses Front/Back/Pop pada Array kosong) bukan error yang bisa
// dipulihkan — satu baris diagnosa ditulis ke stderr lalu proses berhenti
// dengan status 1. Kedua hook di bawah bisa ditukar oleh test agar jalur
// ini teruji tanpa mematikan proses test.
var (
	fatalOut io.Writer      = os.Stderr
	exitFunc func(code int) = os.Exit
)

// fatalf melaporkan pelanggaran prasyarat dan menghentikan proses.
func fatalf(format string, args ...any) {
	fmt.Fprintf(fatalOut, "dynarray: "+format+"\n", args...)
	exitFunc(1)
}
