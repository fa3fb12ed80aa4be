package dynarray

import "fmt"

// Get mengambil elemen pada indeks i tanpa pengecekan terhadap Len().
// Pemanggil wajib menjamin 0 <= i < Len(); bila dilanggar, nilai yang
// kembali adalah isi slot mati (zero value) atau panic bounds-check
// runtime bila i di luar kapasitas. Gunakan At untuk akses terperiksa.
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Set menulis elemen pada indeks i tanpa pengecekan terhadap Len().
// Kontraknya sama dengan Get: pemanggil wajib menjamin i < Len().
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// At mengambil elemen pada indeks i dengan pengecekan batas.
// Indeks di luar [0, Len()) adalah kondisi fatal: satu baris diagnosa
// ditulis ke stderr lalu proses dihentikan. Lihat TryAt untuk varian yang
// mengembalikan error.
func (a *Array[T]) At(i int) T {
	if i < 0 || i >= a.length {
		fatalf("At: index %d out of range (len %d)", i, a.length)
	}
	return a.data[i]
}

// Front mengembalikan elemen pertama. Fatal bila Array kosong.
func (a *Array[T]) Front() T {
	if a.length == 0 {
		fatalf("Front: empty array")
	}
	return a.data[0]
}

// Back mengembalikan elemen terakhir (tepat sebelum logical end).
// Fatal bila Array kosong.
func (a *Array[T]) Back() T {
	if a.length == 0 {
		fatalf("Back: empty array")
	}
	return a.data[a.length-1]
}

// TryAt adalah varian At yang dapat dipulihkan: indeks di luar jangkauan
// mengembalikan error yang membungkus ErrOutOfRange, bukan menghentikan
// proses.
func (a *Array[T]) TryAt(i int) (T, error) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, fmt.Errorf("index %d out of range (len %d): %w", i, a.length, ErrOutOfRange)
	}
	return a.data[i], nil
}

// TryFront adalah varian Front yang mengembalikan error pembungkus
// ErrEmpty bila Array kosong.
func (a *Array[T]) TryFront() (T, error) {
	if a.length == 0 {
		var zero T
		return zero, fmt.Errorf("front: %w", ErrEmpty)
	}
	return a.data[0], nil
}

// TryBack adalah varian Back yang mengembalikan error pembungkus
// ErrEmpty bila Array kosong.
func (a *Array[T]) TryBack() (T, error) {
	if a.length == 0 {
		var zero T
		return zero, fmt.Errorf("back: %w", ErrEmpty)
	}
	return a.data[a.length-1], nil
}

// Slice mengembalikan view atas elemen hidup, data[:Len()].
//
// View ini meng-alias buffer internal: menulis lewat view terlihat oleh
// Array dan sebaliknya. Setiap realokasi (Push saat penuh, Reserve,
// ShrinkToFit, Resize yang membesar) memutus alias tersebut — view lama
// tetap valid tetapi tidak lagi menunjuk buffer milik Array.
func (a *Array[T]) Slice() []T { return a.data[:a.length] }
