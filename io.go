package dynarray

import (
	"fmt"
	"io"
	"strings"
)

// Scan membaca token yang dipisah whitespace dari r ke slot hidup
// [0, Len()) secara berurutan, satu token per slot lewat fmt.Fscan.
// Scan tidak pernah menumbuhkan atau menyusutkan Array: pemanggil wajib
// menentukan ukurannya dulu (Resize atau konstruktor). Token yang tersisa
// di r dibiarkan tidak terbaca.
//
// Bila sebuah token gagal di-parse atau stream habis lebih awal, Scan
// berhenti dan mengembalikan error yang menyebut slot yang gagal; slot
// sebelumnya sudah terisi.
func (a *Array[T]) Scan(r io.Reader) error {
	for i := 0; i < a.length; i++ {
		if _, err := fmt.Fscan(r, &a.data[i]); err != nil {
			return fmt.Errorf("scan element %d: %w", i, err)
		}
	}
	return nil
}

// Print menulis elemen hidup [0, Len()) ke w, dipisah satu spasi, diakhiri
// satu line terminator. Array kosong menghasilkan satu baris kosong.
func (a *Array[T]) Print(w io.Writer) error {
	for i := 0; i < a.length; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, a.data[i]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// String mengembalikan byte yang sama persis dengan keluaran Print,
// termasuk line terminator penutup. Memenuhi fmt.Stringer.
func (a *Array[T]) String() string {
	var sb strings.Builder
	_ = a.Print(&sb) // strings.Builder tidak pernah gagal menulis
	return sb.String()
}
