package dynarray

// Stats menyimpan pembukuan realokasi sebuah Array.
//
// Reallocs menghitung berapa kali buffer diganti (termasuk pelepasan ke
// kapasitas 0 oleh ShrinkToFit pada Array kosong); ElemMoves menghitung
// total elemen yang dipindahkan antar buffer selama realokasi. Dengan
// aturan penggandaan, n Push beruntun menghasilkan O(log n) Reallocs dan
// O(n) ElemMoves — dua angka inilah yang membuat sifat amortisasi bisa
// diamati langsung.
//
// Field biasa tanpa atomics: Array memang dikontrak single-owner.
type Stats struct {
	Reallocs  uint64
	ElemMoves uint64
}

// GetStats mengambil snapshot statistik realokasi.
func (a *Array[T]) GetStats() Stats { return a.stats }

// ResetStats mengatur ulang penghitung realokasi ke nol.
func (a *Array[T]) ResetStats() { a.stats = Stats{} }
