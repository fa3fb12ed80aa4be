package dynarray

// Reserve menaikkan kapasitas menjadi persis newCap bila newCap lebih
// besar dari kapasitas sekarang; selain itu no-op. Elemen hidup dipindah
// ke buffer baru dengan urutan tetap dan Len() tidak berubah.
func (a *Array[T]) Reserve(newCap int) {
	if newCap > len(a.data) {
		a.reallocate(newCap)
	}
}

// ShrinkToFit menurunkan kapasitas menjadi persis Len() bila ada slot
// cadangan; selain itu no-op. Idempoten: pemanggilan kedua berturut-turut
// tidak melakukan apa-apa.
func (a *Array[T]) ShrinkToFit() {
	if len(a.data) > a.length {
		a.reallocate(a.length)
	}
}

// Resize mengubah jumlah elemen hidup menjadi newSize.
//
// Bila mengecil, elemen ekor dihancurkan (slotnya di-zero-kan) tanpa
// mengubah kapasitas. Bila membesar, kapasitas dinaikkan dulu lewat
// Reserve lalu salinan fill ditambahkan sampai Len() == newSize.
// newSize negatif adalah pelanggaran fatal.
func (a *Array[T]) Resize(newSize int, fill T) {
	switch {
	case newSize < 0:
		fatalf("Resize: negative size %d", newSize)
	case newSize < a.length:
		clear(a.data[newSize:a.length])
		a.length = newSize
	case newSize > a.length:
		a.Reserve(newSize)
		for a.length < newSize {
			a.data[a.length] = fill
			a.length++
		}
	}
}

// grow menggandakan kapasitas saat append menemukan length == kapasitas.
// Target: max(1, kapasitas*2). Penggandaan inilah yang membuat biaya
// Push ter-amortisasi menjadi O(1).
func (a *Array[T]) grow() {
	a.reallocate(max(1, len(a.data)*2))
}

// reallocate memasang buffer baru berkapasitas persis newCap dan
// memindahkan seluruh elemen hidup ke dalamnya. Satu-satunya titik
// di paket ini yang mengganti buffer.
func (a *Array[T]) reallocate(newCap int) {
	a.stats.Reallocs++
	if newCap == 0 {
		// kapasitas 0 berarti tanpa buffer
		a.data = nil
		return
	}
	newData := make([]T, newCap)
	moved := copy(newData, a.data[:a.length])
	a.data = newData
	a.stats.ElemMoves += uint64(moved)
}
