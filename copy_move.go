package dynarray

// Clone membuat salinan dalam dengan buffer independen.
//
// Kapasitas salinan mengikuti kapasitas sumber, bukan hanya Len()-nya,
// sehingga slot cadangan ikut terjaga dan pola pertumbuhan setelah
// penyalinan identik dengan aslinya. Statistik salinan mulai dari nol.
func (a *Array[T]) Clone() *Array[T] {
	dst := &Array[T]{}
	if n := len(a.data); n > 0 {
		dst.data = make([]T, n)
		copy(dst.data, a.data[:a.length])
		dst.length = a.length
	}
	return dst
}

// CopyFrom mengganti isi a dengan salinan dalam dari src.
//
// Mengikuti pola build-then-commit: salinan utuh dibangun dulu lewat
// Clone, baru ditukar masuk lewat Swap, sehingga buffer lama a baru
// dilepas setelah pengganti selesai dibangun. CopyFrom(a) pada diri
// sendiri adalah no-op.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	tmp := src.Clone()
	a.Swap(tmp)
	// buffer lama a lepas bersama tmp
}

// MoveFrom memindahkan kepemilikan buffer src ke a dalam O(1): buffer a
// yang lama dilepas, a mengambil alih state src, dan src ditinggalkan
// dalam keadaan kosong (Len() == 0, Cap() == 0, tanpa buffer). Tidak ada
// elemen yang disalin. MoveFrom(a) pada diri sendiri adalah no-op.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.data = src.data
	a.length = src.length
	a.stats = src.stats
	src.data = nil
	src.length = 0
	src.stats = Stats{}
}

// Take adalah bentuk konstruksi dari MoveFrom: membuat Array baru yang
// mengambil alih buffer src dan meninggalkan src kosong.
func Take[T any](src *Array[T]) *Array[T] {
	dst := &Array[T]{}
	dst.MoveFrom(src)
	return dst
}
