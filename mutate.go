package dynarray

// Push menambahkan v di logical end. Bila buffer penuh, kapasitas
// digandakan lebih dulu (lihat grow). Biaya ter-amortisasi O(1).
func (a *Array[T]) Push(v T) {
	if a.length == len(a.data) {
		a.grow()
	}
	a.data[a.length] = v
	a.length++
}

// Emplace mengonstruksi elemen baru langsung di slot cadangan pada logical
// end, tanpa nilai perantara: init menerima pointer ke slot yang masih
// zero value dan mengisinya di tempat. init nil berarti elemen baru
// dibiarkan sebagai zero value. Tumbuh bila penuh, seperti Push.
func (a *Array[T]) Emplace(init func(*T)) {
	if a.length == len(a.data) {
		a.grow()
	}
	if init != nil {
		init(&a.data[a.length])
	}
	a.length++
}

// Pop menghancurkan elemen terakhir dan mengembalikan salinannya.
// Kapasitas tidak berubah (tidak ada penyusutan implisit). Fatal bila
// Array kosong.
func (a *Array[T]) Pop() T {
	if a.length == 0 {
		fatalf("Pop: empty array")
	}
	a.length--
	v := a.data[a.length]
	var zero T
	a.data[a.length] = zero
	return v
}

// Clear menghancurkan semua elemen hidup; Len() menjadi 0 dan kapasitas
// tidak berubah.
func (a *Array[T]) Clear() {
	clear(a.data[:a.length])
	a.length = 0
}

// Swap menukar buffer, length, dan statistik kedua Array dalam O(1).
// Tidak ada elemen yang disalin atau dihancurkan. Swap dengan diri
// sendiri adalah no-op.
func (a *Array[T]) Swap(other *Array[T]) {
	if a == other {
		return
	}
	a.data, other.data = other.data, a.data
	a.length, other.length = other.length, a.length
	a.stats, other.stats = other.stats, a.stats
}
