package dynarray

// Array menyediakan dynamic array generik di atas satu alokasi heap yang
// kontigu.
//
// Representasi: `data` memuat seluruh slot yang teralokasi sehingga
// len(data) adalah kapasitas, sedangkan `length` menghitung elemen hidup
// pada data[:length]. Slot mati di data[length:] selalu bernilai zero value
// agar referensi lama bisa diambil kembali oleh GC.
//
// Invarian yang dijaga semua operasi:
//
//   - 0 <= length <= len(data)
//   - kapasitas 0 berarti tidak ada buffer (data == nil)
//   - buffer dimiliki tepat oleh satu Array; MoveFrom/Take memindahkan
//     kepemilikan dan meninggalkan sumber dalam keadaan kosong
//
// Zero value dari Array siap dipakai dan setara dengan New().
// Array tidak aman untuk akses konkuren.
type Array[T any] struct {
	data   []T   // seluruh slot teralokasi; len(data) == kapasitas
	length int   // jumlah elemen hidup
	stats  Stats // pembukuan realokasi, ikut berpindah bersama buffer
}

// New membuat Array kosong tanpa alokasi apa pun.
func New[T any]() *Array[T] { return &Array[T]{} }

// NewFilled membuat Array berisi count salinan value.
// Kapasitas dialokasikan persis sebesar count (length == kapasitas).
// count negatif adalah pelanggaran fatal.
func NewFilled[T any](count int, value T) *Array[T] {
	if count < 0 {
		fatalf("NewFilled: negative count %d", count)
	}
	a := &Array[T]{}
	if count > 0 {
		a.data = make([]T, count)
		for i := range a.data {
			a.data[i] = value
		}
		a.length = count
	}
	return a
}

// Of membuat Array dari daftar elemen, berurutan.
// Kapasitas dialokasikan persis sebesar jumlah elemen.
func Of[T any](values ...T) *Array[T] { return FromSlice(values) }

// FromSlice membuat Array berisi salinan seluruh isi src.
// Slice sumber tidak pernah di-alias: buffer baru selalu dialokasikan,
// persis sepanjang len(src).
func FromSlice[T any](src []T) *Array[T] {
	a := &Array[T]{}
	if len(src) > 0 {
		a.data = make([]T, len(src))
		copy(a.data, src)
		a.length = len(src)
	}
	return a
}

// Len mengembalikan jumlah elemen hidup.
func (a *Array[T]) Len() int { return a.length }

// Cap mengembalikan jumlah slot yang teralokasi.
func (a *Array[T]) Cap() int { return len(a.data) }

// Empty melaporkan apakah Array tidak memuat elemen hidup.
func (a *Array[T]) Empty() bool { return a.length == 0 }

// Reset menghancurkan semua elemen hidup dan melepas buffer, mengembalikan
// Array ke keadaan kosong (length == 0, kapasitas == 0). Aman dipanggil
// pada Array kosong.
func (a *Array[T]) Reset() {
	clear(a.data[:a.length])
	a.data = nil
	a.length = 0
	a.stats = Stats{}
}
