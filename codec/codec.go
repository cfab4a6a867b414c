// Package codec holds the serializer/deserializer pairs applied at the store
// boundary. The cache clients never inspect or validate encoded bytes; they
// apply the codec unconditionally on every write and every hit.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
