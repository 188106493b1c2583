package domain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Keyed é um mapa que preserva a ordem de inserção das chaves,
// inclusive na serialização para JSON.
type Keyed[V any] struct {
	keys   []string
	values map[string]V
}

func NewKeyed[V any](capacity int) Keyed[V] {
	return Keyed[V]{
		keys:   make([]string, 0, capacity),
		values: make(map[string]V, capacity),
	}
}

// Set insere ou substitui o valor de key. Uma chave existente mantém sua posição.
func (k *Keyed[V]) Set(key string, value V) {
	if k.values == nil {
		k.values = make(map[string]V)
	}
	if _, exists := k.values[key]; !exists {
		k.keys = append(k.keys, key)
	}
	k.values[key] = value
}

func (k Keyed[V]) Get(key string) (V, bool) {
	v, ok := k.values[key]
	return v, ok
}

func (k Keyed[V]) Keys() []string {
	keys := make([]string, len(k.keys))
	copy(keys, k.keys)
	return keys
}

func (k Keyed[V]) Len() int {
	return len(k.keys)
}

func (k Keyed[V]) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, key := range k.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		stream.WriteVal(k.values[key])
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}
