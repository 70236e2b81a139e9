package store

// MemoryPort keeps snapshots in a map. Used in tests as a stand-in for the
// file and Redis ports.
type MemoryPort struct {
	data map[string][]byte
}

func NewMemoryPort() *MemoryPort {
	return &MemoryPort{data: map[string][]byte{}}
}

func (p *MemoryPort) Load(key string) ([]byte, error) {
	return p.data[key], nil
}

func (p *MemoryPort) Save(key string, data []byte) error {
	p.data[key] = data
	return nil
}
