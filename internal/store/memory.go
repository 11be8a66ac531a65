package store

// MemStore keeps blobs in process memory. It backs tests and ephemeral runs
// where nothing should touch the disk.
type MemStore struct {
	blobs map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

// Read returns a copy of the blob under key, or ErrKeyNotFound.
func (s *MemStore) Read(key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores a copy of data under key.
func (s *MemStore) Write(key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key] = stored
	return nil
}

// Delete removes the blob under key; absent keys are a no-op.
func (s *MemStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}
