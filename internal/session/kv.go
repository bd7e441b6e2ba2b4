package session

// KV is the minimal key/value surface the session store needs. A missing
// key is a normal state: Get reports it with ok=false, never an error.
type KV interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV is an in-process KV used in tests.
type MemoryKV struct {
	m map[string]string
}

// NewMemoryKV returns an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (kv *MemoryKV) Get(key string) (string, bool) {
	v, ok := kv.m[key]
	return v, ok
}

func (kv *MemoryKV) Set(key, value string) error {
	kv.m[key] = value
	return nil
}

func (kv *MemoryKV) Delete(key string) error {
	delete(kv.m, key)
	return nil
}
