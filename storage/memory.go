package storage

// Memory is a map-backed store for tests and throwaway sessions.
type Memory struct {
	m map[string]string

	// FailSet, when non-nil, is returned from every Set call. Tests use it
	// to exercise persistence failure paths.
	FailSet error
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	if s.FailSet != nil {
		return s.FailSet
	}
	s.m[key] = value
	return nil
}
