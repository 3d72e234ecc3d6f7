package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"
)

// FileStore persists shop tokens as a JSON object keyed by shop domain.
// Every write rewrites the whole file through a temp file and rename, so a
// crash mid-write never leaves a truncated store behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed token store at path.
func NewFileStore(path string) (ports.TokenStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create token store directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Put(ctx context.Context, shop *domain.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shops, err := s.load()
	if err != nil {
		return err
	}

	record := *shop
	record.UpdatedAt = time.Now()
	if existing, ok := shops[shop.Domain]; ok && !existing.InstalledAt.IsZero() {
		record.InstalledAt = existing.InstalledAt
	} else if record.InstalledAt.IsZero() {
		record.InstalledAt = record.UpdatedAt
	}
	shops[shop.Domain] = &record

	return s.save(shops)
}

func (s *FileStore) Get(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shops, err := s.load()
	if err != nil {
		return nil, err
	}
	shop, ok := shops[shopDomain]
	if !ok {
		return nil, nil
	}
	return shop, nil
}

func (s *FileStore) List(ctx context.Context) ([]*domain.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shops, err := s.load()
	if err != nil {
		return nil, err
	}

	domains := make([]string, 0, len(shops))
	for d := range shops {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	out := make([]*domain.Shop, 0, len(shops))
	for _, d := range domains {
		out = append(out, shops[d])
	}
	return out, nil
}

func (s *FileStore) load() (map[string]*domain.Shop, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]*domain.Shop{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token store: %w", err)
	}

	shops := map[string]*domain.Shop{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &shops); err != nil {
			return nil, fmt.Errorf("token store file is corrupt: %w", err)
		}
	}
	return shops, nil
}

func (s *FileStore) save(shops map[string]*domain.Shop) error {
	data, err := json.MarshalIndent(shops, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tokens-*.json")
	if err != nil {
		return fmt.Errorf("failed to create token store temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write token store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close token store temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace token store: %w", err)
	}
	return nil
}
