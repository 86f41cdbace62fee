package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Store mantém a base normalizada em memória e só a substitui quando o conteúdo do arquivo muda
type Store struct {
	path   string
	loader *Loader

	mu      sync.RWMutex
	current *Dataset
	size    int64
	modTime time.Time
}

func NewStore(path string, loader *Loader) *Store {
	return &Store{
		path:   path,
		loader: loader,
	}
}

// Load faz a carga inicial; qualquer erro aqui é fatal
func (s *Store) Load() (*Dataset, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, newLoadError(s.path, ErrUnreadableSource, err.Error())
	}

	ds, err := s.loader.LoadFile(s.path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = ds
	s.size = info.Size()
	s.modTime = info.ModTime()
	s.mu.Unlock()

	return ds, nil
}

// Current retorna a base carregada (nil antes do primeiro Load)
func (s *Store) Current() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh verifica tamanho e data de modificação; se mudaram, compara o hash do conteúdo
// e recarrega somente quando o conteúdo é diferente. Em caso de erro a base anterior é mantida.
func (s *Store) Refresh() (bool, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return false, newLoadError(s.path, ErrUnreadableSource, err.Error())
	}

	s.mu.RLock()
	current := s.current
	unchanged := current != nil && info.Size() == s.size && info.ModTime().Equal(s.modTime)
	s.mu.RUnlock()

	if unchanged {
		return false, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return false, newLoadError(s.path, ErrUnreadableSource, err.Error())
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if current != nil && current.Hash == hash {
		s.mu.Lock()
		s.size = info.Size()
		s.modTime = info.ModTime()
		s.mu.Unlock()

		logrus.WithField("source", s.path).Debug("Arquivo tocado sem alteração de conteúdo, base mantida")
		return false, nil
	}

	ds, err := s.loader.Parse(s.path, data)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	s.current = ds
	s.size = info.Size()
	s.modTime = info.ModTime()
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"source": s.path,
		"hash":   hash[:12],
		"rows":   len(ds.Records),
	}).Info("Base de serviços recarregada após alteração do arquivo")

	return true, nil
}
