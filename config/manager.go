package config

import "sync"

// Manager хранит актуальную конфигурацию и поддерживает горячую
// перезагрузку. Перезагрузка допустима только между попытками
// разрушения: внутри одной попытки конфигурация читается один раз.
type Manager struct {
	mu   sync.RWMutex
	path string
	cfg  *Config
}

// NewManager загружает конфигурацию и возвращает менеджер
func NewManager(path string) (*Manager, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Manager{path: path, cfg: cfg}, nil
}

// Current возвращает актуальную конфигурацию
func (m *Manager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// Reload повторно читает файл конфигурации.
// При ошибке чтения прежняя конфигурация сохраняется.
func (m *Manager) Reload() error {
	cfg, err := Load(m.path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()
	return nil
}
