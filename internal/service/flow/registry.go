package flow

import (
	"sync"
	"time"
)

// Registry хранит открытые потоки бронирования по ID.
// Каждый поток изолирован: у него свой черновик и своя блокировка оплаты.
type Registry struct {
	mu       sync.RWMutex
	flows    map[string]*Machine
	maxFlows int
	onChange func(active int)
}

// NewRegistry создает реестр с ограничением на количество открытых потоков
func NewRegistry(maxFlows int, onChange func(active int)) *Registry {
	return &Registry{
		flows:    make(map[string]*Machine),
		maxFlows: maxFlows,
		onChange: onChange,
	}
}

// Add регистрирует новый поток
func (r *Registry) Add(m *Machine) error {
	r.mu.Lock()
	if r.maxFlows > 0 && len(r.flows) >= r.maxFlows {
		r.mu.Unlock()
		return ErrTooManyFlows
	}
	r.flows[m.ID()] = m
	active := len(r.flows)
	r.mu.Unlock()

	r.notify(active)
	return nil
}

// Get возвращает поток по ID
func (r *Registry) Get(id string) (*Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.flows[id]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return m, nil
}

// Close закрывает поток и удаляет его из реестра.
// Во время блокировки оплаты поток не закрывается.
func (r *Registry) Close(id string) error {
	m, err := r.Get(id)
	if err != nil {
		return err
	}

	if err := m.Close(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.flows, id)
	active := len(r.flows)
	r.mu.Unlock()

	r.notify(active)
	return nil
}

// EvictIdle закрывает и удаляет потоки, к которым не обращались дольше ttl.
// Потоки с активной блокировкой оплаты или в процессе отправки не трогаются.
// Возвращает ID удаленных потоков.
func (r *Registry) EvictIdle(now time.Time, ttl time.Duration) []string {
	r.mu.RLock()
	candidates := make([]*Machine, 0, len(r.flows))
	for _, m := range r.flows {
		candidates = append(candidates, m)
	}
	r.mu.RUnlock()

	var evicted []string
	for _, m := range candidates {
		if m.CloseIfIdle(now, ttl) {
			evicted = append(evicted, m.ID())
		}
	}
	if len(evicted) == 0 {
		return nil
	}

	r.mu.Lock()
	for _, id := range evicted {
		delete(r.flows, id)
	}
	active := len(r.flows)
	r.mu.Unlock()

	r.notify(active)
	return evicted
}

// RunEviction периодически вызывает EvictIdle до закрытия stopCh
func (r *Registry) RunEviction(stopCh <-chan struct{}, interval, ttl time.Duration, onEvict func(ids []string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			if ids := r.EvictIdle(now, ttl); len(ids) > 0 && onEvict != nil {
				onEvict(ids)
			}
		}
	}
}

// Len количество открытых потоков
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.flows)
}

func (r *Registry) notify(active int) {
	if r.onChange != nil {
		r.onChange(active)
	}
}
