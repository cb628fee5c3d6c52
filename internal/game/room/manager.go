package room

import (
	"math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
)

// Manager 房间生命周期管理器 + 问牌引擎。
// 对同一房间的所有改写操作（加入、发牌、问牌、改回合）都在
// 房间锁内串行执行，包括随后的事件广播；
// 不同房间之间完全并行。只读查询不取锁
type Manager struct {
	repo   Repository
	bc     Broadcaster
	rng    *rand.Rand
	logger *log.Logger

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewManager 创建管理器。随机源由调用方注入，便于复现测试
func NewManager(repo Repository, bc Broadcaster, rng *rand.Rand, logger *log.Logger) *Manager {
	return &Manager{
		repo:   repo,
		bc:     bc,
		rng:    rng,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lockRoom 取房间锁，返回解锁函数。
// 锁按需创建且不回收：房间数量有限，泄漏量可忽略
func (m *Manager) lockRoom(roomID string) func() {
	m.locksMu.Lock()
	mu, ok := m.locks[roomID]
	if !ok {
		mu = &sync.Mutex{}
		m.locks[roomID] = mu
	}
	m.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}
