package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/palemoky/literature/internal/config"
	"github.com/palemoky/literature/internal/game/room"
	"github.com/palemoky/literature/internal/protocol"
	"github.com/palemoky/literature/internal/server/handler"
	"github.com/palemoky/literature/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// Server WebSocket 服务器
type Server struct {
	config    *config.Config
	redis     *redis.Client
	store     *storage.RedisStore
	rooms     *room.Manager
	handler   *handler.Handler
	logger    *log.Logger
	clients   map[string]*Client
	clientsMu sync.RWMutex
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config, logger *log.Logger) (*Server, error) {
	// 初始化 Redis 客户端
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 测试 Redis 连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	s := &Server{
		config:  cfg,
		redis:   rdb,
		store:   storage.NewRedisStore(rdb, cfg.Game.RoomTTLDuration()),
		logger:  logger,
		clients: make(map[string]*Client),
	}

	// 初始化房间管理器
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	s.rooms = room.NewManager(s.store, s, rng, logger)

	// 初始化消息处理器
	s.handler = handler.NewHandler(handler.Deps{
		Server: s,
		Rooms:  s.rooms,
		Logger: logger,
	})

	return s, nil
}

// Start 启动服务器并阻塞直到 ctx 取消或监听失败
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		IdleTimeout:       60 * time.Second,
	}

	s.logger.Info("服务器启动", "addr", fmt.Sprintf("ws://%s/ws", addr), "cpus", runtime.NumCPU())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("正在关闭服务器...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)

		s.closeClients()
		_ = s.redis.Close()
		return err
	})

	g.Go(func() error {
		s.monitorStats(ctx)
		return nil
	})

	return g.Wait()
}

// monitorStats 定期监控服务器状态
func (s *Server) monitorStats(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			s.logger.Info("监控",
				"online", s.GetOnlineCount(),
				"goroutines", runtime.NumGoroutine(),
				"mem_mb", fmt.Sprintf("%.2f", float64(m.Alloc)/1024/1024))
		}
	}
}

// handleWebSocket 处理 WebSocket 连接
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket 升级失败", "err", err)
		return
	}

	client := NewClient(s, conn)

	// 带 player_id 的连接视为回到已有座位
	if playerID := r.URL.Query().Get("player_id"); playerID != "" {
		client.SetID(playerID)
	}
	if roomID := r.URL.Query().Get("room_id"); roomID != "" {
		client.SetRoom(roomID)
	}

	s.registerClient(client)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID: client.GetID(),
	}))

	// 回座的玩家立即拿到当前名单和手牌
	if roomID := client.GetRoom(); roomID != "" {
		// 升级后请求上下文随时可能取消，用独立上下文补发
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.rooms.AnnouncePlayers(ctx, roomID); err != nil {
			s.logger.Warn("重播玩家列表失败", "room_id", roomID, "err", err)
		}
		_ = s.rooms.ResendHand(ctx, client.GetID())
		cancel()
	}

	s.logger.Info("客户端已连接", "player_id", client.GetID())

	// 启动客户端读写协程
	go client.ReadPump()
	go client.WritePump()
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// closeClients 关闭所有客户端连接
func (s *Server) closeClients() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for _, client := range s.clients {
		client.Close()
	}
}
