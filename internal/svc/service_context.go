package svc

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fachebot/roundtable-bot/internal/config"
	"github.com/fachebot/roundtable-bot/internal/engine"
	"github.com/fachebot/roundtable-bot/internal/ent"
	"github.com/fachebot/roundtable-bot/internal/llm"
	"github.com/fachebot/roundtable-bot/internal/logger"
	"github.com/fachebot/roundtable-bot/internal/model"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config          *config.Config
	DbClient        *ent.Client
	TransportProxy  *http.Transport
	DiscussionModel *model.DiscussionModel
	RatingModel     *model.RatingModel
	LLMClient       *llm.Client
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建SOCKS5代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	svcCtx := &ServiceContext{
		Config:          c,
		DbClient:        client,
		TransportProxy:  transportProxy,
		DiscussionModel: model.NewDiscussionModel(client.Discussion),
		RatingModel:     model.NewRatingModel(client.Rating),
		LLMClient:       llm.NewClient(&c.LLM, &c.Engine, transportProxy),
	}
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}

// DiscussionStore 把引擎产出的讨论结果写入数据库，实现引擎的持久化接口
type DiscussionStore struct {
	model *model.DiscussionModel
}

func NewDiscussionStore(m *model.DiscussionModel) *DiscussionStore {
	return &DiscussionStore{model: m}
}

// SaveDiscussion 序列化讨论结果并写库
func (s *DiscussionStore) SaveDiscussion(ctx context.Context, result *engine.Result) error {
	agentsJSON, err := json.Marshal(result.AgentNames)
	if err != nil {
		return fmt.Errorf("序列化成员列表失败: %w", err)
	}
	historyJSON, err := json.Marshal(result.ChatHistory)
	if err != nil {
		return fmt.Errorf("序列化讨论记录失败: %w", err)
	}

	_, err = s.model.Create(ctx, &model.DiscussionData{
		DiscussionID: result.DiscussionID,
		Topic:        result.Topic,
		AgentsJSON:   string(agentsJSON),
		HistoryJSON:  string(historyJSON),
		Summary:      result.Summary,
		User:         result.User,
	})
	if err != nil {
		return fmt.Errorf("写入讨论记录失败: %w", err)
	}
	return nil
}
