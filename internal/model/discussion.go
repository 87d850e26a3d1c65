package model

import (
	"context"
	"time"

	"github.com/fachebot/roundtable-bot/internal/ent"
	"github.com/fachebot/roundtable-bot/internal/ent/discussion"
)

type DiscussionModel struct {
	client *ent.DiscussionClient
}

func NewDiscussionModel(client *ent.DiscussionClient) *DiscussionModel {
	return &DiscussionModel{client: client}
}

type DiscussionData struct {
	DiscussionID string
	Topic        string
	AgentsJSON   string // 参与成员名称列表（JSON）
	HistoryJSON  string // 完整讨论记录（JSON）
	Summary      string
	User         string
}

// Create 保存讨论结果
// discussion_id 唯一，重复保存会返回约束冲突错误，由调用方决定是否致命
func (m *DiscussionModel) Create(ctx context.Context, data *DiscussionData) (*ent.Discussion, error) {
	create := m.client.Create().
		SetDiscussionID(data.DiscussionID).
		SetTopic(data.Topic).
		SetAgents(data.AgentsJSON).
		SetChatHistory(data.HistoryJSON).
		SetSummary(data.Summary)

	if data.User != "" {
		create.SetUser(data.User)
	}
	return create.Save(ctx)
}

// GetByDiscussionID 按讨论ID查询
func (m *DiscussionModel) GetByDiscussionID(ctx context.Context, discussionID string) (*ent.Discussion, error) {
	return m.client.Query().
		Where(discussion.DiscussionIDEQ(discussionID)).
		Only(ctx)
}

// GetByUser 查询指定用户的全部讨论，按创建时间排序
func (m *DiscussionModel) GetByUser(ctx context.Context, user string) ([]*ent.Discussion, error) {
	return m.client.Query().
		Where(discussion.UserEQ(user)).
		Order(discussion.ByCreateTime()).
		All(ctx)
}

// DeleteBefore 删除指定时间之前创建的讨论
func (m *DiscussionModel) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return m.client.Delete().
		Where(discussion.CreateTimeLT(cutoff)).
		Exec(ctx)
}
