package model

import (
	"context"
	"fmt"

	"github.com/fachebot/roundtable-bot/internal/ent"
	"github.com/fachebot/roundtable-bot/internal/ent/rating"
)

// RatingKind 评价类型
type RatingKind string

const (
	RatingUpvote   RatingKind = "upvote"
	RatingDownvote RatingKind = "downvote"
)

type RatingModel struct {
	client *ent.RatingClient
}

func NewRatingModel(client *ent.RatingClient) *RatingModel {
	return &RatingModel{client: client}
}

// Increment 为指定讨论、轮次、成员累加一票，每次写入都落盘
// 读-改-写之间没有加锁，并发评价按最后写入者生效处理
func (m *RatingModel) Increment(ctx context.Context, discussionID string, iteration int, agentName string, kind RatingKind) (*ent.Rating, error) {
	if kind != RatingUpvote && kind != RatingDownvote {
		return nil, fmt.Errorf("未知的评价类型: %s", kind)
	}

	existing, err := m.client.Query().
		Where(
			rating.DiscussionIDEQ(discussionID),
			rating.IterationEQ(iteration),
			rating.AgentNameEQ(agentName),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if ent.IsNotFound(err) {
		create := m.client.Create().
			SetDiscussionID(discussionID).
			SetIteration(iteration).
			SetAgentName(agentName)
		if kind == RatingUpvote {
			create.SetUpvotes(1)
		} else {
			create.SetDownvotes(1)
		}
		return create.Save(ctx)
	}

	update := m.client.UpdateOne(existing)
	if kind == RatingUpvote {
		update.AddUpvotes(1)
	} else {
		update.AddDownvotes(1)
	}
	return update.Save(ctx)
}

// Get 查询单条评分记录
func (m *RatingModel) Get(ctx context.Context, discussionID string, iteration int, agentName string) (*ent.Rating, error) {
	return m.client.Query().
		Where(
			rating.DiscussionIDEQ(discussionID),
			rating.IterationEQ(iteration),
			rating.AgentNameEQ(agentName),
		).
		Only(ctx)
}

// GetByDiscussion 查询一场讨论的全部评分记录
func (m *RatingModel) GetByDiscussion(ctx context.Context, discussionID string) ([]*ent.Rating, error) {
	return m.client.Query().
		Where(rating.DiscussionIDEQ(discussionID)).
		Order(rating.ByIteration()).
		All(ctx)
}
