package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fachebot/roundtable-bot/internal/config"
	"github.com/fachebot/roundtable-bot/internal/logger"
	"github.com/fachebot/roundtable-bot/internal/model"
	"github.com/robfig/cron/v3"
)

// locUTC 清理任务统一使用 UTC 计时
var locUTC = time.UTC

// Cleaner 按 cron 计划清理过期的讨论记录
type Cleaner struct {
	cron            *cron.Cron
	discussionModel *model.DiscussionModel
	config          *config.Engine
	ctx             context.Context
	cancel          context.CancelFunc
	mu              sync.Mutex
}

func NewCleaner(discussionModel *model.DiscussionModel, cfg *config.Engine) *Cleaner {
	return &Cleaner{
		cron:            cron.New(cron.WithLocation(locUTC)),
		discussionModel: discussionModel,
		config:          cfg,
	}
}

// Start 启动清理调度器；RetentionDays 为 0 时不启用
func (c *Cleaner) Start() error {
	if c.config.RetentionDays <= 0 {
		logger.Infof("[Cleaner] 未配置保留天数，清理任务未启用")
		return nil
	}

	c.mu.Lock()
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.mu.Unlock()

	_, err := c.cron.AddFunc(c.config.CleanupCron, c.runCleanup)
	if err != nil {
		return fmt.Errorf("注册清理任务失败: %w", err)
	}

	c.cron.Start()
	logger.Infof("[Cleaner] 清理调度器已启动: %s, 保留 %d 天", c.config.CleanupCron, c.config.RetentionDays)
	return nil
}

// Stop 停止清理调度器
func (c *Cleaner) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	ctx := c.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Cleaner] 清理调度器已停止")
}

// runCleanup 执行一次过期讨论清理（cron 触发）
func (c *Cleaner) runCleanup() {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return
	default:
	}

	cutoff := time.Now().In(locUTC).AddDate(0, 0, -c.config.RetentionDays)
	cutoff = time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, locUTC)

	logger.Infof("[Cleaner] 开始清理 %s 之前的讨论", cutoff.Format("2006-01-02"))
	deleted, err := c.discussionModel.DeleteBefore(ctx, cutoff)
	if err != nil {
		logger.Errorf("[Cleaner] 清理讨论失败: %v", err)
	} else {
		logger.Infof("[Cleaner] 已清理 %d 条讨论", deleted)
	}
}
