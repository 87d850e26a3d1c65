package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fachebot/roundtable-bot/internal/attachment"
	"github.com/fachebot/roundtable-bot/internal/config"
	"github.com/fachebot/roundtable-bot/internal/engine"
	"github.com/fachebot/roundtable-bot/internal/logger"
	"github.com/fachebot/roundtable-bot/internal/model"
	"github.com/fachebot/roundtable-bot/internal/scheduler"
	"github.com/fachebot/roundtable-bot/internal/summarizer"
	"github.com/fachebot/roundtable-bot/internal/svc"
)

var (
	configFile = flag.String("f", "etc/config.yaml", "the config file")
	agentsFile = flag.String("agents", "etc/agents.yaml", "the agent roster file")
	topic      = flag.String("topic", "", "discussion topic")
	iterations = flag.Int("n", 10, "number of iterations")
	language   = flag.String("lang", "中文", "answer language")
	filePath   = flag.String("file", "", "optional attachment (pdf or image)")
	user       = flag.String("user", "", "owning user, empty means do not persist")

	showID     = flag.String("show", "", "print a stored discussion by id and exit")
	listOwned  = flag.Bool("list", false, "list stored discussions of -user and exit")
	rateKind   = flag.String("rate", "", "rate a turn: upvote or downvote, requires -discussion/-iter/-agent")
	rateID     = flag.String("discussion", "", "discussion id for -rate")
	rateIter   = flag.Int("iter", 0, "iteration for -rate, 1-based")
	rateTarget = flag.String("agent", "", "agent name for -rate")
)

func main() {
	flag.Parse()

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c)
	defer svcCtx.Close()

	switch {
	case *rateKind != "":
		rateTurn(svcCtx)
	case *showID != "":
		showDiscussion(svcCtx)
	case *listOwned:
		listDiscussions(svcCtx)
	default:
		runDiscussion(c, svcCtx)
	}
}

// runDiscussion 运行一场完整讨论并把进度事件打印到标准输出
func runDiscussion(c *config.Config, svcCtx *svc.ServiceContext) {
	if *topic == "" {
		logger.Fatalf("请通过 -topic 指定讨论话题")
	}

	// 加载成员名单
	agentConfigs, err := config.LoadAgents(*agentsFile)
	if err != nil {
		logger.Fatalf("加载成员名单失败, %s", err)
	}
	agents := make([]engine.Agent, len(agentConfigs))
	for i, a := range agentConfigs {
		agents[i] = engine.Agent{
			Name:        a.Name,
			Personality: engine.Personality(a.Personality),
			Instruction: a.Description,
		}
	}

	// 可选附件，读取失败则降级为无附件继续
	var att *attachment.Attachment
	if *filePath != "" {
		att, err = attachment.FromFile(*filePath)
		if err != nil {
			logger.Errorf("读取附件失败，忽略附件继续: %s", err)
			att = nil
		}
	}

	// 创建摘要器和讨论引擎
	summarizerInstance := summarizer.NewSummarizer(
		svcCtx.LLMClient,
		time.Duration(c.Engine.SummaryGapSec)*time.Second,
	)
	engineInstance, err := engine.New(
		svcCtx.LLMClient,
		summarizerInstance,
		svc.NewDiscussionStore(svcCtx.DiscussionModel),
		&c.Engine,
	)
	if err != nil {
		logger.Fatalf("创建讨论引擎失败: %s", err)
	}

	// 启动过期讨论清理
	cleanerInstance := scheduler.NewCleaner(svcCtx.DiscussionModel, &c.Engine)
	if err := cleanerInstance.Start(); err != nil {
		logger.Fatalf("[Cleaner] 启动清理调度器失败: %s", err)
	}
	defer cleanerInstance.Stop()

	// 收到退出信号后在下一轮迭代前停止讨论
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	events, err := engineInstance.Run(ctx, &engine.DiscussionConfig{
		Topic:      *topic,
		Agents:     agents,
		Iterations: *iterations,
		Language:   *language,
		Attachment: att,
		User:       *user,
	})
	if err != nil {
		logger.Fatalf("启动讨论失败: %s", err)
	}

	for event := range events {
		if event.Iteration == 0 {
			logger.Infof("讨论 %s 结束，最终总结:\n%s", event.DiscussionID, event.Chunk)
			continue
		}
		fmt.Print(event.Chunk)
	}

	logger.Infof("正在关闭服务...")
}

// rateTurn 为某场讨论的一轮发言投票
func rateTurn(svcCtx *svc.ServiceContext) {
	if *rateID == "" || *rateIter < 1 || *rateTarget == "" {
		logger.Fatalf("评价需要同时指定 -discussion、-iter 和 -agent")
	}

	r, err := svcCtx.RatingModel.Increment(
		context.Background(), *rateID, *rateIter, *rateTarget, model.RatingKind(*rateKind))
	if err != nil {
		logger.Fatalf("评价失败: %s", err)
	}
	fmt.Printf("讨论 %s 第 %d 轮 成员 %s: 赞 %d / 踩 %d\n",
		r.DiscussionID, r.Iteration, r.AgentName, r.Upvotes, r.Downvotes)
}

// showDiscussion 打印一场已保存讨论的完整记录
func showDiscussion(svcCtx *svc.ServiceContext) {
	d, err := svcCtx.DiscussionModel.GetByDiscussionID(context.Background(), *showID)
	if err != nil {
		logger.Fatalf("查询讨论 %s 失败: %s", *showID, err)
	}

	var history []engine.ChatMessage
	if err := json.Unmarshal([]byte(d.ChatHistory), &history); err != nil {
		logger.Fatalf("解析讨论记录失败: %s", err)
	}

	fmt.Printf("话题: %s\n创建时间: %s\n\n", d.Topic, d.CreateTime.Format("2006-01-02 15:04:05"))
	for _, m := range history {
		fmt.Printf("%s: %s\n\n", m.Role, m.Content)
	}
	fmt.Printf("总结:\n%s\n", d.Summary)
}

// listDiscussions 列出指定用户的全部历史讨论
func listDiscussions(svcCtx *svc.ServiceContext) {
	if *user == "" {
		logger.Fatalf("请通过 -user 指定要查询的用户")
	}

	discussions, err := svcCtx.DiscussionModel.GetByUser(context.Background(), *user)
	if err != nil {
		logger.Fatalf("查询用户 %s 的讨论失败: %s", *user, err)
	}
	if len(discussions) == 0 {
		fmt.Printf("用户 %s 没有已保存的讨论\n", *user)
		return
	}

	for _, d := range discussions {
		fmt.Printf("%s  %s  %s\n",
			d.DiscussionID, d.CreateTime.Format("2006-01-02 15:04"), d.Topic)
	}
}
