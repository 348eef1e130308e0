package errors

import (
	"fmt"
	"time"

	"github.com/go-lark/lark"
	"moff.io/ual-tokenpocket/pkg/log"
)

const larkReportTitle = "ual-tokenpocket error"

type larkReporter struct {
	bot   *lark.Bot
	delay *rateLimiter
}

// NewLarkReporter 初始化飞书机器人报告器，同一调用点在 silent 时间内只上报一次
func NewLarkReporter(webhook string, silent time.Duration) {
	if webhook == "" {
		log.Warn("empty lark webhook found, skipping lark reporter initialization.")
		return
	}
	RegisterReporter(&larkReporter{
		bot:   lark.NewNotificationBot(webhook),
		delay: newRateLimiter(silent),
	})
	log.Info("Lark error reporter initialized.")
}

func (r *larkReporter) Report(err error) {
	if err == nil {
		return
	}
	stacks := callers().fullStack()
	limited, stats := r.delay.StackBasedRateLimited(reportSite(stacks))
	if limited {
		return
	}
	pb := lark.NewPostBuilder()
	pb.Title(larkReportTitle)
	for _, line := range larkReportLines(err, stats, stacks) {
		pb.TextTag(line, 1, true)
	}
	if _, err := r.bot.PostNotificationV2(lark.OutcomingMessage{
		MsgType: "post",
		Content: lark.MessageContent{
			Post: pb.Render(),
		},
	}); err != nil {
		log.Error(WithStack(err))
	}
}

// larkReportLines 生成飞书消息正文，认证器错误额外带上来源钱包和错误类型
func larkReportLines(err error, stats *errorStats, stacks []string) []string {
	lines := []string{
		fmt.Sprintf("Last Report: %v", formatReportTime(stats.lastReportTime)),
		fmt.Sprintf("\nError Count Since Last Report: %v", stats.occurCountSinceLastReport),
	}
	if source, kind, ok := classify(err); ok {
		lines = append(lines,
			fmt.Sprintf("\nAuthenticator: %s", source),
			fmt.Sprintf("\nType: %s", kind))
	}
	lines = append(lines, fmt.Sprintf("\nMessage: %v", err.Error()), "\nStacks:")
	for _, s := range stacks {
		lines = append(lines, fmt.Sprintf("\n    %s", s))
	}
	return lines
}

func formatReportTime(time *time.Time) string {
	if time == nil {
		return "none"
	}
	return time.Format("2006.01.02 15:04")
}
