package errors

import (
	"fmt"
	"runtime"
	"strings"
)

const maxStackDepth = 32

type stack []uintptr

// callers 记录调用 callers 的函数及其上层调用栈
func callers() *stack {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	st := stack(pcs[:n])
	return &st
}

// fullStack 返回 "函数名 文件:行号" 格式的调用栈，顺序由内向外
func (s *stack) fullStack() []string {
	frames := runtime.CallersFrames(*s)
	lines := make([]string, 0, len(*s))
	for {
		frame, more := frames.Next()
		lines = append(lines, fmt.Sprintf("%s %s:%d", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return lines
}

const packagePrefix = "moff.io/ual-tokenpocket/pkg/errors."

// reportSite 返回用于限流的调用点，即栈中第一个不属于本包的帧
func reportSite(stacks []string) string {
	for _, s := range stacks {
		if !strings.HasPrefix(s, packagePrefix) {
			return s
		}
	}
	if len(stacks) == 0 {
		return ""
	}
	return stacks[len(stacks)-1]
}
