package main

import (
	"github.com/ayushh0406/ai-agent/internal/assistant"
	"github.com/ayushh0406/ai-agent/internal/daemon"
)

func main() {
	daemon.Run(assistant.Aria())
}
