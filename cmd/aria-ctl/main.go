package main

import (
	"fmt"
	"os"

	"github.com/ayushh0406/ai-agent/internal/ipc"
)

func main() {
	cmd := "dashboard"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := ipc.SendCommand(cmd); err != nil {
		fmt.Println("daemon not running:", err)
		os.Exit(1)
	}
}
