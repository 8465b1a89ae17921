// Command assistant-ctl controls a running assistant over its unix socket.
//
//	assistant-ctl trigger        start listening (push-to-talk)
//	assistant-ctl status         print the current status
//	assistant-ctl say <text...>  run a turn and print the answer
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"voice-assistant/internal/ipc"
)

func main() {
	socket := pflag.StringP("socket", "s", "/tmp/voice-assistant.sock", "assistant control socket")
	timeout := pflag.DurationP("timeout", "t", 2*time.Minute, "how long to wait for the reply")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: assistant-ctl [flags] trigger|status|say <text>")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	msg, err := parseArgs(pflag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	reply, err := ipc.Send(ctx, *socket, msg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if reply.Message != "" {
		fmt.Println(reply.Message)
	}
	if !reply.OK {
		os.Exit(1)
	}
}

func parseArgs(args []string) (ipc.ControlMessage, error) {
	if len(args) == 0 {
		return ipc.ControlMessage{}, fmt.Errorf("missing command")
	}
	switch cmd := args[0]; cmd {
	case ipc.CmdTrigger, ipc.CmdStatus:
		return ipc.ControlMessage{Cmd: cmd}, nil
	case ipc.CmdSay:
		text := strings.TrimSpace(strings.Join(args[1:], " "))
		if text == "" {
			return ipc.ControlMessage{}, fmt.Errorf("say needs some text")
		}
		return ipc.ControlMessage{Cmd: cmd, Text: text}, nil
	default:
		return ipc.ControlMessage{}, fmt.Errorf("unknown command %q", cmd)
	}
}
