// Package daemon wires the full assistant stack behind a single Run
// call so each persona binary stays a thin main.
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"github.com/ayushh0406/ai-agent/internal/assistant"
	"github.com/ayushh0406/ai-agent/internal/audio"
	"github.com/ayushh0406/ai-agent/internal/bus"
	"github.com/ayushh0406/ai-agent/internal/config"
	"github.com/ayushh0406/ai-agent/internal/intent"
	"github.com/ayushh0406/ai-agent/internal/ipc"
	"github.com/ayushh0406/ai-agent/internal/listen"
	"github.com/ayushh0406/ai-agent/internal/llm"
	"github.com/ayushh0406/ai-agent/internal/memory"
	"github.com/ayushh0406/ai-agent/internal/notify"
	"github.com/ayushh0406/ai-agent/internal/proxy"
	"github.com/ayushh0406/ai-agent/internal/speech"
	"github.com/ayushh0406/ai-agent/internal/tools"
	"github.com/ayushh0406/ai-agent/pkg/stt"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// Run boots the daemon for the given persona and blocks until the
// session ends. Fatal setup failures exit the process.
func Run(persona assistant.Persona) {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	input := cli.StringP("input", "i", "text", "Input source: voice, text or replay")
	replay := cli.StringSlice("replay", nil, "Audio files replayed as spoken commands")
	proxyAddr := cli.StringP("proxy", "p", "", "SOCKS proxy address, direct when empty")
	whisperModel := cli.StringP("whisper", "w", "third_party/whisper.cpp/models/ggml-base.en.bin", "Whisper model path")
	chimePath := cli.String("chime", "assets/chime.mp3", "Chime played before listening")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("booting up", "persona", persona.Name)

	godotenv.Load(*envFile)
	cfg, err := config.Load()
	if err != nil {
		log.Error("configuration rejected", "err", err)
		os.Exit(1)
	}

	httpClient := http.DefaultClient
	if *proxyAddr != "" {
		httpClient, err = proxy.NewSocksClient(*proxyAddr)
		if err != nil {
			log.Error("failed to dial socks proxy", "proxy", *proxyAddr, "err", err)
			os.Exit(1)
		}
		log.Debug("loaded proxy", "addr", *proxyAddr)
	}

	completer := llm.NewClient(cfg.GroqAPIKey, cfg.Model, httpClient)
	mem := memory.Load(cfg.MemoryPath)
	log.Debug("loaded memory", "tasks", mem.TaskCount(), "reminders", mem.ReminderCount())

	home, _ := os.UserHomeDir()
	router := intent.NewRouter(intent.DefaultRoutes(filepath.Join(home, "Downloads")))

	source, closeSource, err := buildSource(cfg, *input, *whisperModel, *chimePath, *replay)
	if err != nil {
		log.Error("failed to build input source", "input", *input, "err", err)
		os.Exit(1)
	}
	defer closeSource()

	var speaker speech.Speaker = speech.Silent{}
	if cfg.TTSEnabled {
		speaker = speech.NewEspeak(cfg.SpeechVoice())
	}

	var mirror *bus.Bus
	if cfg.BusURL != "" {
		mirror, err = bus.Dial(cfg.BusURL)
		if err != nil {
			log.Warn("bus unreachable, continuing without mirror", "url", cfg.BusURL, "err", err)
			mirror = nil
		} else {
			defer mirror.Close()
		}
	}

	a := assistant.New(assistant.Options{
		Persona:   persona,
		Config:    cfg,
		Completer: completer,
		Source:    source,
		Speaker:   speaker,
		Router:    router,
		Toolbox:   tools.NewToolbox(cfg, mem),
		Memory:    mem,
		Bus:       mirror,
	})

	if err := ipc.StartServer(func(msg ipc.ControlMessage) {
		a.Control(msg.Cmd)
	}); err != nil {
		log.Warn("control socket unavailable", "err", err)
	}

	log.Info("boot up successful")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Error("session failed", "err", err)
		os.Exit(1)
	}
}

func buildSource(cfg *config.Config, input, whisperModel, chimePath string, replay []string) (listen.Source, func(), error) {
	noop := func() {}

	switch input {
	case "text":
		return listen.NewTextSource(os.Stdin, os.Stdout, "You"), noop, nil

	case "replay":
		tr, err := stt.NewTranscriber(whisperModel)
		if err != nil {
			return nil, noop, err
		}
		return listen.NewReplaySource(tr, cfg.SpeechVoice(), replay), func() { tr.Close() }, nil

	case "voice":
		rec := audio.NewRecorder()
		if err := rec.Init(); err != nil {
			return nil, noop, err
		}
		tr, err := stt.NewTranscriber(whisperModel)
		if err != nil {
			rec.Close()
			return nil, noop, err
		}
		src := listen.NewVoiceSource(rec, tr, cfg.SpeechVoice(), cfg.ListenTimeout).
			WithChime(notify.NewChime(chimePath))
		cleanup := func() {
			tr.Close()
			rec.Close()
		}
		return src, cleanup, nil
	}

	return nil, noop, fmt.Errorf("unknown input source %q", input)
}
