package audio

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	log "log/slog"
)

var percentRe = regexp.MustCompile(`(\d+)\s*%`)

// Ducker lowers the volume of other PulseAudio playback streams while
// the assistant listens or speaks, and restores them afterwards. All
// pactl failures are soft: a desktop without PulseAudio just keeps its
// volume.
type Ducker struct {
	minVolume   int
	originalVol map[int]int // sink input id -> original %
}

func NewDucker(minVolume int) *Ducker {
	if minVolume < 0 {
		minVolume = 0
	}
	if minVolume > 100 {
		minVolume = 100
	}
	return &Ducker{
		minVolume:   minVolume,
		originalVol: make(map[int]int),
	}
}

// Duck lowers every playback stream to minVolume, remembering the
// original levels.
func (d *Ducker) Duck() {
	streams, err := listSinkInputs()
	if err != nil {
		log.Debug("pactl unavailable, skipping duck", "err", err)
		return
	}

	for id, vol := range streams {
		if vol <= d.minVolume {
			continue
		}
		d.originalVol[id] = vol
		setSinkInputVolume(id, d.minVolume)
	}
}

// Restore puts every remembered stream back.
func (d *Ducker) Restore() {
	for id, vol := range d.originalVol {
		setSinkInputVolume(id, vol)
		delete(d.originalVol, id)
	}
}

func listSinkInputs() (map[int]int, error) {
	out, err := exec.Command("pactl", "list", "sink-inputs").Output()
	if err != nil {
		return nil, err
	}

	streams := make(map[int]int)
	id := -1
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)

		if rest, ok := strings.CutPrefix(line, "Sink Input #"); ok {
			if n, err := strconv.Atoi(rest); err == nil {
				id = n
			}
			continue
		}

		if strings.HasPrefix(line, "Volume:") && id >= 0 {
			if m := percentRe.FindStringSubmatch(line); m != nil {
				if vol, err := strconv.Atoi(m[1]); err == nil {
					streams[id] = vol
				}
			}
			id = -1
		}
	}
	return streams, nil
}

func setSinkInputVolume(id, percent int) {
	err := exec.Command("pactl", "set-sink-input-volume",
		strconv.Itoa(id), fmt.Sprintf("%d%%", percent)).Run()
	if err != nil {
		log.Debug("failed to set sink input volume", "id", id, "err", err)
	}
}
