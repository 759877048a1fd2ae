// Package speech turns assistant replies into audio.
package speech

// Speaker voices one reply. Implementations block until playback ends.
type Speaker interface {
	Say(text string) error
}

// Silent is the speaker used when TTS is disabled.
type Silent struct{}

func (Silent) Say(string) error { return nil }
