package tts

import (
	"strconv"
	"strings"
)

// Defaults applied when a request or connection omits a field.
const (
	DefaultVoice      = "Nec_24000"
	DefaultLanguage   = "ru-RU"
	DefaultSampleRate = 24000
)

// Sample rates the provider supports for raw PCM output.
var validRates = map[int]bool{
	8000:  true,
	16000: true,
	24000: true,
	48000: true,
}

// VoiceSampleRate derives the PCM sample rate from the trailing numeric
// suffix of a voice name: "Nec_24000" yields 24000, "Kin_8000" yields
// 8000. Names without a valid suffix fall back to DefaultSampleRate.
func VoiceSampleRate(voice string) int {
	i := strings.LastIndexByte(voice, '_')
	if i < 0 {
		return DefaultSampleRate
	}
	rate, err := strconv.Atoi(voice[i+1:])
	if err != nil || !validRates[rate] {
		return DefaultSampleRate
	}
	return rate
}
