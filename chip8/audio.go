package chip8

// AudioSampleRate and defaultToneHz match the host audio contract:
// 48 kHz mono, a 250 Hz square wave, amplitude 1200.
const (
	AudioSampleRate  = 48000
	defaultToneHz    = 250
	defaultAmplitude = 1200
	frameRateHz      = 60
)

// SamplesPerFrame returns how many int16 samples make up one audio
// frame at the given sample rate and frame rate (48000/60 = 800
// samples, i.e. 1600 bytes, by default).
func SamplesPerFrame(sampleRate int) int {
	return sampleRate / frameRateHz
}

// SquareWaveFrame renders one frame of a square wave at freqHz, or
// silence when on is false. The host calls this once per Tick using
// the AudioOn field of TickResult, and queues the returned samples
// to its audio device; the VM itself performs no I/O.
func SquareWaveFrame(sampleRate, freqHz int, amplitude int16, on bool) []int16 {
	n := SamplesPerFrame(sampleRate)
	samples := make([]int16, n)

	if !on {
		return samples
	}

	samplesPerCycle := sampleRate / freqHz
	if samplesPerCycle <= 0 {
		samplesPerCycle = 1
	}

	for i := range samples {
		if (i%samplesPerCycle)*2 < samplesPerCycle {
			samples[i] = amplitude
		} else {
			samples[i] = -amplitude
		}
	}

	return samples
}

// DefaultAudioFrame renders one frame of the canonical 48 kHz/250 Hz,
// amplitude-1200 tone (or silence), as specified for the reference
// host's audio output.
func DefaultAudioFrame(on bool) []int16 {
	return SquareWaveFrame(AudioSampleRate, defaultToneHz, defaultAmplitude, on)
}
