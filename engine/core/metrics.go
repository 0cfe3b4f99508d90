package core

const frameAvgCount = 30

// Metrics keeps a rolling frame-time average and a frames-per-second
// counter. It is owned and driven by the engine run loop, once per frame.
type Metrics struct {
	frameAvgCounter    uint8
	msTimes            [frameAvgCount]float64
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records the elapsed time of the frame that just finished, in seconds.
func (m *Metrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	m.msTimes[m.frameAvgCounter] = frameMS
	if m.frameAvgCounter == frameAvgCount-1 {
		m.msAvg = 0
		for i := 0; i < frameAvgCount; i++ {
			m.msAvg += m.msTimes[i]
		}
		m.msAvg /= frameAvgCount
	}
	m.frameAvgCounter++
	m.frameAvgCounter %= frameAvgCount

	// Calculate frames per second.
	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}

	// Count all frames.
	m.frames++
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

func (m *Metrics) FrameTime() float64 {
	return m.msAvg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.msAvg
}
