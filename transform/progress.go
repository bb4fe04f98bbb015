package transform

// DefaultProgressInterval is the index cadence at which progress is reported.
const DefaultProgressInterval = 1000

// Progress stage messages.
const (
	StageInitializing = "Initializing..."
	StageXOR          = "XOR encryption..."
	StageShuffle      = "Shuffling pixels..."
	StageUnshuffle    = "Unshuffling pixels..."
	StageRotate       = "Rotating RGB channels..."
	StageMathEncrypt  = "Mathematical encryption..."
	StageMathDecrypt  = "Mathematical decryption..."
	StageBitManip     = "Bit manipulation..."
	StageComplete     = "Processing complete!"
)

// ProgressFunc receives a stage message and a completion percentage in [0, 100].
// It is a side channel and must not touch the buffer being transformed.
type ProgressFunc func(stage string, percent float64)

// progress invokes fn whenever the loop index is a multiple of interval.
// A nil fn or non-positive interval disables reporting.
type progress struct {
	fn       ProgressFunc
	interval int
}

func (p progress) tick(stage string, index, total int) {
	if p.fn == nil || p.interval <= 0 || total <= 0 || index%p.interval != 0 {
		return
	}
	p.fn(stage, float64(index)/float64(total)*100)
}

func (p progress) emit(stage string, percent float64) {
	if p.fn != nil {
		p.fn(stage, percent)
	}
}
