package effects

// Effector processes mono audio one sample at a time.
type Effector interface {
	Process(x float32) float32
	Reset()
}

// Chain applies a sequence of effects in order.
type Chain struct {
	effects []Effector
}

func NewChain(effects ...Effector) *Chain {
	return &Chain{effects: effects}
}

func (c *Chain) Process(x float32) float32 {
	for _, e := range c.effects {
		x = e.Process(x)
	}
	return x
}

func (c *Chain) Reset() {
	for _, e := range c.effects {
		e.Reset()
	}
}

func (c *Chain) Add(e Effector) {
	c.effects = append(c.effects, e)
}

// Len reports how many effects the chain holds.
func (c *Chain) Len() int {
	return len(c.effects)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
