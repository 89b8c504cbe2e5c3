package optimizer

import (
	"fmt"
	"strings"
)

type Strategy string

const (
	StrategyGreedy Strategy = "greedy"
	StrategyLP     Strategy = "lp"
)

func ParseStrategy(s string) (Strategy, error) {
	switch v := Strategy(strings.ToLower(strings.TrimSpace(s))); v {
	case "", StrategyGreedy:
		return StrategyGreedy, nil
	case StrategyLP:
		return StrategyLP, nil
	}
	return "", fmt.Errorf("unknown optimizer strategy %q", s)
}

// Optimizer turns scored crops and constraints into an area plan.
type Optimizer interface {
	Optimize(crops []CropInput, cons Constraints) Result
}

type Func func(crops []CropInput, cons Constraints) Result

func (f Func) Optimize(crops []CropInput, cons Constraints) Result { return f(crops, cons) }

func New(s Strategy) Optimizer {
	if s == StrategyLP {
		return Func(LinearProgram)
	}
	return Func(Greedy)
}

// Optimize is the default allocator.
func Optimize(crops []CropInput, cons Constraints) Result { return Greedy(crops, cons) }
