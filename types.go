package eytzinger

import "errors"

var (
	ErrNotEytzinger = errors.New("eytzinger: sequence is not in eytzinger order")
)
