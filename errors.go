package feature

import "golang.org/x/xerrors"

/*
Transformer errors fall into three kinds, wrapped so callers can test
them with errors.Is:

	ErrUsage           the call itself is wrong (transform before fit,
	                   column set mismatch, bad parameters)
	ErrDegenerateInput the data makes the requested arithmetic undefined
	                   (zero standard deviation, zero row maximum,
	                   empty or non-numeric training data)
	ErrShape           a component produced a row count differing from
	                   its input
*/
var (
	ErrUsage           = xerrors.New("usage error")
	ErrDegenerateInput = xerrors.New("degenerate input")
	ErrShape           = xerrors.New("shape mismatch")
)

func usagef(format string, a ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(a, ErrUsage)...)
}

func degeneratef(format string, a ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(a, ErrDegenerateInput)...)
}

func shapef(format string, a ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(a, ErrShape)...)
}
