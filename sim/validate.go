package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Input limits accepted by Validate.
const (
	MinReferences = 1
	MaxReferences = 10
	MinFrames     = 3
	MaxFrames     = 5
)

// ValidationKind names the rule an input broke.
type ValidationKind string

const (
	KindInvalidFormat        ValidationKind = "InvalidFormat"
	KindNegativeReference    ValidationKind = "NegativeReference"
	KindLengthOutOfRange     ValidationKind = "LengthOutOfRange"
	KindFrameCountOutOfRange ValidationKind = "FrameCountOutOfRange"
)

// ValidationError reports the first validation rule that failed.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is matches any ValidationError of the same kind, so callers can write
// errors.Is(err, sim.ErrLengthOutOfRange).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is matching.
var (
	ErrInvalidFormat        = &ValidationError{Kind: KindInvalidFormat}
	ErrNegativeReference    = &ValidationError{Kind: KindNegativeReference}
	ErrLengthOutOfRange     = &ValidationError{Kind: KindLengthOutOfRange}
	ErrFrameCountOutOfRange = &ValidationError{Kind: KindFrameCountOutOfRange}
)

// Input is a validated reference sequence and frame count, ready for Simulate.
type Input struct {
	Pages      []int
	FrameCount int
}

// Validate parses a comma-separated reference string and a frame count string.
// Rules are checked in a fixed order and the first failure is returned:
// token format, non-negative references, sequence length, then frame count.
// A frame count that is not an integer literal is an InvalidFormat error.
func Validate(rawPages, rawFrameCount string) (Input, error) {
	tokens := strings.Split(rawPages, ",")
	pages := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Input{}, &ValidationError{
				Kind:   KindInvalidFormat,
				Detail: fmt.Sprintf("reference %d (%q) is not an integer", i+1, tok),
			}
		}
		pages = append(pages, n)
	}

	if err := checkReferences(pages); err != nil {
		return Input{}, err
	}

	rawFrameCount = strings.TrimSpace(rawFrameCount)
	frameCount, err := strconv.Atoi(rawFrameCount)
	if err != nil {
		return Input{}, &ValidationError{
			Kind:   KindInvalidFormat,
			Detail: fmt.Sprintf("frame count %q is not an integer", rawFrameCount),
		}
	}
	if err := checkFrameCount(frameCount); err != nil {
		return Input{}, err
	}

	return Input{Pages: pages, FrameCount: frameCount}, nil
}

// ValidateValues applies the range rules to already-parsed values.
func ValidateValues(pages []int, frameCount int) error {
	if err := checkReferences(pages); err != nil {
		return err
	}
	return checkFrameCount(frameCount)
}

func checkReferences(pages []int) error {
	for i, p := range pages {
		if p < 0 {
			return &ValidationError{
				Kind:   KindNegativeReference,
				Detail: fmt.Sprintf("reference %d is %d, must be >= 0", i+1, p),
			}
		}
	}
	if len(pages) < MinReferences || len(pages) > MaxReferences {
		return &ValidationError{
			Kind:   KindLengthOutOfRange,
			Detail: fmt.Sprintf("got %d references, want %d-%d", len(pages), MinReferences, MaxReferences),
		}
	}
	return nil
}

func checkFrameCount(frameCount int) error {
	if frameCount < MinFrames || frameCount > MaxFrames {
		return &ValidationError{
			Kind:   KindFrameCountOutOfRange,
			Detail: fmt.Sprintf("got %d frames, want %d-%d", frameCount, MinFrames, MaxFrames),
		}
	}
	return nil
}
