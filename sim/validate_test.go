package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	in, err := Validate(" 1, 9,3 ,5", " 4 ")
	require.NoError(t, err)
	assert.Equal(t, Input{Pages: []int{1, 9, 3, 5}, FrameCount: 4}, in)
}

func TestValidate_Rejects_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name   string
		pages  string
		frames string
		kind   ValidationKind
	}{
		{"non-numeric token", "1,a,3", "3", KindInvalidFormat},
		{"empty token", "1,,3", "3", KindInvalidFormat},
		{"empty input", "", "3", KindInvalidFormat},
		{"decimal token", "1.5", "3", KindInvalidFormat},
		{"negative reference", "1,-2,3", "3", KindNegativeReference},
		{"eleven references", "0,1,2,3,4,5,6,7,8,9,10", "3", KindLengthOutOfRange},
		{"two frames", "1,2", "2", KindFrameCountOutOfRange},
		{"six frames", "1,2", "6", KindFrameCountOutOfRange},
		{"non-integer frame count", "1,2", "3.5", KindInvalidFormat},
		{"missing frame count", "1,2", "", KindInvalidFormat},
		// format beats sign, sign beats length, length beats frames
		{"format before negative", "-1,x", "3", KindInvalidFormat},
		{"negative before length", "-1,0,1,2,3,4,5,6,7,8,9", "3", KindNegativeReference},
		{"length before frames", "0,1,2,3,4,5,6,7,8,9,10", "9", KindLengthOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.pages, tt.frames)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.kind, verr.Kind)
			assert.NotEmpty(t, verr.Detail)
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	a, errA := Validate("3,2,1", "3")
	b, errB := Validate("3,2,1", "3")
	assert.Equal(t, a, b)
	assert.Equal(t, errA, errB)

	_, errA = Validate("3,2,1", "7")
	_, errB = Validate("3,2,1", "7")
	assert.Equal(t, errA, errB)
}

func TestValidationError_IsMatchesKind(t *testing.T) {
	_, err := Validate("1,2", "6")

	assert.True(t, errors.Is(err, ErrFrameCountOutOfRange))
	assert.False(t, errors.Is(err, ErrLengthOutOfRange))
	assert.Contains(t, err.Error(), "FrameCountOutOfRange")
}

func TestValidateValues(t *testing.T) {
	assert.NoError(t, ValidateValues([]int{0, 1}, 5))
	assert.ErrorIs(t, ValidateValues(nil, 3), ErrLengthOutOfRange)
	assert.ErrorIs(t, ValidateValues([]int{-4}, 3), ErrNegativeReference)
	assert.ErrorIs(t, ValidateValues([]int{1}, 1), ErrFrameCountOutOfRange)
}
