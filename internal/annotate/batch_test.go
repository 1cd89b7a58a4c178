package annotate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAnnotations(n int) []Annotation {
	anns := make([]Annotation, n)
	for i := range anns {
		anns[i] = Annotation{
			Path:      fmt.Sprintf("file%d.go", i),
			StartLine: i + 1,
			EndLine:   i + 1,
			Level:     LevelWarning,
			Message:   fmt.Sprintf("finding %d", i),
		}
	}
	return anns
}

func TestSplitIntoBatches(t *testing.T) {
	anns := makeAnnotations(120)
	batches := SplitIntoBatches(anns, 50)

	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 50)
	assert.Len(t, batches[1], 50)
	assert.Len(t, batches[2], 20)

	// Concatenation equals the original sequence in order.
	var flat []Annotation
	for _, b := range batches {
		flat = append(flat, b...)
	}
	assert.Equal(t, anns, flat)
}

func TestSplitIntoBatchesExactMultiple(t *testing.T) {
	batches := SplitIntoBatches(makeAnnotations(100), 50)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 50)
	assert.Len(t, batches[1], 50)
}

func TestSplitIntoBatchesSmallerThanCapacity(t *testing.T) {
	batches := SplitIntoBatches(makeAnnotations(3), 50)
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 3)
}

func TestSplitIntoBatchesEmpty(t *testing.T) {
	assert.Nil(t, SplitIntoBatches(nil, 50))
	assert.Nil(t, SplitIntoBatches([]Annotation{}, 50))
}

func TestSplitIntoBatchesInvalidCapacity(t *testing.T) {
	// Non-positive capacity falls back to the API cap.
	batches := SplitIntoBatches(makeAnnotations(60), 0)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], DefaultCapacity)
	assert.Len(t, batches[1], 10)
}
