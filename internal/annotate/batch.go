package annotate

// DefaultCapacity is the checks API's per-update annotation cap. Updates
// carrying more than this are rejected by the service, which is the whole
// reason batches exist.
const DefaultCapacity = 50

// SplitIntoBatches partitions annotations into capacity-sized groups,
// preserving order. Every batch except possibly the last is exactly capacity
// long; zero annotations yield zero batches.
func SplitIntoBatches(anns []Annotation, capacity int) [][]Annotation {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if len(anns) == 0 {
		return nil
	}
	batches := make([][]Annotation, 0, (len(anns)+capacity-1)/capacity)
	for start := 0; start < len(anns); start += capacity {
		end := start + capacity
		if end > len(anns) {
			end = len(anns)
		}
		batches = append(batches, anns[start:end])
	}
	return batches
}
