package transfer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDocs(n int) []Document {
	docs := make([]Document, n)
	for i := range docs {
		docs[i] = Document{"seq": i}
	}
	return docs
}

func TestBatchReader_BatchSizes(t *testing.T) {
	cases := []struct {
		docs      int
		batchSize int
		want      []int
	}{
		{docs: 0, batchSize: 2, want: nil},
		{docs: 1, batchSize: 2, want: []int{1}},
		{docs: 3, batchSize: 2, want: []int{2, 1}},
		{docs: 4, batchSize: 2, want: []int{2, 2}},
		{docs: 5, batchSize: 1000, want: []int{5}},
		{docs: 3, batchSize: 1, want: []int{1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_docs_batch_%d", tc.docs, tc.batchSize), func(t *testing.T) {
			reader := newBatchReader(&memCursor{docs: makeDocs(tc.docs), failAfter: -1}, tc.batchSize)

			var sizes []int
			total := 0
			for reader.Next(context.Background()) {
				sizes = append(sizes, len(reader.Batch()))
				total += len(reader.Batch())
			}
			require.NoError(t, reader.Err())
			assert.Equal(t, tc.want, sizes)
			assert.Equal(t, tc.docs, total, "every document is seen exactly once")
		})
	}
}

func TestBatchReader_PreservesDocumentOrder(t *testing.T) {
	reader := newBatchReader(&memCursor{docs: makeDocs(5), failAfter: -1}, 2)

	var seen []int
	for reader.Next(context.Background()) {
		for _, doc := range reader.Batch() {
			seen = append(seen, doc["seq"].(int))
		}
	}
	require.NoError(t, reader.Err())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
}

func TestBatchReader_CursorFailureMidStream(t *testing.T) {
	cursor := &memCursor{docs: makeDocs(10), failAfter: 3}
	reader := newBatchReader(cursor, 2)

	require.True(t, reader.Next(context.Background()))
	assert.Len(t, reader.Batch(), 2)

	assert.False(t, reader.Next(context.Background()))
	assert.ErrorIs(t, reader.Err(), errCursorRead)

	assert.False(t, reader.Next(context.Background()), "reader stays exhausted after a failure")
}
