package datastructure

import (
	"errors"
)

type Item interface {
	int32
}

type PriorityQueueNode[T Item] struct {
	Rank float64
	Item T
}

// MinHeap binary heap priority queue with a position index per item, so
// DecreaseKey works in O(logN) instead of a linear scan.
type MinHeap[T Item] struct {
	heap []PriorityQueueNode[T]
	pos  map[T]int
}

func NewMinHeap[T Item]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
	}
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

// heapifyUp restores the heap property after an insert or a rank decrease,
// swapping with the parent while it has the bigger rank. O(logN) tree height.
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].Rank < h.heap[h.parent(index)].Rank {
		h.heap[index], h.heap[h.parent(index)] = h.heap[h.parent(index)], h.heap[index]

		h.pos[h.heap[index].Item] = index
		h.pos[h.heap[h.parent(index)].Item] = h.parent(index)
		index = h.parent(index)
	}
}

// heapifyDown restores the heap property after an extract, swapping with the
// smaller child and recursing. O(logN) tree height.
func (h *MinHeap[T]) heapifyDown(index int) {
	smallest := index
	left := h.leftChild(index)
	right := h.rightChild(index)

	if left < len(h.heap) && h.heap[left].Rank < h.heap[smallest].Rank {
		smallest = left
	}
	if right < len(h.heap) && h.heap[right].Rank < h.heap[smallest].Rank {
		smallest = right
	}
	if smallest != index {
		h.heap[index], h.heap[smallest] = h.heap[smallest], h.heap[index]
		h.pos[h.heap[index].Item] = index
		h.pos[h.heap[smallest].Item] = smallest

		h.heapifyDown(smallest)
	}
}

func (h *MinHeap[T]) isEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

// GetMin returns the minimum node without removing it.
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, errors.New("heap is empty")
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) Insert(key PriorityQueueNode[T]) {
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	h.pos[key.Item] = index
	h.heapifyUp(index)
}

// ExtractMin removes and returns the minimum node. O(logN).
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, errors.New("heap is empty")
	}
	root := h.heap[0]
	h.heap[0] = h.heap[h.Size()-1]
	h.heap = h.heap[:h.Size()-1]
	h.pos[root.Item] = -1
	if !h.isEmpty() {
		// the element moved up from the tail needs its position recorded even
		// when heapifyDown ends up not swapping it anywhere
		h.pos[h.heap[0].Item] = 0
		h.heapifyDown(0)
	}
	return root, nil
}

// DecreaseKey lowers the rank of an item already in the heap. The new rank
// must not exceed the current one.
func (h *MinHeap[T]) DecreaseKey(item PriorityQueueNode[T]) error {
	if h.pos[item.Item] < 0 || h.pos[item.Item] >= h.Size() || item.Rank > h.heap[h.pos[item.Item]].Rank {
		return errors.New("invalid index or new value")
	}
	h.heap[h.pos[item.Item]] = item
	h.heapifyUp(h.pos[item.Item])
	return nil
}
