package fifoq

import (
	"fmt"
)

// Example showing basic FIFO order.
func Example_basic() {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

// Example for EnqueueMany and ToSlice.
func Example_enqueueMany() {
	q := New[int]()
	q.EnqueueMany(1, 2, 3)
	fmt.Println(q.ToSlice())
	fmt.Println(q.Len())
	// Output:
	// [1 2 3]
	// 3
}

// Example for Peek.
func Example_peek() {
	q := New[string]()
	q.Enqueue("x")
	q.Enqueue("y")
	v, _ := q.Peek()
	fmt.Println(v)
	fmt.Println(q.Len())
	// Output:
	// x
	// 2
}

// Example for Clear.
func Example_clear() {
	q := New[int]()
	q.EnqueueMany(1, 2)
	q.Clear()
	fmt.Println(q.IsEmpty())
	_, ok := q.Dequeue()
	fmt.Println(ok)
	// Output:
	// true
	// false
}
