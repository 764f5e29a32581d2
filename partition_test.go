package valedictory_test

import (
	"reflect"
	"testing"

	valedictory "github.com/timheap/valedictory"
)

func TestPartitionMap(t *testing.T) {
	m := map[int]string{}
	for i := 0; i < 10; i++ {
		m[i] = string(rune('A' + i))
	}

	odd, even := valedictory.PartitionMap(m, func(k int, _ string) bool { return k%2 == 0 })

	wantOdd := map[int]string{1: "B", 3: "D", 5: "F", 7: "H", 9: "J"}
	wantEven := map[int]string{0: "A", 2: "C", 4: "E", 6: "G", 8: "I"}
	if !reflect.DeepEqual(wantOdd, odd) {
		t.Fatalf("falsy side: want %v, got %v", wantOdd, odd)
	}
	if !reflect.DeepEqual(wantEven, even) {
		t.Fatalf("truthy side: want %v, got %v", wantEven, even)
	}
	if len(m) != 10 {
		t.Fatalf("input map must not be modified")
	}
}
