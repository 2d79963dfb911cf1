package rng

import (
	"strconv"
	"strings"
	"testing"
)

func TestJavaRandomNextI32(t *testing.T) {
	r := NewJavaRandom(2665621045298406349)
	want := []int32{
		1435554138, -685876420, 980167561, 1620812725, -1708755396,
		-220472312, 303297683, 631505519, 1207798239, -898299774,
	}
	for i, w := range want {
		got := r.core.next(32)
		if got != w {
			t.Fatalf("next_i32()[%d] = %d, want %d", i, got, w)
		}
	}
	for i := 0; i < 1000000; i++ {
		r.core.next(32)
	}
	want2 := []int32{
		-826284903, -13980690, -1295521124, -161793911, -2051575420,
		62780344, -458419070, -1651388872, -1273357138, -1018115670,
	}
	for i, w := range want2 {
		got := r.core.next(32)
		if got != w {
			t.Fatalf("next_i32() (post 1e6)[%d] = %d, want %d", i, got, w)
		}
	}

	boundedWant := []struct {
		bound int32
		want  int32
	}{
		{42 + (1 << 0), 7},
		{42 + (1 << 3), 41},
		{42 + (1 << 6), 64},
		{42 + (1 << 9), 169},
		{42 + (1 << 12), 3471},
		{42 + (1 << 15), 7577},
		{42 + (1 << 18), 35786},
		{42 + (1 << 21), 1224367},
		{42 + (1 << 24), 7614339},
		{42 + (1 << 27), 54347671},
	}
	for i, c := range boundedWant {
		got := r.core.nextBounded(c.bound)
		if got != c.want {
			t.Fatalf("next_i32_bounded(%d)[%d] = %d, want %d", c.bound, i, got, c.want)
		}
	}
	for i := 0; i < 1000000; i++ {
		r.core.next(32)
	}
	boundedWant2 := []struct {
		bound int32
		want  int32
	}{
		{42 + (1 << 0), 27},
		{42 + (1 << 3), 22},
		{42 + (1 << 6), 70},
		{42 + (1 << 9), 3},
		{42 + (1 << 12), 128},
		{42 + (1 << 15), 17674},
		{42 + (1 << 18), 160210},
		{42 + (1 << 21), 1846018},
		{42 + (1 << 24), 13777708},
		{42 + (1 << 27), 108691387},
	}
	for i, c := range boundedWant2 {
		got := r.core.nextBounded(c.bound)
		if got != c.want {
			t.Fatalf("next_i32_bounded(%d) (post 1e6)[%d] = %d, want %d", c.bound, i, got, c.want)
		}
	}
}

func TestJavaRandomShuffle(t *testing.T) {
	r := NewJavaRandom(2665621045298406349)
	arr := make([]int, 15)
	for i := range arr {
		arr[i] = i
	}

	shuffleOnce := func() {
		ShuffleInts(r, arr)
	}

	shuffleOnce()
	if got := joinInts(arr); got != "13 0 8 7 3 11 5 1 14 2 12 6 4 10 9" {
		t.Fatalf("shuffle #1 = %q", got)
	}
	shuffleOnce()
	if got := joinInts(arr); got != "10 13 14 1 7 6 11 0 9 8 4 5 3 12 2" {
		t.Fatalf("shuffle #2 = %q", got)
	}
	shuffleOnce()
	if got := joinInts(arr); got != "12 10 9 0 1 5 6 13 2 14 3 11 7 4 8" {
		t.Fatalf("shuffle #3 = %q", got)
	}
	for i := 0; i < 21; i++ {
		shuffleOnce()
	}
	if got := joinInts(arr); got != "0 1 2 3 4 5 6 7 8 9 10 11 12 13 14" {
		t.Fatalf("shuffle after 24 total = %q", got)
	}
}

func joinInts(s []int) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
