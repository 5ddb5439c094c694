package main

import "testing"

func TestTicksPerFrame(t *testing.T) {
	cases := []struct {
		fps  float64
		want int
	}{
		{12, 5},
		{8, 7},
		{60, 1},
		{240, 1},
		{0, 1},
		{-3, 1},
	}
	for _, c := range cases {
		if got := ticksPerFrame(c.fps); got != c.want {
			t.Fatalf("ticksPerFrame(%v) = %d, want %d", c.fps, got, c.want)
		}
	}
}
