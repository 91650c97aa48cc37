package sequences

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dispatchrun/yielder"
	"github.com/dispatchrun/yielder/enumerator"
)

func TestFibonacci(t *testing.T) {
	values, err := enumerator.Take(Fibonacci, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestFibonacciOverflow(t *testing.T) {
	values, err := enumerator.Collect(Fibonacci)
	if err != ErrOverflow {
		t.Fatalf("wrong error: want=%v got=%v", ErrOverflow, err)
	}
	if len(values) != 93 {
		t.Fatalf("wrong number of values: want=93 got=%d", len(values))
	}
	if last := values[len(values)-1]; last != 7540113804746346429 {
		t.Errorf("wrong last value: want=7540113804746346429 got=%v", last)
	}
	for i, v := range values {
		if v.(int) < 0 {
			t.Fatalf("negative value at index %d: %v", i, v)
		}
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		start, stop, step int
		want              []any
	}{
		{0, 5, 1, []any{0, 1, 2, 3, 4}},
		{0, 5, 2, []any{0, 2, 4}},
		{5, 0, -2, []any{5, 3, 1}},
		{5, 0, 1, nil},
		{math.MaxInt - 1, math.MaxInt, 2, []any{math.MaxInt - 1}},
		{math.MaxInt - 3, math.MaxInt, 1, []any{math.MaxInt - 3, math.MaxInt - 2, math.MaxInt - 1}},
		{math.MinInt + 1, math.MinInt, -2, []any{math.MinInt + 1}},
		{math.MinInt + 2, math.MinInt, -1, []any{math.MinInt + 2, math.MinInt + 1}},
	}

	for _, test := range tests {
		p, err := Range(test.start, test.stop, test.step)
		if err != nil {
			t.Fatal(err)
		}
		values, err := enumerator.Collect(p)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(test.want, values); diff != "" {
			t.Errorf("range(%d, %d, %d) mismatch (-want +got):\n%s", test.start, test.stop, test.step, diff)
		}
	}

	if _, err := Range(0, 1, 0); err == nil {
		t.Error("zero step accepted")
	}
}

func TestLines(t *testing.T) {
	values, err := enumerator.Collect(Lines(strings.NewReader("a\nb\r\n\nc")))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a", "b", "", "c"}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestLinesReadError(t *testing.T) {
	fail := errors.New("fail")
	_, err := enumerator.Collect(Lines(failingReader{fail}))
	if err != fail {
		t.Errorf("wrong error: want=%v got=%v", fail, err)
	}
}

func TestPairs(t *testing.T) {
	var calls [][]any
	_, err := yielder.New(Pairs(map[string]int{"b": 2, "a": 1}), yielder.ConsumerFunc(func(args ...any) (any, error) {
		calls = append(calls, args)
		return nil, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]any{{"a", 1}, {"b", 2}}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}
