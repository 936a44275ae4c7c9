package rop

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Parallel()

	out := Map(SuccessOf(4), func(v int) string { return fmt.Sprint(v * v) })
	assert.Equal(t, "16", out.Get())

	failed := Map(FailResultCode[int](CodeMissingValue, "n"), func(v int) string {
		t.Fatalf("map should not be called on a failure")
		return ""
	})
	assert.True(t, failed.Matches(CodeMissingValue))
	assert.Equal(t, "n", failed.Message())
}

func TestBind(t *testing.T) {
	t.Parallel()

	half := func(v int) Result[int] {
		if v%2 != 0 {
			return FailResultMessage[int]("odd")
		}
		return SuccessOf(v / 2)
	}

	assert.Equal(t, 5, Bind(SuccessOf(10), half).Get())
	assert.Equal(t, "odd", Bind(Bind(SuccessOf(10), half), half).Message())
	assert.True(t, Bind(Failure[int](), half).Matches(CodeError))
}

func TestMapAndBindWithoutValue(t *testing.T) {
	t.Parallel()

	name := Map(Success[*user](), func(u *user) string { return u.Name })
	assert.True(t, name.IsSuccess())
	assert.True(t, name.IsEmpty())

	var nobody *user
	bound := Bind(SuccessOf(nobody), func(u *user) Result[string] {
		t.Fatalf("bind should not be called without a value")
		return SuccessOf(u.Name)
	})
	assert.True(t, bound.IsSuccess())
	assert.True(t, bound.IsEmpty())
}

func TestTee(t *testing.T) {
	t.Parallel()

	var seen []int
	record := func(r Result[int]) { seen = append(seen, r.Get()) }

	in := SuccessOf(1)
	assert.Equal(t, in, Tee(in, record))
	Tee(Failure[int](), record)

	assert.Equal(t, []int{1}, seen)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	describe := func(r Result[int]) string {
		return Match(r,
			func(r Result[int]) string { return fmt.Sprintf("value %d", r.Get()) },
			func(r Result[int]) string { return "failed: " + r.Code().String() })
	}

	assert.Equal(t, "value 3", describe(SuccessOf(3)))
	assert.Equal(t, "failed: MissingValue", describe(FailResult[int](CodeMissingValue)))
}
