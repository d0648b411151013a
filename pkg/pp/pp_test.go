package pp_test

import (
	"bytes"
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/collkit/pkg/pp"
)

func TestFormat(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("primitives", func(t *testcase.T) {
		assert.Equal(t, "nil", pp.Format(nil))
		assert.Equal(t, "42", pp.Format(42))
		assert.Equal(t, "true", pp.Format(true))
		assert.Equal(t, "3.14", pp.Format(3.14))
		assert.Equal(t, `"hello"`, pp.Format("hello"))
	})

	s.Test("strings are quoted and escaped", func(t *testcase.T) {
		assert.Equal(t, `"a\nb"`, pp.Format("a\nb"))
	})

	s.Test("slice", func(t *testcase.T) {
		assert.Equal(t, "[]int{1, 2, 3}", pp.Format([]int{1, 2, 3}))
		assert.Equal(t, "[]int{}", pp.Format([]int{}))
		assert.Equal(t, "[]int(nil)", pp.Format([]int(nil)))
	})

	s.Test("array", func(t *testcase.T) {
		assert.Equal(t, "[2]string{\"a\", \"b\"}", pp.Format([2]string{"a", "b"}))
	})

	s.Test("map keys are rendered in a deterministic order", func(t *testcase.T) {
		m := map[string]int{"b": 2, "a": 1, "c": 3}
		t.Random.Repeat(3, 7, func() {
			assert.Equal(t, `map[string]int{"a": 1, "b": 2, "c": 3}`, pp.Format(m))
		})
	})

	s.Test("map with mixed-kind keys stays deterministic", func(t *testcase.T) {
		m := map[any]string{1: "one", "x": "ex", true: "yes"}
		exp := pp.Format(m)
		t.Random.Repeat(3, 7, func() {
			assert.Equal(t, exp, pp.Format(m))
		})
	})

	s.Test("struct renders every field, including unexported ones", func(t *testcase.T) {
		type record struct {
			Name string
			age  int
		}
		got := pp.Format(record{Name: "Kaya", age: 7})
		assert.Contain(t, got, `Name: "Kaya"`)
		assert.Contain(t, got, "age: 7")
	})

	s.Test("an unexported map field renders deterministically", func(t *testcase.T) {
		type holder struct {
			name string
			tags map[string]int
		}
		got := pp.Format(holder{name: "x", tags: map[string]int{"b": 2, "a": 1}})
		assert.Contain(t, got, `name: "x"`)
		assert.Contain(t, got, `tags: map[string]int{"a": 1, "b": 2}`)
	})

	s.Test("pointer renders the pointed value, never the address", func(t *testcase.T) {
		n := 42
		got := pp.Format(&n)
		assert.Equal(t, "&42", got)
		assert.NotContain(t, got, "0x")
	})

	s.Test("nil pointer", func(t *testcase.T) {
		var n *int
		assert.Equal(t, "nil", pp.Format(n))
	})

	s.Test("nested structures", func(t *testcase.T) {
		type inner struct{ N int }
		type outer struct {
			Inner inner
			VS    []string
		}
		got := pp.Format(outer{Inner: inner{N: 1}, VS: []string{"a"}})
		assert.Contain(t, got, "Inner: ")
		assert.Contain(t, got, "N: 1")
		assert.Contain(t, got, `VS: []string{"a"}`)
	})

	s.Test("cyclic pointer chain terminates with a marker", func(t *testcase.T) {
		type node struct {
			Value int
			Next  *node
		}
		a := &node{Value: 1}
		b := &node{Value: 2, Next: a}
		a.Next = b

		got := pp.Format(a)
		assert.Contain(t, got, "Value: 1")
		assert.Contain(t, got, "Value: 2")
		assert.Contain(t, got, "<cyclic ")
		assert.NotContain(t, got, "0x")
	})

	s.Test("self-referencing slice terminates", func(t *testcase.T) {
		vs := make([]any, 1)
		vs[0] = vs

		got := pp.Format(vs)
		assert.Contain(t, got, "<cyclic ")
	})

	s.Test("self-referencing map terminates", func(t *testcase.T) {
		m := map[string]any{}
		m["self"] = m

		got := pp.Format(m)
		assert.Contain(t, got, "<cyclic ")
	})

	s.Test("shared but acyclic references render twice", func(t *testcase.T) {
		n := 42
		got := pp.Format([]*int{&n, &n})
		assert.Equal(t, "[]*int{&42, &42}", got)
	})

	s.Test("func values render by type, not by address", func(t *testcase.T) {
		got := pp.Format(func(int) string { return "" })
		assert.Contain(t, got, "func(int) string")
		assert.NotContain(t, got, "0x")
	})
}

func TestFormatAll(t *testing.T) {
	assert.Equal(t, `1 "a" true`, pp.FormatAll[any](1, "a", true))
	assert.Equal(t, "", pp.FormatAll[any]())
}

func TestPP(t *testing.T) {
	s := testcase.NewSpec(t)

	buf := testcase.Let(s, func(t *testcase.T) *bytes.Buffer {
		return &bytes.Buffer{}
	})
	s.Before(func(t *testcase.T) {
		original := pp.DefaultWriter
		pp.DefaultWriter = buf.Get(t)
		t.Defer(func() { pp.DefaultWriter = original })
	})

	s.Test("writes the formatted values to the default writer", func(t *testcase.T) {
		pp.PP(42, 7)
		assert.Equal(t, "42 7\n", buf.Get(t).String())
	})

	s.Test("returns its arguments unchanged for inline use", func(t *testcase.T) {
		vs := pp.PP("a", "b")
		assert.Equal(t, []string{"a", "b"}, vs)
	})

	s.Test("output ends with a newline", func(t *testcase.T) {
		pp.PP(t.Random.Int())
		assert.True(t, strings.HasSuffix(buf.Get(t).String(), "\n"))
	})
}
