package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type style struct {
	Color string
}

func TestValue_Kind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     Value
		kind      Kind
		primitive bool
	}{
		{name: "null", value: Null(), kind: KindNull, primitive: true},
		{name: "bool", value: Bool(true), kind: KindBool, primitive: true},
		{name: "int", value: Int(42), kind: KindInt, primitive: true},
		{name: "float", value: Float(3.14), kind: KindFloat, primitive: true},
		{name: "string", value: String("hello"), kind: KindString, primitive: true},
		{name: "reference", value: Ref(&style{}), kind: KindReference, primitive: false},
		{name: "zero value is null", value: Value{}, kind: KindNull, primitive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.primitive, tt.value.IsPrimitive())
		})
	}
}

func TestValue_Equals_Primitives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        Value
		b        Value
		expected bool
	}{
		{
			name:     "null equals null",
			a:        Null(),
			b:        Null(),
			expected: true,
		},
		{
			name:     "equal bools",
			a:        Bool(true),
			b:        Bool(true),
			expected: true,
		},
		{
			name:     "different bools",
			a:        Bool(true),
			b:        Bool(false),
			expected: false,
		},
		{
			name:     "separately constructed equal ints",
			a:        Int(42),
			b:        Int(42),
			expected: true,
		},
		{
			name:     "different ints",
			a:        Int(42),
			b:        Int(24),
			expected: false,
		},
		{
			name:     "equal floats",
			a:        Float(2.5),
			b:        Float(2.5),
			expected: true,
		},
		{
			name:     "different floats",
			a:        Float(2.5),
			b:        Float(2.6),
			expected: false,
		},
		{
			name:     "separately constructed equal strings",
			a:        String("hello"),
			b:        String("hello"),
			expected: true,
		},
		{
			name:     "different strings",
			a:        String("hello"),
			b:        String("world"),
			expected: false,
		},
		{
			name:     "empty strings",
			a:        String(""),
			b:        String(""),
			expected: true,
		},
		{
			name:     "int never equals float",
			a:        Int(1),
			b:        Float(1),
			expected: false,
		},
		{
			name:     "string never equals int",
			a:        String("1"),
			b:        Int(1),
			expected: false,
		},
		{
			name:     "null never equals zero int",
			a:        Null(),
			b:        Int(0),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equals(tt.a), "Equals must be symmetric")
		})
	}
}

func TestValue_Equals_References(t *testing.T) {
	t.Parallel()

	t.Run("same pointer instance", func(t *testing.T) {
		t.Parallel()

		shared := &style{Color: "red"}

		assert.True(t, Ref(shared).Equals(Ref(shared)))
	})

	t.Run("equal contents distinct instances", func(t *testing.T) {
		t.Parallel()

		a := Ref(&style{Color: "red"})
		b := Ref(&style{Color: "red"})

		assert.False(t, a.Equals(b))
	})

	t.Run("same map instance", func(t *testing.T) {
		t.Parallel()

		m := map[string]string{"bar": "baz"}

		assert.True(t, Ref(m).Equals(Ref(m)))
	})

	t.Run("equal maps distinct instances", func(t *testing.T) {
		t.Parallel()

		a := Ref(map[string]string{"bar": "baz"})
		b := Ref(map[string]string{"bar": "baz"})

		assert.False(t, a.Equals(b))
	})

	t.Run("same slice", func(t *testing.T) {
		t.Parallel()

		s := []int{1, 2, 3}

		assert.True(t, Ref(s).Equals(Ref(s)))
	})

	t.Run("equal slices distinct backing arrays", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Ref([]int{1, 2, 3}).Equals(Ref([]int{1, 2, 3})))
	})

	t.Run("reslicing changes identity", func(t *testing.T) {
		t.Parallel()

		s := []int{1, 2, 3}

		assert.False(t, Ref(s).Equals(Ref(s[:2])))
	})

	t.Run("same function", func(t *testing.T) {
		t.Parallel()

		f := func() {}

		assert.True(t, Ref(f).Equals(Ref(f)))
	})

	t.Run("distinct closures", func(t *testing.T) {
		t.Parallel()

		newCounter := func() func() int {
			n := 0

			return func() int { n++; return n }
		}

		assert.False(t, Ref(newCounter()).Equals(Ref(newCounter())))
	})

	t.Run("different dynamic types", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Ref(&style{}).Equals(Ref(map[string]string{})))
	})

	t.Run("nil handles", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Ref(nil).Equals(Ref(nil)))
		assert.False(t, Ref(nil).Equals(Ref(&style{})))
	})

	t.Run("comparable non-pointer handle falls back to ==", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Ref(style{Color: "red"}).Equals(Ref(style{Color: "red"})))
		assert.False(t, Ref(style{Color: "red"}).Equals(Ref(style{Color: "blue"})))
	})

	t.Run("uncomparable non-pointer handles never match", func(t *testing.T) {
		t.Parallel()

		type bag struct {
			items []int
		}

		assert.False(t, Ref(bag{items: []int{1}}).Equals(Ref(bag{items: []int{1}})))
	})

	t.Run("reference never equals primitive", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Ref("hello").Equals(String("hello")))
	})
}

func TestValue_Getters(t *testing.T) {
	t.Parallel()

	t.Run("matching kinds", func(t *testing.T) {
		t.Parallel()

		b, ok := Bool(true).AsBool()
		assert.True(t, ok)
		assert.True(t, b)

		i, ok := Int(42).AsInt()
		assert.True(t, ok)
		assert.Equal(t, int64(42), i)

		f, ok := Float(2.5).AsFloat()
		assert.True(t, ok)
		assert.InDelta(t, 2.5, f, 0)

		s, ok := String("hello").AsString()
		assert.True(t, ok)
		assert.Equal(t, "hello", s)

		handle := &style{}
		h, ok := Ref(handle).Handle()
		assert.True(t, ok)
		assert.Same(t, handle, h)
	})

	t.Run("mismatched kinds", func(t *testing.T) {
		t.Parallel()

		_, ok := Int(1).AsBool()
		assert.False(t, ok)

		_, ok = String("1").AsInt()
		assert.False(t, ok)

		_, ok = Null().AsString()
		assert.False(t, ok)

		_, ok = Bool(false).Handle()
		assert.False(t, ok)
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "reference", KindReference.String())
}

func TestValue_GoString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Null()", Null().GoString())
	assert.Equal(t, "Bool(true)", Bool(true).GoString())
	assert.Equal(t, "Int(42)", Int(42).GoString())
	assert.Equal(t, `String("hi")`, String("hi").GoString())
	assert.Equal(t, "Ref(*attr.style)", Ref(&style{}).GoString())
}
