package collections

import (
	"reflect"
	"testing"
)

func TestOrderedMap_KeysInInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", m.Keys(), want)
	}
}

func TestOrderedMap_SetExistingKeepsPosition(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	want := []string{"a", "b"}
	if !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", m.Keys(), want)
	}
	if v, ok := m.Get("a"); !ok || v != 10 {
		t.Errorf("Get(a) = %d, %v; want 10, true", v, ok)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestOrderedMap_GetMissing(t *testing.T) {
	m := NewOrderedMap[string, int]()
	if v, ok := m.Get("missing"); ok || v != 0 {
		t.Errorf("Get(missing) = %d, %v; want 0, false", v, ok)
	}
}

func TestOrderedMap_EachVisitsInOrder(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Set(3, "three")
	m.Set(1, "one")
	m.Set(2, "two")

	var keys []int
	var values []string
	m.Each(func(k int, v string) {
		keys = append(keys, k)
		values = append(values, v)
	})

	if !reflect.DeepEqual(keys, []int{3, 1, 2}) {
		t.Errorf("Each keys = %v", keys)
	}
	if !reflect.DeepEqual(values, []string{"three", "one", "two"}) {
		t.Errorf("Each values = %v", values)
	}
}
