package dual

import (
	"reflect"
	"testing"
)

// TestSum 函数测试序列求和：
// 以零 Dual 为初值折叠，累加器集合扩展为全体加数集合的并集。
func TestSum(t *testing.T) {
	// 1. 空序列 → 零 Dual
	z := Sum(nil)
	if !z.Eq(Zero()) {
		t.Errorf("Expected zero Dual, got %v", z)
	}

	// 2. 不相交集合求和
	z = Sum([]*Dual{
		MustNew(1.0, []string{"a"}, nil),
		MustNew(2.0, []string{"b"}, []float64{3.0}),
		Const(4.0),
	})
	if z.Real() != 7.0 {
		t.Errorf("Expected real 7, got %f", z.Real())
	}
	if !reflect.DeepEqual(z.Vars(), []string{"a", "b"}) {
		t.Errorf("Expected union vars [a b], got %v", z.Vars())
	}
	if !reflect.DeepEqual(z.Derivs(), []float64{1.0, 3.0}) {
		t.Errorf("Expected derivs [1 3], got %v", z.Derivs())
	}
}

// TestDot 函数测试等长序列点积：
// 逐位相乘后求和，结果集合为所有触及元素集合的并集。
func TestDot(t *testing.T) {
	a := []*Dual{
		MustNew(1.0, []string{"x"}, nil),
		MustNew(2.0, []string{"y"}, nil),
	}
	b := []*Dual{
		Const(3.0),
		MustNew(4.0, []string{"z"}, nil),
	}

	// 1. 点积值与梯度
	z, err := Dot(a, b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if z.Real() != 11.0 {
		t.Errorf("Expected real 11, got %f", z.Real())
	}
	// d/dx = 3, d/dy = 4, d/dz = 2
	if got := z.Gradient([]string{"x", "y", "z"}); !reflect.DeepEqual(got, []float64{3.0, 4.0, 2.0}) {
		t.Errorf("Expected gradient [3 4 2], got %v", got)
	}

	// 2. 长度不匹配 → 错误
	if _, err = Dot(a, b[:1]); err == nil {
		t.Error("Expected error for length mismatch")
	}
}
